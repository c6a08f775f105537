package planner

import "github.com/yeskala/dayplan/internal/models"

// ValidateSchedule repairs a model-produced block sequence so adjacent
// blocks never overlap. One pass in input order:
//
//   - blocks missing start or end are dropped (and do not advance the
//     running end time),
//   - a block starting before the previous kept block ended has its start
//     clamped forward to that end,
//   - everything else is kept as-is, in order.
//
// Start/end are zero-padded 24-hour "HH:MM" strings, so plain string
// comparison is chronological. A block whose end precedes its own start is
// deliberately left alone; the model output is untrusted but this pass is a
// minimal safety net, not a scheduler.
func ValidateSchedule(schedule []models.ScheduleBlock) []models.ScheduleBlock {
	valid := make([]models.ScheduleBlock, 0, len(schedule))
	lastEnd := ""

	for _, block := range schedule {
		if block.Start == "" || block.End == "" {
			continue
		}

		if lastEnd != "" && block.Start < lastEnd {
			// fix overlap by adjusting start
			block.Start = lastEnd
		}

		lastEnd = block.End
		valid = append(valid, block)
	}

	return valid
}
