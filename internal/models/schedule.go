package models

// Block kinds as produced by the model.
const (
	BlockTypeTask  = "task"
	BlockTypeBreak = "break"
)

// Importance tiers. The AI assigns one per block; breaks get 0.
const (
	ImportanceRest   = 0 // rest / break / low-intensity
	ImportanceNice   = 1 // nice-to-have
	ImportanceShould = 2 // should-do today
	ImportanceMust   = 3 // must-do today
)

// ScheduleBlock is one task or break entry in a day's schedule. Start and
// End are zero-padded 24-hour "HH:MM" strings, which makes lexicographic
// comparison equivalent to chronological comparison.
type ScheduleBlock struct {
	Task       string `json:"task"`
	Type       string `json:"type"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Importance int    `json:"importance"`
	Note       string `json:"note"`
}

// ImportanceLabel returns a short human label for a block's importance tier.
func (b ScheduleBlock) ImportanceLabel() string {
	switch b.Importance {
	case ImportanceMust:
		return "MUST"
	case ImportanceShould:
		return "SHOULD"
	case ImportanceNice:
		return "NICE"
	default:
		return "REST"
	}
}

// Mood is the model's read of the user's emotional state. It is rendered on
// the planner page but never persisted.
type Mood struct {
	Label     string `json:"label"`
	Intensity int    `json:"intensity"`
	Reasoning string `json:"reasoning"`
}
