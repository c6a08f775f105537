package models

import (
	"encoding/json"
	"time"
)

// DayLog is the persisted record of one calendar date: what the user typed,
// the schedule the AI produced, and the end-of-day reflection they fill in
// later. There is at most one row per date.
type DayLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date        string `gorm:"uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Description string `json:"description"`

	// ScheduleJSON holds the validated schedule blocks as a JSON array.
	ScheduleJSON string `json:"schedule_json"`
	CoachNote    string `json:"coach_note"`

	// Reflection fields stay empty/nil until the user submits the
	// end-of-day reflection form.
	ReflectionText  string `json:"reflection_text"`
	EnergyMorning   *int   `json:"energy_morning"`
	EnergyAfternoon *int   `json:"energy_afternoon"`
	EnergyEvening   *int   `json:"energy_evening"`
}

// HasReflection reports whether the user has reflected on this day.
func (d DayLog) HasReflection() bool {
	return d.ReflectionText != ""
}

// Blocks decodes the stored schedule. A corrupt or empty column yields an
// empty slice rather than an error; older rows are not worth failing a page
// render over.
func (d DayLog) Blocks() []ScheduleBlock {
	if d.ScheduleJSON == "" {
		return nil
	}
	var blocks []ScheduleBlock
	if err := json.Unmarshal([]byte(d.ScheduleJSON), &blocks); err != nil {
		return nil
	}
	return blocks
}

// SetBlocks encodes blocks into the schedule column.
func (d *DayLog) SetBlocks(blocks []ScheduleBlock) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return err
	}
	d.ScheduleJSON = string(data)
	return nil
}
