package models

// SavedTask is a reusable task template from the user's task library. The
// planner form offers these as checkboxes and merges the selected ones into
// the free-text description before the AI is called.
type SavedTask struct {
	ID uint `gorm:"primarykey" json:"id"`

	Name                   string `gorm:"not null" json:"name"`
	DefaultDurationMinutes int    `gorm:"default:30" json:"default_duration_minutes"`
	DefaultImportance      int    `gorm:"default:2" json:"default_importance"` // 3=MUST, 2=SHOULD, 1=NICE
	Category               string `json:"category"`
}
