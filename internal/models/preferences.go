package models

// Focus period choices.
const (
	FocusMorning   = "morning"
	FocusAfternoon = "afternoon"
	FocusEvening   = "evening"
)

// Study style choices.
const (
	StyleLongBlocks = "long_blocks"
	StylePomodoro   = "pomodoro"
	StyleMixed      = "mixed"
)

// Stress sensitivity choices.
const (
	StressLow    = "low"
	StressMedium = "medium"
	StressHigh   = "high"
)

// PreferencesID is the fixed primary key of the single live preferences row.
// The application has exactly one user, so the row is addressed directly
// instead of being found through a uniqueness trick.
const PreferencesID uint = 1

// UserPreferences holds the user's scheduling preferences. Every field is
// optional; the row is created lazily on first access and overwritten
// wholesale on each form submission.
type UserPreferences struct {
	ID uint `gorm:"primarykey" json:"id"`

	PreferredWakeTime  string `json:"preferred_wake_time"`  // HH:MM or empty
	PreferredSleepTime string `json:"preferred_sleep_time"` // HH:MM or empty

	MaxStudyHours         *int `json:"max_study_hours"`
	BreakFrequencyMinutes *int `json:"break_frequency_minutes"`

	PreferredFocusPeriod string `json:"preferred_focus_period"` // morning/afternoon/evening
	StudyStyle           string `json:"study_style"`            // long_blocks/pomodoro/mixed
	StressSensitivity    string `json:"stress_sensitivity"`     // low/medium/high

	PlaysSport bool `json:"plays_sport"`
}
