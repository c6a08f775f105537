package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeskala/dayplan/internal/models"
)

// GetDayLog returns the log for the given YYYY-MM-DD date, or ErrNotFound.
func (s *Store) GetDayLog(date string) (*models.DayLog, error) {
	var log models.DayLog
	err := s.db.Where("date = ?", date).First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpsertDayLog creates the log for date, or overwrites its plan fields if a
// row already exists. Reflection fields are left untouched on update; only
// the reflection path writes them.
func (s *Store) UpsertDayLog(date, description string, schedule []models.ScheduleBlock, coachNote string) (*models.DayLog, error) {
	var log models.DayLog
	err := s.db.Where("date = ?", date).First(&log).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log.Date = date
	log.Description = description
	log.CoachNote = coachNote
	if err := log.SetBlocks(schedule); err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	if err := s.db.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// RecordReflection stores the end-of-day reflection on an existing log.
// Returns ErrNotFound when no plan was generated for that date.
func (s *Store) RecordReflection(date, text string, morning, afternoon, evening *int) (*models.DayLog, error) {
	log, err := s.GetDayLog(date)
	if err != nil {
		return nil, err
	}

	log.ReflectionText = text
	log.EnergyMorning = morning
	log.EnergyAfternoon = afternoon
	log.EnergyEvening = evening

	// Save writes all columns, including energies reset to nil.
	if err := s.db.Save(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// ListDayLogs returns all logs, newest date first.
func (s *Store) ListDayLogs() ([]models.DayLog, error) {
	var logs []models.DayLog
	if err := s.db.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
