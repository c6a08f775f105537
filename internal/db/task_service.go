package db

import (
	"strings"

	"github.com/yeskala/dayplan/internal/models"
)

// CreateSavedTask adds a reusable task template to the library. An empty
// name is a silent no-op, mirroring the form behavior, and returns nil.
func (s *Store) CreateSavedTask(name string, durationMinutes, importance int, category string) (*models.SavedTask, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	task := models.SavedTask{
		Name:                   name,
		DefaultDurationMinutes: durationMinutes,
		DefaultImportance:      importance,
		Category:               strings.TrimSpace(category),
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListSavedTasks returns the task library in insertion order.
func (s *Store) ListSavedTasks() ([]models.SavedTask, error) {
	var tasks []models.SavedTask
	if err := s.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetSavedTasksByIDs returns the library entries matching ids. Unknown ids
// are simply absent from the result.
func (s *Store) GetSavedTasksByIDs(ids []uint) ([]models.SavedTask, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tasks []models.SavedTask
	if err := s.db.Where("id IN ?", ids).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteSavedTask removes a library entry. Deleting an id that does not
// exist is a no-op.
func (s *Store) DeleteSavedTask(id uint) error {
	return s.db.Delete(&models.SavedTask{}, id).Error
}
