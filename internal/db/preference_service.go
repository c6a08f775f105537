package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeskala/dayplan/internal/models"
)

// GetOrCreatePreferences returns the single preferences row, creating an
// empty one on first access.
func (s *Store) GetOrCreatePreferences() (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.db.First(&prefs, models.PreferencesID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.UserPreferences{ID: models.PreferencesID}
		if err := s.db.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences overwrites the preferences row with the given values.
// Every field is written, so anything the form left blank becomes empty/nil
// rather than keeping its old value.
func (s *Store) UpdatePreferences(prefs *models.UserPreferences) (*models.UserPreferences, error) {
	prefs.ID = models.PreferencesID
	if err := s.db.Save(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
