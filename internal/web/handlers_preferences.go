package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/models"
)

// handlePreferencesGet renders the preferences form, creating the singleton
// row on first visit.
func (s *Server) handlePreferencesGet(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.store.GetOrCreatePreferences()
	if err != nil {
		logger.Error("failed to load preferences", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	s.render(w, "preferences.html", struct {
		Prefs *models.UserPreferences
	}{Prefs: prefs})
}

// handlePreferencesPost overwrites every preference field from the form
// state. Fields the form left blank become empty/nil; this is deliberate
// overwrite semantics, not a patch.
func (s *Server) handlePreferencesPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "bad form data")
		return
	}

	prefs := &models.UserPreferences{
		PreferredWakeTime:     strings.TrimSpace(r.PostFormValue("wake_time")),
		PreferredSleepTime:    strings.TrimSpace(r.PostFormValue("sleep_time")),
		MaxStudyHours:         parseOptionalInt(r.PostFormValue("max_study_hours")),
		BreakFrequencyMinutes: parseOptionalInt(r.PostFormValue("break_frequency")),
		PreferredFocusPeriod:  r.PostFormValue("focus_period"),
		StudyStyle:            r.PostFormValue("study_style"),
		StressSensitivity:     r.PostFormValue("stress_sensitivity"),
		PlaysSport:            r.PostFormValue("plays_sport") != "",
	}

	if _, err := s.store.UpdatePreferences(prefs); err != nil {
		logger.Error("failed to update preferences", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseOptionalInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
