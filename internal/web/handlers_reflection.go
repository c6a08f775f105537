package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/models"
)

type reflectionData struct {
	DayLog *models.DayLog
	Today  string
}

// handleReflectionGet shows the end-of-day reflection form for today's plan
// (or an empty state when no plan exists yet).
func (s *Server) handleReflectionGet(w http.ResponseWriter, r *http.Request) {
	log, err := s.store.GetDayLog(s.today())
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		logger.Error("failed to load day log", "error", err)
	}
	s.render(w, "reflection.html", reflectionData{DayLog: log, Today: s.today()})
}

// handleReflectionPost stores the reflection on today's DayLog. Submitting
// with no plan for today just redirects back to the planner.
func (s *Server) handleReflectionPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "bad form data")
		return
	}

	text := strings.TrimSpace(r.PostFormValue("reflection"))
	morning := parseEnergy(r.PostFormValue("energy_morning"))
	afternoon := parseEnergy(r.PostFormValue("energy_afternoon"))
	evening := parseEnergy(r.PostFormValue("energy_evening"))

	_, err := s.store.RecordReflection(s.today(), text, morning, afternoon, evening)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		logger.Error("failed to record reflection", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to save reflection")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseEnergy converts an optional 1-10 rating field; blanks and garbage
// become nil rather than errors.
func parseEnergy(value string) *int {
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
