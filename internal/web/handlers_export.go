package web

import (
	"errors"
	"net/http"

	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/ics"
	"github.com/yeskala/dayplan/internal/logger"
)

// handleExportICS serves today's plan as a downloadable .ics file. With no
// stored plan there is nothing to export and the response is a plain 400.
func (s *Server) handleExportICS(w http.ResponseWriter, r *http.Request) {
	log, err := s.store.GetDayLog(s.today())
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			logger.Error("failed to load day log", "error", err)
		}
		writeText(w, http.StatusBadRequest, "No schedule found for today. Generate a plan first.")
		return
	}

	blocks := log.Blocks()
	if len(blocks) == 0 {
		writeText(w, http.StatusBadRequest, "No schedule found for today. Generate a plan first.")
		return
	}

	day, err := s.dayStart(log.Date)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "stored plan has an invalid date")
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="dayplan.ics"`)
	_, _ = w.Write([]byte(ics.Build(day, s.now(), blocks)))
}
