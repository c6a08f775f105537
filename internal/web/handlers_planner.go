package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yeskala/dayplan/internal/ai"
	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/models"
	"github.com/yeskala/dayplan/internal/planner"
)

// plannerData is the view model for the planner page.
type plannerData struct {
	Description    string
	Schedule       []models.ScheduleBlock
	CoachNote      string
	Mood           *models.Mood
	RawModelOutput string
	Error          string
	SavedTasks     []models.SavedTask
	Today          string
	GoogleEnabled  bool
}

// handlePlannerGet renders the planner form. A ?load=YYYY-MM-DD query
// fills the form from a stored day; a malformed date is ignored.
func (s *Server) handlePlannerGet(w http.ResponseWriter, r *http.Request) {
	data := s.newPlannerData()

	if load := r.URL.Query().Get("load"); load != "" {
		if _, err := s.dayStart(load); err == nil {
			log, err := s.store.GetDayLog(load)
			if err == nil {
				data.Description = log.Description
				data.Schedule = log.Blocks()
				data.CoachNote = log.CoachNote
			} else if !errors.Is(err, db.ErrNotFound) {
				logger.Error("failed to load day log", "date", load, "error", err)
			}
		}
		// ignore bad load param and just render normal
	}

	s.render(w, "planner.html", data)
}

// handlePlannerPost generates a plan: merge selected library tasks into the
// description, compose the prompt with yesterday's reflection and the
// stored preferences, call the AI, and persist the validated schedule as
// today's DayLog.
func (s *Server) handlePlannerPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "bad form data")
		return
	}

	data := s.newPlannerData()
	description := strings.TrimSpace(r.PostFormValue("description"))

	if text := planner.LibraryTasksText(s.selectedLibraryTasks(r)); text != "" {
		description = strings.TrimSpace(description + "\n\n" + text)
	}
	data.Description = description

	if description == "" {
		data.Error = "Describe yourself and your day so the AI has something to work with."
		s.render(w, "planner.html", data)
		return
	}

	prompt := planner.BuildPrompt(description, s.priorContext())

	plan, err := s.planner.GeneratePlan(r.Context(), prompt)
	if err != nil {
		data.Error = planErrorMessage(err)
		logger.Error("plan generation failed", "error", err)
		s.render(w, "planner.html", data)
		return
	}

	// Persist today's plan so we can reflect on it at night.
	if _, err := s.store.UpsertDayLog(s.today(), description, plan.Schedule, plan.CoachNote); err != nil {
		data.Error = "Failed to save today's plan."
		logger.Error("failed to save day log", "error", err)
		s.render(w, "planner.html", data)
		return
	}

	data.Schedule = plan.Schedule
	data.CoachNote = plan.CoachNote
	data.Mood = plan.Mood
	data.RawModelOutput = plan.Raw
	s.render(w, "planner.html", data)
}

// handleHistory lists all stored plans, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	logs, err := s.store.ListDayLogs()
	if err != nil {
		logger.Error("failed to list day logs", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	s.render(w, "history.html", struct {
		Logs []models.DayLog
	}{Logs: logs})
}

func (s *Server) newPlannerData() plannerData {
	data := plannerData{
		Today:         s.today(),
		GoogleEnabled: s.calendar.Enabled(),
	}
	tasks, err := s.store.ListSavedTasks()
	if err != nil {
		logger.Error("failed to list saved tasks", "error", err)
	}
	data.SavedTasks = tasks
	return data
}

// selectedLibraryTasks resolves the library_task_<id> checkboxes ticked on
// the planner form.
func (s *Server) selectedLibraryTasks(r *http.Request) []models.SavedTask {
	var ids []uint
	for key := range r.PostForm {
		rest, ok := strings.CutPrefix(key, "library_task_")
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	tasks, err := s.store.GetSavedTasksByIDs(ids)
	if err != nil {
		logger.Error("failed to load selected library tasks", "error", err)
		return nil
	}
	return tasks
}

// priorContext builds the personalization block for the prompt: yesterday's
// plan and reflection when one exists, plus the current preferences.
func (s *Server) priorContext() string {
	previous := ""
	if log, err := s.store.GetDayLog(s.yesterday()); err == nil {
		previous = planner.PreviousDaySummary(log)
	}

	prefSummary := ""
	if prefs, err := s.store.GetOrCreatePreferences(); err == nil {
		prefSummary = planner.PreferencesSummary(prefs)
	} else {
		logger.Error("failed to load preferences", "error", err)
	}

	if previous != "" {
		return previous + "\n" + prefSummary
	}
	return prefSummary
}

// planErrorMessage maps AI error kinds onto the user-facing strings shown
// above the planner form.
func planErrorMessage(err error) string {
	switch {
	case errors.Is(err, ai.ErrEmptySchedule):
		return "AI did not return any schedule blocks."
	case errors.Is(err, ai.ErrNotConfigured):
		return "The AI backend is not configured. Set the OpenAI API key first."
	case errors.Is(err, ai.ErrBadResponse):
		return "AI returned a response that could not be understood."
	default:
		return "Error contacting AI backend: " + err.Error()
	}
}
