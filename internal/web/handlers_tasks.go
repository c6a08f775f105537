package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/models"
)

// handleTasksGet lists the task library.
func (s *Server) handleTasksGet(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.store.ListSavedTasks()
	if err != nil {
		logger.Error("failed to list saved tasks", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to load task library")
		return
	}
	s.render(w, "tasks.html", struct {
		Tasks []models.SavedTask
	}{Tasks: tasks})
}

// handleTasksPost creates a library entry from the form. An empty name is a
// silent no-op; duration and importance fall back to 30 minutes / SHOULD.
func (s *Server) handleTasksPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeText(w, http.StatusBadRequest, "bad form data")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	duration := formInt(r.PostFormValue("duration"), 30)
	importance := formInt(r.PostFormValue("importance"), models.ImportanceShould)
	category := r.PostFormValue("category")

	if _, err := s.store.CreateSavedTask(name, duration, importance, category); err != nil {
		logger.Error("failed to create saved task", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to save task")
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// handleTaskDelete removes a library entry; unknown ids are a no-op.
func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.Redirect(w, r, "/tasks", http.StatusSeeOther)
		return
	}
	if err := s.store.DeleteSavedTask(uint(id)); err != nil {
		logger.Error("failed to delete saved task", "id", id, "error", err)
	}
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

func formInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
