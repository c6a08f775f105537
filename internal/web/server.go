// Package web is the HTTP front of the planner: routes, handlers, and the
// server-rendered HTML views.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"github.com/yeskala/dayplan/internal/ai"
	"github.com/yeskala/dayplan/internal/config"
	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/gcal"
	"github.com/yeskala/dayplan/internal/logger"
)

// PlanGenerator is the slice of the AI client the handlers need. The tests
// substitute a canned implementation.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, prompt string) (*ai.PlanResponse, error)
}

// Server wires the store, the AI backend, and the Google Calendar client to
// the HTTP routes. Everything is injected through New; no package state.
type Server struct {
	cfg      *config.Config
	store    *db.Store
	planner  PlanGenerator
	calendar *gcal.Config
	sessions *sessions.CookieStore
	mux      *http.ServeMux
	loc      *time.Location
}

// New constructs a Server. The timezone from cfg decides what "today" means
// for plans and exports; an unknown zone falls back to the system zone.
func New(cfg *config.Config, store *db.Store, plannerClient PlanGenerator, calendarCfg *gcal.Config) *Server {
	loc := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		} else {
			logger.Warn("unknown timezone, using system zone", "timezone", cfg.Timezone)
		}
	}

	s := &Server{
		cfg:      cfg,
		store:    store,
		planner:  plannerClient,
		calendar: calendarCfg,
		sessions: sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		mux:      http.NewServeMux(),
		loc:      loc,
	}
	s.registerRoutes()
	return s
}

// Handler returns the root http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handlePlannerGet)
	s.mux.HandleFunc("POST /{$}", s.handlePlannerPost)

	s.mux.HandleFunc("GET /reflection", s.handleReflectionGet)
	s.mux.HandleFunc("POST /reflection", s.handleReflectionPost)

	s.mux.HandleFunc("GET /preferences", s.handlePreferencesGet)
	s.mux.HandleFunc("POST /preferences", s.handlePreferencesPost)

	s.mux.HandleFunc("GET /tasks", s.handleTasksGet)
	s.mux.HandleFunc("POST /tasks", s.handleTasksPost)
	s.mux.HandleFunc("POST /tasks/delete/{id}", s.handleTaskDelete)

	s.mux.HandleFunc("GET /export.ics", s.handleExportICS)

	s.mux.HandleFunc("GET /google/auth", s.handleGoogleAuth)
	s.mux.HandleFunc("GET /google/callback", s.handleGoogleCallback)
	s.mux.HandleFunc("GET /google/sync", s.handleGoogleSync)

	s.mux.HandleFunc("GET /history", s.handleHistory)

	s.mux.HandleFunc("GET /health", s.handleHealth)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// now returns the current time in the configured zone.
func (s *Server) now() time.Time {
	return time.Now().In(s.loc)
}

// today returns today's date key, YYYY-MM-DD.
func (s *Server) today() string {
	return s.now().Format("2006-01-02")
}

// yesterday returns yesterday's date key.
func (s *Server) yesterday() string {
	return s.now().AddDate(0, 0, -1).Format("2006-01-02")
}

// dayStart returns midnight of the given date key in the configured zone.
func (s *Server) dayStart(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, s.loc)
}

// writeText sends a plain-text response with the given status.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = fmt.Fprintln(w, msg)
}

// randomState returns a CSRF state token for the OAuth flow.
func randomState() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
