package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/logger"
)

const (
	sessionName     = "dayplan"
	sessionKeyState = "google_oauth_state"
	sessionKeyCreds = "google_credentials"
)

// handleGoogleAuth starts the OAuth flow: stash a CSRF state in the session
// and redirect to the Google consent screen.
func (s *Server) handleGoogleAuth(w http.ResponseWriter, r *http.Request) {
	if !s.calendar.Enabled() {
		writeText(w, http.StatusInternalServerError, "Google Calendar is not configured.")
		return
	}

	state := randomState()
	sess, _ := s.sessions.Get(r, sessionName)
	sess.Values[sessionKeyState] = state
	if err := sess.Save(r, w); err != nil {
		logger.Error("failed to save session", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to start Google sign-in")
		return
	}

	http.Redirect(w, r, s.calendar.AuthURL(state), http.StatusFound)
}

// handleGoogleCallback finishes the flow: check the state, exchange the
// code, and keep the token set in the session.
func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.sessions.Get(r, sessionName)

	state, _ := sess.Values[sessionKeyState].(string)
	if state == "" || state != r.URL.Query().Get("state") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	delete(sess.Values, sessionKeyState)

	code := r.URL.Query().Get("code")
	if code == "" {
		// User denied consent (or Google sent an error); back to the planner.
		_ = sess.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	token, err := s.calendar.Exchange(r.Context(), code)
	if err != nil {
		logger.Error("google token exchange failed", "error", err)
		_ = sess.Save(r, w)
		writeText(w, http.StatusBadGateway, "Google sign-in failed. Try again.")
		return
	}

	data, err := json.Marshal(token)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "failed to store credentials")
		return
	}
	sess.Values[sessionKeyCreds] = string(data)
	if err := sess.Save(r, w); err != nil {
		logger.Error("failed to save session", "error", err)
		writeText(w, http.StatusInternalServerError, "failed to store credentials")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleGoogleSync pushes today's plan to the user's primary calendar. With
// no session credential the user is sent through the consent flow first.
func (s *Server) handleGoogleSync(w http.ResponseWriter, r *http.Request) {
	token := s.sessionToken(r)
	if token == nil {
		http.Redirect(w, r, "/google/auth", http.StatusSeeOther)
		return
	}

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

	created, err := s.calendar.SyncDay(r.Context(), token, day, blocks)
	if err != nil {
		logger.Error("calendar sync failed", "error", err)
		writeText(w, http.StatusBadGateway, "Could not reach Google Calendar.")
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf("Added %d events to your Google Calendar!", created))
}

// sessionToken decodes the stored token set, or nil when not connected.
func (s *Server) sessionToken(r *http.Request) *oauth2.Token {
	sess, _ := s.sessions.Get(r, sessionName)
	raw, _ := sess.Values[sessionKeyCreds].(string)
	if raw == "" {
		return nil
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return nil
	}
	return &token
}
