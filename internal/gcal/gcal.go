// Package gcal connects a day plan to the user's Google Calendar: the OAuth
// consent flow that yields a token, and the per-block event creation that
// consumes it.
package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/models"
	"github.com/yeskala/dayplan/internal/planner"
)

// ErrNotConfigured means no Google client credentials were provided.
var ErrNotConfigured = errors.New("google calendar client is not configured")

// Scopes requested during consent. Event creation only; no read access.
var Scopes = []string{calendar.CalendarEventsScope}

// Config wraps the oauth2 client configuration. Constructed once from the
// application config and passed to the web layer; tokens themselves live in
// the user's session, never here.
type Config struct {
	oauth *oauth2.Config
}

// NewConfig builds a Config from client credentials. Empty credentials
// yield a disabled Config; Enabled reports the difference.
func NewConfig(clientID, clientSecret, redirectURL string) *Config {
	return &Config{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       Scopes,
			Endpoint:     google.Endpoint,
		},
	}
}

// Enabled reports whether client credentials are present.
func (c *Config) Enabled() bool {
	return c.oauth.ClientID != "" && c.oauth.ClientSecret != ""
}

// AuthURL returns the consent-screen URL for the given CSRF state. Offline
// access and a forced consent prompt make sure a refresh token comes back.
func (c *Config) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades the callback authorization code for a token set.
func (c *Config) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if !c.Enabled() {
		return nil, ErrNotConfigured
	}
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return tok, nil
}

// SyncDay creates one event on the user's primary calendar per block with
// parsable times. Per-block failures are logged and skipped; the batch
// continues. Returns the number of events created.
func (c *Config) SyncDay(ctx context.Context, token *oauth2.Token, day time.Time, blocks []models.ScheduleBlock) (int, error) {
	if !c.Enabled() {
		return 0, ErrNotConfigured
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(c.oauth.TokenSource(ctx, token)))
	if err != nil {
		return 0, fmt.Errorf("failed to build calendar client: %w", err)
	}

	created := 0
	for _, block := range blocks {
		start, ok := combine(day, block.Start)
		if !ok {
			continue
		}
		end, ok := combine(day, block.End)
		if !ok {
			continue
		}

		summary := block.Task
		if summary == "" {
			summary = "Study block"
		}

		event := &calendar.Event{
			Summary:     summary,
			Description: block.Note,
			Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
			End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		}

		if _, err := svc.Events.Insert("primary", event).Context(ctx).Do(); err != nil {
			logger.Error("failed to create calendar event", "task", block.Task, "error", err)
			continue
		}
		created++
	}

	return created, nil
}

// combine attaches an HH:MM wall-clock string to the given day in its zone.
func combine(day time.Time, clock string) (time.Time, bool) {
	hour, minute, err := planner.ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}
