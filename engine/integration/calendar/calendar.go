package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/remindly/remindly/engine/notify"
	"github.com/remindly/remindly/engine/task"
)

// defaultEventDuration is used when turning a task deadline into a
// calendar event, which has an end time while a deadline does not.
const defaultEventDuration = time.Hour

// Config for the Google Calendar integration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Client wraps the OAuth configuration and, once a user token is
// supplied, the Calendar API service. The token is held for the process
// lifetime; restarting the service requires re-authorizing.
type Client struct {
	oauth *oauth2.Config

	mu    sync.Mutex
	token *oauth2.Token
}

// NewClient creates the OAuth side of the calendar integration. Both
// client credentials are required; callers treat a configuration error as
// the integration being disabled.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil || cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("calendar: client credentials are required")
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{gcal.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// AuthURL returns the consent URL a user visits to authorize calendar
// access.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token and retains it for
// later calendar calls.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("calendar: exchanging auth code: %w", err)
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return token, nil
}

// Authorized reports whether a user token is available.
func (c *Client) Authorized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != nil
}

// SyncTask creates a calendar event for the task on the user's primary
// calendar. It requires a completed OAuth flow and a parseable deadline.
func (c *Client) SyncTask(ctx context.Context, t *task.Task) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == nil {
		return fmt.Errorf("calendar: not authorized")
	}
	srv, err := c.Service(ctx, token)
	if err != nil {
		return err
	}
	_, err = InsertTaskEvent(srv, t)
	return err
}

// Service builds a Calendar API service from a user token.
func (c *Client) Service(ctx context.Context, token *oauth2.Token) (*gcal.Service, error) {
	srv, err := gcal.NewService(ctx, option.WithTokenSource(c.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("calendar: creating service: %w", err)
	}
	return srv, nil
}

// InsertTaskEvent creates a calendar event for a task with a parseable
// deadline on the user's primary calendar.
func InsertTaskEvent(srv *gcal.Service, t *task.Task) (*gcal.Event, error) {
	deadline, err := notify.ParseDeadline(t.Deadline)
	if err != nil {
		return nil, fmt.Errorf("calendar: task %s has no usable deadline: %w", t.ID, err)
	}
	event := &gcal.Event{
		Summary:     t.Summary,
		Description: fmt.Sprintf("Priority: %s\nCategory: %s\nFine: %s", t.Priority, t.Category, t.Fine),
		Start:       &gcal.EventDateTime{DateTime: deadline.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: deadline.Add(defaultEventDuration).Format(time.RFC3339)},
	}
	created, err := srv.Events.Insert("primary", event).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: inserting event: %w", err)
	}
	return created, nil
}
