package arcade

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrAuthorizationRequired means the user has not yet authorized the toolkit
// in the Arcade dashboard. Callers surface this instead of falling back.
var ErrAuthorizationRequired = errors.New("tool authorization required")

const defaultBaseURL = "https://api.arcade.dev"

// Client executes Arcade.dev tools (Google Calendar, Gmail) on behalf of one
// user. It is passed into each handler explicitly; there is no process-wide
// toolkit instance.
type Client struct {
	APIKey  string
	UserID  string
	BaseURL string
	HTTP    *http.Client
}

func New(apiKey, userID string) *Client {
	return &Client{
		APIKey:  apiKey,
		UserID:  userID,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Execute runs one named tool and returns the raw output value.
func (c *Client) Execute(ctx context.Context, toolName string, input map[string]interface{}) (json.RawMessage, error) {
	reqBody := map[string]interface{}{
		"tool_name": toolName,
		"input":     input,
		"user_id":   c.UserID,
	}
	bodyJSON, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.BaseURL+"/v1/tools/execute",
		bytes.NewBuffer(bodyJSON),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if strings.Contains(string(body), "tool_authorization_required") {
		return nil, ErrAuthorizationRequired
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arcade: %s returned status %d: %s", toolName, res.StatusCode, string(body))
	}

	var out struct {
		Output struct {
			Value json.RawMessage `json:"value"`
		} `json:"output"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("arcade: decode %s response: %w", toolName, err)
	}

	return out.Output.Value, nil
}

// CalendarEvent is one event as returned by GoogleCalendar.ListEvents.
type CalendarEvent struct {
	Summary string    `json:"summary"`
	Start   EventTime `json:"start"`
	End     EventTime `json:"end"`
}

type EventTime struct {
	DateTime string `json:"dateTime"`
}

// ListCalendarEvents fetches today's and tomorrow's events from the primary
// calendar.
func (c *Client) ListCalendarEvents(ctx context.Context) ([]CalendarEvent, error) {
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	value, err := c.Execute(ctx, "GoogleCalendar.ListEvents", map[string]interface{}{
		"min_end_datetime":   today + "T00:00:00",
		"max_start_datetime": tomorrow + "T23:59:59",
		"calendar_id":        "primary",
		"max_results":        20,
	})
	if err != nil {
		return nil, err
	}

	var events []CalendarEvent
	if err := json.Unmarshal(value, &events); err != nil {
		return nil, fmt.Errorf("arcade: decode calendar events: %w", err)
	}
	return events, nil
}

// ListEmails fetches the n most recent inbox messages. The raw payload is
// returned so the caller can decode into its own record shape.
func (c *Client) ListEmails(ctx context.Context, n int) (json.RawMessage, error) {
	return c.Execute(ctx, "Gmail.ListEmails", map[string]interface{}{
		"n_emails": n,
	})
}

// SendEmail delivers one message and returns the provider message id.
func (c *Client) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	value, err := c.Execute(ctx, "Gmail.SendEmail", map[string]interface{}{
		"to":          to,
		"subject":     subject,
		"body":        body,
		"body_format": "text",
	})
	if err != nil {
		return "", err
	}

	var sent struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(value, &sent); err != nil || sent.ID == "" {
		return "unknown", nil
	}
	return sent.ID, nil
}
