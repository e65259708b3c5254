// Package email sends transactional mail through the Postmark API.
// Only task reminders use it today.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/models"
)

const defaultAPIBaseURL = "https://api.postmarkapp.com"

// Client is a thin Postmark API client.
type Client struct {
	serverToken string
	fromEmail   string
	http        *resty.Client
}

// NewClient builds a Postmark client from mailer configuration. An empty
// server token leaves the client unconfigured; sends then fail immediately.
func NewClient(cfg config.Mailer) *Client {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &Client{
		serverToken: cfg.ServerToken,
		fromEmail:   cfg.FromEmail,
		http:        resty.New().SetBaseURL(baseURL),
	}
}

// Configured returns true if the server token is set.
func (c *Client) Configured() bool {
	return c.serverToken != ""
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
	TextBody string `json:"TextBody"`
}

// SendTaskReminder emails the owner of a due task that its deadline is close.
func (c *Client) SendTaskReminder(ctx context.Context, task models.DueTask) error {
	if !c.Configured() {
		return fmt.Errorf("email client not configured: missing server token")
	}

	deadline := task.Deadline.Format(time.RFC1123)
	textBody := fmt.Sprintf("Hi %s,\n\nYour task %q is due at %s.\n\n%s",
		task.OwnerName, task.Title, deadline, task.Description)
	htmlBody := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your task <strong>%s</strong> is due at %s.</p><p>%s</p>`,
		task.OwnerName, task.Title, deadline, task.Description,
	)

	payload := postmarkEmail{
		From:     c.fromEmail,
		To:       task.OwnerEmail,
		Subject:  fmt.Sprintf("Reminder: %s", task.Title),
		HtmlBody: htmlBody,
		TextBody: textBody,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Postmark-Server-Token", c.serverToken).
		SetBody(payload).
		Post("/email")
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("postmark API error: status %d", resp.StatusCode())
	}

	return nil
}
