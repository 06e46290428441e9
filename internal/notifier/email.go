package notifier

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jordan-wright/email"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/logger"
	"github.com/mshahgoogle/nps-campsite-scraper/internal/scraper"
)

// SMTPConfig holds mail-relay settings. Credentials are always injected by
// the caller, never embedded in the component.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

// SMTPConfigFromEnv reads relay settings from the environment.
// Required environment variables:
// - SMTP_HOST
// - SMTP_SENDER (or SMTP_USERNAME, used as the sender address)
// Optional: SMTP_PORT (default 587), SMTP_USERNAME, SMTP_PASSWORD.
func SMTPConfigFromEnv() (SMTPConfig, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return SMTPConfig{}, fmt.Errorf("SMTP_HOST is required to send email notifications")
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return SMTPConfig{}, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		port = p
	}

	username := os.Getenv("SMTP_USERNAME")
	sender := os.Getenv("SMTP_SENDER")
	if sender == "" {
		sender = username
	}
	if sender == "" {
		return SMTPConfig{}, fmt.Errorf("SMTP_SENDER or SMTP_USERNAME is required to send email notifications")
	}

	return SMTPConfig{
		Host:     host,
		Port:     port,
		Username: username,
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   sender,
	}, nil
}

// EmailNotifier delivers availability alerts over SMTP
type EmailNotifier struct {
	config    SMTPConfig
	recipient string
}

// NewEmailNotifier creates an email notifier for a single recipient
func NewEmailNotifier(config SMTPConfig, recipient string) *EmailNotifier {
	return &EmailNotifier{
		config:    config,
		recipient: recipient,
	}
}

// Notify sends one email enumerating the available sites. Delivery failures
// are logged and reported as false, never escalated. An empty site slice
// returns false without touching the relay.
func (n *EmailNotifier) Notify(campgroundName string, sites []campsite.Site, date time.Time) bool {
	if len(sites) == 0 {
		return false
	}

	mail := email.NewEmail()
	mail.From = n.config.Sender
	mail.To = []string{n.recipient}
	mail.Subject = composeSubject(campgroundName, date)
	mail.Text = []byte(composeBody(campgroundName, sites, date))

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}

	if err := mail.Send(addr, auth); err != nil {
		logger.Error("Failed to send notification", logger.Fields{
			"recipient": n.recipient,
		}, err)
		return false
	}

	logger.Info("Notification email sent", logger.Fields{
		"recipient": n.recipient,
	})
	return true
}

// composeSubject formats the alert subject line
func composeSubject(campgroundName string, date time.Time) string {
	return fmt.Sprintf("Campsite Available: %s on %s", campgroundName, date.Format(campsite.DateFormat))
}

// composeBody enumerates each available site and appends a booking link
// built from the first site's identifier
func composeBody(campgroundName string, sites []campsite.Site, date time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Good news! The following campsites are available at %s on %s:\n\n",
		campgroundName, date.Format(campsite.DateFormat))
	for _, site := range sites {
		fmt.Fprintf(&b, "- %s (Type: %s)\n", site.Name, site.Type)
	}
	fmt.Fprintf(&b, "\nBook now at: %s/camping/campgrounds/%s\n", scraper.BaseURL, sites[0].ID)

	return b.String()
}
