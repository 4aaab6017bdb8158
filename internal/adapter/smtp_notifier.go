package adapter

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
)

// smtpNotifier mails announcements directly through a relay-less SMTP server.
// Intended for deployments that already run an internal MTA; anything else
// should use the HTTP relay transport.
type smtpNotifier struct {
	address string
	from    string
	logger  *logger.Logger

	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg config.Notifier, logger *logger.Logger) *smtpNotifier {
	return &smtpNotifier{
		address: cfg.SMTPAddress,
		from:    cfg.SMTPFrom,
		logger:  logger,
		send: func(addr, from string, to []string, msg []byte) error {
			return smtp.SendMail(addr, nil, from, to, msg)
		},
	}
}

// Notify implements notify.Notifier. It sends one plain-text mail per
// recipient; smtp.SendMail dials, greets, and quits on every call, which is
// acceptable at this fan-out scale.
func (n *smtpNotifier) Notify(_ context.Context, recipient models.User, job models.Job) error {
	if err := n.send(n.address, n.from, []string{recipient.Email}, buildMail(n.from, recipient, job)); err != nil {
		return fmt.Errorf("smtp delivery to %s: %w", recipient.Email, err)
	}

	return nil
}

func buildMail(from string, recipient models.User, job models.Job) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", recipient.Email)
	fmt.Fprintf(&b, "Subject: New job posted: %s at %s\r\n", job.Title, job.Company)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", recipient.Name)
	fmt.Fprintf(&b, "A new %s position was just posted: %s at %s", job.Category, job.Title, job.Company)
	if job.Location != "" {
		fmt.Fprintf(&b, " (%s)", job.Location)
	}
	b.WriteString(".\r\n")
	if job.Description != "" {
		fmt.Fprintf(&b, "\r\n%s\r\n", job.Description)
	}
	b.WriteString("\r\nLog in to apply.\r\n")

	return []byte(b.String())
}
