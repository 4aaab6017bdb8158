// Package adapter holds the outbound delivery transports behind the
// notify.Notifier interface: an HTTP relay client and a direct SMTP sender.
package adapter

import (
	"context"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/notify"
	"github.com/jobify-dev/jobify/models"
)

// NewNotifier selects a delivery transport from cfg.Transport.
//
// An empty transport disables delivery: matched recipients are logged and
// every delivery "succeeds". The configuration layer has already validated
// that a non-empty transport carries the fields it needs.
func NewNotifier(cfg config.Notifier, logger *logger.Logger) notify.Notifier {
	switch cfg.Transport {
	case "http":
		return NewHTTPNotifier(cfg, logger)
	case "smtp":
		return NewSMTPNotifier(cfg, logger)
	default:
		return &logNotifier{logger: logger}
	}
}

// logNotifier is the no-transport fallback. It keeps the fan-out pipeline
// observable in environments without a relay or mail server.
type logNotifier struct {
	logger *logger.Logger
}

func (n *logNotifier) Notify(ctx context.Context, recipient models.User, job models.Job) error {
	logger.FromContext(ctx).Info().
		Int64("recipient", recipient.UserID).
		Str("email", recipient.Email).
		Int64("job", job.JobID).
		Str("title", job.Title).
		Msg("notification delivery skipped: no transport configured")
	return nil
}
