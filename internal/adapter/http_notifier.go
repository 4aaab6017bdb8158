package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
)

const defaultDeliveryTimeout = 15 * time.Second

// announcement is the relay wire format for a single delivery.
type announcement struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// httpNotifier delivers announcements by POSTing them to an HTTP relay that
// owns the actual channel (mail provider, push gateway).
type httpNotifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPNotifier constructs the resty-based relay client. The relay base URL
// comes from cfg.RelayURL; cfg.Timeout bounds a single delivery attempt and
// falls back to 15s when unset.
func NewHTTPNotifier(cfg config.Notifier, logger *logger.Logger) *httpNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.RelayURL, "/")).
		SetTimeout(timeout)

	return &httpNotifier{client: client, logger: logger}
}

// Notify implements notify.Notifier. It POSTs one announcement to
// /notifications on the relay and treats any non-2xx status as a failed
// delivery.
func (n *httpNotifier) Notify(ctx context.Context, recipient models.User, job models.Job) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(announcement{
			Email:       recipient.Email,
			Name:        recipient.Name,
			Title:       job.Title,
			Company:     job.Company,
			Location:    job.Location,
			Category:    job.Category,
			Description: job.Description,
		}).
		Post("/notifications")
	if err != nil {
		return fmt.Errorf("notification relay request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("notification relay responded with %s", resp.Status())
	}

	return nil
}
