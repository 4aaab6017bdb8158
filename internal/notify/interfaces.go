// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package notify

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

import (
	"context"

	"github.com/jobify-dev/jobify/models"
)

// Notifier delivers a single job announcement to a single recipient.
// Implementations live in the adapter package (HTTP relay, SMTP).
type Notifier interface {
	Notify(ctx context.Context, recipient models.User, job models.Job) error
}

// Broadcaster fans a freshly created posting out to the recipients whose
// declared interests overlap the posting's interest tags.
type Broadcaster interface {
	NotifyJobPosted(ctx context.Context, job models.Job, recipients []models.User) int
}
