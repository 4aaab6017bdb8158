// Package notify implements the job-posting announcement pipeline: when an
// admin publishes a posting, every user whose declared interests overlap the
// posting's interest tags receives a notification through the configured
// transport.
package notify

import (
	"context"
	"sync"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
)

// DefaultWorkers bounds the delivery pool when the configuration does not
// set an explicit size.
const DefaultWorkers = 4

// Fanout dispatches job announcements to matching recipients through a
// bounded pool of delivery goroutines. A failed delivery to one recipient is
// logged and never aborts deliveries to the others.
type Fanout struct {
	notifier Notifier
	workers  int
	logger   *logger.Logger
}

// NewFanout constructs a Fanout around the given delivery transport.
// workers <= 0 falls back to DefaultWorkers.
func NewFanout(notifier Notifier, workers int, logger *logger.Logger) *Fanout {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Fanout{
		notifier: notifier,
		workers:  workers,
		logger:   logger,
	}
}

// NotifyJobPosted delivers the posting to every recipient whose interests
// intersect the posting's interest tags. Deliveries run on at most
// f.workers goroutines; the call returns once every delivery has finished.
//
// The return value is the number of successful deliveries. Failures are
// logged per recipient and do not surface to the caller: a posting is
// created whether or not its announcements go out.
func (f *Fanout) NotifyJobPosted(ctx context.Context, job models.Job, recipients []models.User) int {
	log := logger.FromContext(ctx)

	matching := make([]models.User, 0, len(recipients))
	for _, recipient := range recipients {
		if interestsOverlap(job.Interests, recipient.Interests) {
			matching = append(matching, recipient)
		}
	}

	if len(matching) == 0 {
		return 0
	}

	queue := make(chan models.User)
	var delivered int64
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < f.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for recipient := range queue {
				if err := f.notifier.Notify(ctx, recipient, job); err != nil {
					log.Err(err).
						Int64("recipient", recipient.UserID).
						Int64("job", job.JobID).
						Msg("notification delivery failed")
					continue
				}
				mu.Lock()
				delivered++
				mu.Unlock()
			}
		}()
	}

	for _, recipient := range matching {
		queue <- recipient
	}
	close(queue)
	wg.Wait()

	log.Info().
		Int64("job", job.JobID).
		Int("matched", len(matching)).
		Int64("delivered", delivered).
		Msg("job announcement fan-out finished")

	return int(delivered)
}

// interestsOverlap reports whether the two tag sets share at least one tag.
func interestsOverlap(jobTags, userTags []string) bool {
	if len(jobTags) == 0 || len(userTags) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(jobTags))
	for _, tag := range jobTags {
		set[tag] = struct{}{}
	}

	for _, tag := range userTags {
		if _, ok := set[tag]; ok {
			return true
		}
	}

	return false
}
