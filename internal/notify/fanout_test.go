package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
)

// recordingNotifier tracks delivered recipients and optionally fails for a
// chosen set of them.
type recordingNotifier struct {
	mu        sync.Mutex
	delivered []int64
	failFor   map[int64]bool
	inFlight  int
	maxSeen   int
}

func (n *recordingNotifier) Notify(_ context.Context, recipient models.User, _ models.Job) error {
	n.mu.Lock()
	n.inFlight++
	if n.inFlight > n.maxSeen {
		n.maxSeen = n.inFlight
	}
	n.mu.Unlock()

	defer func() {
		n.mu.Lock()
		n.inFlight--
		n.mu.Unlock()
	}()

	if n.failFor[recipient.UserID] {
		return errors.New("relay unreachable")
	}

	n.mu.Lock()
	n.delivered = append(n.delivered, recipient.UserID)
	n.mu.Unlock()
	return nil
}

func TestFanout_MatchesOnInterestOverlap(t *testing.T) {
	notifier := &recordingNotifier{}
	fanout := NewFanout(notifier, 2, logger.Nop())

	job := models.Job{JobID: 1, Interests: []string{"Backend Developer", "DevOps Engineer"}}
	recipients := []models.User{
		{UserID: 1, Interests: []string{"Backend Developer"}},
		{UserID: 2, Interests: []string{"QA Engineer"}},
		{UserID: 3, Interests: []string{"QA Engineer", "DevOps Engineer"}},
		{UserID: 4, Interests: nil},
	}

	delivered := fanout.NotifyJobPosted(context.Background(), job, recipients)

	assert.Equal(t, 2, delivered)
	assert.ElementsMatch(t, []int64{1, 3}, notifier.delivered)
}

func TestFanout_NoMatchingRecipients(t *testing.T) {
	notifier := &recordingNotifier{}
	fanout := NewFanout(notifier, 2, logger.Nop())

	job := models.Job{JobID: 1, Interests: []string{"Backend Developer"}}
	recipients := []models.User{
		{UserID: 1, Interests: []string{"QA Engineer"}},
	}

	delivered := fanout.NotifyJobPosted(context.Background(), job, recipients)

	assert.Zero(t, delivered)
	assert.Empty(t, notifier.delivered)
}

func TestFanout_JobWithoutTagsMatchesNobody(t *testing.T) {
	notifier := &recordingNotifier{}
	fanout := NewFanout(notifier, 2, logger.Nop())

	job := models.Job{JobID: 1}
	recipients := []models.User{
		{UserID: 1, Interests: []string{"Backend Developer"}},
	}

	assert.Zero(t, fanout.NotifyJobPosted(context.Background(), job, recipients))
}

func TestFanout_FailureDoesNotAbortOthers(t *testing.T) {
	notifier := &recordingNotifier{failFor: map[int64]bool{2: true}}
	fanout := NewFanout(notifier, 2, logger.Nop())

	job := models.Job{JobID: 1, Interests: []string{"Backend Developer"}}
	recipients := []models.User{
		{UserID: 1, Interests: []string{"Backend Developer"}},
		{UserID: 2, Interests: []string{"Backend Developer"}},
		{UserID: 3, Interests: []string{"Backend Developer"}},
	}

	delivered := fanout.NotifyJobPosted(context.Background(), job, recipients)

	assert.Equal(t, 2, delivered)
	assert.ElementsMatch(t, []int64{1, 3}, notifier.delivered)
}

func TestFanout_BoundedConcurrency(t *testing.T) {
	notifier := &recordingNotifier{}
	fanout := NewFanout(notifier, 3, logger.Nop())

	job := models.Job{JobID: 1, Interests: []string{"Backend Developer"}}
	recipients := make([]models.User, 0, 50)
	for i := int64(1); i <= 50; i++ {
		recipients = append(recipients, models.User{UserID: i, Interests: []string{"Backend Developer"}})
	}

	delivered := fanout.NotifyJobPosted(context.Background(), job, recipients)

	assert.Equal(t, 50, delivered)
	assert.LessOrEqual(t, notifier.maxSeen, 3)
}

func TestNewFanout_DefaultsWorkerCount(t *testing.T) {
	fanout := NewFanout(&recordingNotifier{}, 0, logger.Nop())
	assert.Equal(t, DefaultWorkers, fanout.workers)
}

func TestInterestsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		jobTags  []string
		userTags []string
		want     bool
	}{
		{"shared tag", []string{"QA Engineer"}, []string{"QA Engineer"}, true},
		{"disjoint", []string{"QA Engineer"}, []string{"Backend Developer"}, false},
		{"empty job tags", nil, []string{"QA Engineer"}, false},
		{"empty user tags", []string{"QA Engineer"}, nil, false},
		{"both empty", nil, nil, false},
		{"one of many", []string{"A", "B", "C"}, []string{"Z", "C"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interestsOverlap(tt.jobTags, tt.userTags))
		})
	}
}
