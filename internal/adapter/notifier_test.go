// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifier_DeliversAnnouncement(t *testing.T) {
	var got announcement

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	notifier := NewHTTPNotifier(config.Notifier{RelayURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := notifier.Notify(context.Background(),
		models.User{UserID: 7, Name: "Alice", Email: "alice@example.com"},
		models.Job{JobID: 1, Title: "Senior Go Engineer", Company: "Acme", Location: "Remote", Category: "Backend Developer", Description: "Build services in Go."},
	)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Senior Go Engineer", got.Title)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Remote", got.Location)
	assert.Equal(t, "Backend Developer", got.Category)
	assert.Equal(t, "Build services in Go.", got.Description)
}

func TestHTTPNotifier_RelayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := NewHTTPNotifier(config.Notifier{RelayURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := notifier.Notify(context.Background(), models.User{Email: "alice@example.com"}, models.Job{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPNotifier_RelayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // shut down before use

	notifier := NewHTTPNotifier(config.Notifier{RelayURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := notifier.Notify(context.Background(), models.User{Email: "alice@example.com"}, models.Job{})

	assert.Error(t, err)
}

func TestSMTPNotifier_BuildsMail(t *testing.T) {
	notifier := NewSMTPNotifier(config.Notifier{
		SMTPAddress: "mail.internal:25",
		SMTPFrom:    "jobs@example.com",
	}, logger.Nop())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	notifier.send = func(addr, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := notifier.Notify(context.Background(),
		models.User{Name: "Alice", Email: "alice@example.com"},
		models.Job{Title: "QA Lead", Company: "Acme", Location: "Berlin", Category: "QA Engineer", Description: "Lead the QA guild."},
	)

	require.NoError(t, err)
	assert.Equal(t, "mail.internal:25", gotAddr)
	assert.Equal(t, "jobs@example.com", gotFrom)
	assert.Equal(t, []string{"alice@example.com"}, gotTo)

	mail := string(gotMsg)
	assert.Contains(t, mail, "Subject: New job posted: QA Lead at Acme")
	assert.Contains(t, mail, "Hi Alice,")
	assert.Contains(t, mail, "(Berlin)")
	assert.Contains(t, mail, "Lead the QA guild.")
}

func TestSMTPNotifier_SendFailure(t *testing.T) {
	notifier := NewSMTPNotifier(config.Notifier{SMTPAddress: "mail.internal:25", SMTPFrom: "jobs@example.com"}, logger.Nop())
	notifier.send = func(string, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := notifier.Notify(context.Background(), models.User{Email: "alice@example.com"}, models.Job{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "alice@example.com")
}

func TestNewNotifier_TransportSelection(t *testing.T) {
	log := logger.Nop()

	assert.IsType(t, &httpNotifier{}, NewNotifier(config.Notifier{Transport: "http", RelayURL: "http://relay"}, log))
	assert.IsType(t, &smtpNotifier{}, NewNotifier(config.Notifier{Transport: "smtp", SMTPAddress: "a:25", SMTPFrom: "f@e"}, log))
	assert.IsType(t, &logNotifier{}, NewNotifier(config.Notifier{}, log))
}

func TestLogNotifier_AlwaysSucceeds(t *testing.T) {
	notifier := &logNotifier{logger: logger.Nop()}

	assert.NoError(t, notifier.Notify(context.Background(), models.User{}, models.Job{}))
}
