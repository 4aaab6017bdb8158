// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package utils

import (
	"context"
	"testing"

	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetRoleFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, models.RoleAdmin)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestGetRoleFromContext_Missing(t *testing.T) {
	_, ok := GetRoleFromContext(context.Background())
	assert.False(t, ok)
}
