// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/mock"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/internal/utils"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "jobify",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleUser, user.Role)
			assert.NotEqual(t, "secret", user.PasswordHash)
			assert.True(t, utils.CheckPassword(user.PasswordHash, "secret"))
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "John",
		Email: "john@example.com",
	}, "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, models.RoleUser, registered.Role)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	tests := []struct {
		name     string
		user     models.User
		password string
	}{
		{"empty name", models.User{Email: "a@b.c"}, "secret"},
		{"empty email", models.User{Name: "John"}, "secret"},
		{"empty password", models.User{Name: "John", Email: "a@b.c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_RoleHandling(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		wantRole string
		wantErr  error
	}{
		{name: "blank role defaults to user", role: "", wantRole: models.RoleUser},
		{name: "user role accepted", role: models.RoleUser, wantRole: models.RoleUser},
		{name: "admin role accepted", role: models.RoleAdmin, wantRole: models.RoleAdmin},
		{name: "unknown role rejected", role: "superuser", wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockUserRepository(ctrl)
			svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

			if tt.wantErr == nil {
				repo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, user models.User) (models.User, error) {
						assert.Equal(t, tt.wantRole, user.Role)
						user.UserID = 1
						return user, nil
					})
			}

			created, err := svc.RegisterUser(context.Background(), models.User{
				Name:  "Alice",
				Email: "alice@example.com",
				Role:  tt.role,
			}, "secret")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, created.Role)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{
		Name:  "John",
		Email: "john@example.com",
	}, "secret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	digest, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: digest, Role: models.RoleUser}, nil)

	user, err := svc.Login(context.Background(), "john@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	digest, err := utils.HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: digest}, nil)

	_, err = svc.Login(context.Background(), "john@example.com", "not-the-password")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret")

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "john@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	user := models.User{UserID: 42, Role: models.RoleAdmin}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.TokenClaims.Role)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	foreign, err := utils.GenerateJWTToken("jobify", 1, models.RoleUser, time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
