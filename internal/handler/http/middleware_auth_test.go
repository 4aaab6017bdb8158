package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/mock"
	"github.com/jobify-dev/jobify/internal/service"
	"github.com/jobify-dev/jobify/internal/utils"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: services,
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "scheme with trailing spaces only",
			header:  "Bearer   ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware tests ----

func TestAuth_NoHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	h := newTestHandler(&service.Services{AuthService: authSvc})

	rr := executeAuth(h, "", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		ParseToken(gomock.Any(), "garbage").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	h := newTestHandler(&service.Services{AuthService: authSvc})

	rr := executeAuth(h, "Bearer garbage", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ValidTokenPopulatesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	token := models.Token{UserID: 42}
	token.TokenClaims.Role = models.RoleAdmin

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(token, nil)

	h := newTestHandler(&service.Services{AuthService: authSvc})

	var reached bool
	rr := executeAuth(h, "Bearer valid-token", http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		reached = true

		userID, ok := utils.GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)

		role, ok := utils.GetRoleFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, models.RoleAdmin, role)
	}))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- requireAdmin middleware tests ----

func executeRequireAdmin(t *testing.T, role string, withRole bool) *httptest.ResponseRecorder {
	t.Helper()

	h := newTestHandler(&service.Services{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/job/create", nil)
	req = injectNopLogger(req)
	if withRole {
		req = req.WithContext(context.WithValue(req.Context(), utils.RoleCtxKey, role))
	}

	rr := httptest.NewRecorder()
	h.requireAdmin(next).ServeHTTP(rr, req)
	return rr
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	rr := executeRequireAdmin(t, models.RoleAdmin, true)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireAdmin_UserRejected(t *testing.T) {
	rr := executeRequireAdmin(t, models.RoleUser, true)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireAdmin_NoRoleInContext(t *testing.T) {
	rr := executeRequireAdmin(t, "", false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
