package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobify-dev/jobify/internal/mock"
	"github.com/jobify-dev/jobify/internal/service"
	"github.com/jobify-dev/jobify/internal/store"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userSvc := mock.NewMockUserService(ctrl)
	h := newTestHandler(&service.Services{UserService: userSvc})

	userSvc.EXPECT().
		GetProfile(gomock.Any(), int64(7)).
		Return(models.User{UserID: 7, Name: "John", Email: "john@example.com", PasswordHash: "$2a$10$hash", Role: models.RoleUser}, nil)

	req := authedRequest(http.MethodGet, "/api/user/profile", "", 7, models.RoleUser)
	rr := httptest.NewRecorder()
	h.profile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)

	// the stored bcrypt digest never leaves the server
	assert.NotContains(t, rr.Body.String(), "$2a$10$hash")
}

func TestProfile_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userSvc := mock.NewMockUserService(ctrl)
	h := newTestHandler(&service.Services{UserService: userSvc})

	userSvc.EXPECT().
		GetProfile(gomock.Any(), int64(7)).
		Return(models.User{}, store.ErrNoUserWasFound)

	req := authedRequest(http.MethodGet, "/api/user/profile", "", 7, models.RoleUser)
	rr := httptest.NewRecorder()
	h.profile(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateInterests_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userSvc := mock.NewMockUserService(ctrl)
	h := newTestHandler(&service.Services{UserService: userSvc})

	userSvc.EXPECT().
		UpdateInterests(gomock.Any(), int64(7), models.RoleUser, []string{"QA Engineer"}).
		Return(models.User{UserID: 7, Role: models.RoleUser, Interests: []string{"QA Engineer"}}, nil)

	req := authedRequest(http.MethodPut, "/api/user/interests", `{"interests":["QA Engineer"]}`, 7, models.RoleUser)
	rr := httptest.NewRecorder()
	h.updateInterests(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []string{"QA Engineer"}, got.Interests)
}

func TestUpdateInterests_AdminForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userSvc := mock.NewMockUserService(ctrl)
	h := newTestHandler(&service.Services{UserService: userSvc})

	userSvc.EXPECT().
		UpdateInterests(gomock.Any(), int64(7), models.RoleAdmin, gomock.Any()).
		Return(models.User{}, service.ErrWrongRole)

	req := authedRequest(http.MethodPut, "/api/user/interests", `{"interests":["QA Engineer"]}`, 7, models.RoleAdmin)
	rr := httptest.NewRecorder()
	h.updateInterests(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestUpdateLinkedIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userSvc := mock.NewMockUserService(ctrl)
	h := newTestHandler(&service.Services{UserService: userSvc})

	userSvc.EXPECT().
		UpdateLinkedIn(gomock.Any(), int64(7), "https://linkedin.com/in/john").
		Return(models.User{UserID: 7, LinkedIn: "https://linkedin.com/in/john"}, nil)

	req := authedRequest(http.MethodPut, "/api/user/linkedin", `{"linkedin":"https://linkedin.com/in/john"}`, 7, models.RoleUser)
	rr := httptest.NewRecorder()
	h.updateLinkedIn(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "https://linkedin.com/in/john", got.LinkedIn)
}

func TestUpdateInterests_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandler(&service.Services{UserService: mock.NewMockUserService(ctrl)})

	req := authedRequest(http.MethodPut, "/api/user/interests", `{broken`, 7, models.RoleUser)
	rr := httptest.NewRecorder()
	h.updateInterests(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
