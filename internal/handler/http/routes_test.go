package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobify-dev/jobify/internal/mock"
	"github.com/jobify-dev/jobify/internal/service"
	"github.com/jobify-dev/jobify/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes_PublicAndProtected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobSvc := mock.NewMockJobService(ctrl)
	jobSvc.EXPECT().ListJobs(gomock.Any()).Return([]models.Job{}, nil).AnyTimes()
	jobSvc.EXPECT().Categories(gomock.Any()).Return(models.JobCategories).AnyTimes()
	jobSvc.EXPECT().GetJob(gomock.Any(), int64(1)).Return(models.Job{JobID: 1}, nil).AnyTimes()

	h := newTestHandler(&service.Services{
		AuthService: mock.NewMockAuthService(ctrl),
		JobService:  jobSvc,
	})
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"browse is public", http.MethodGet, "/api/job/all", http.StatusOK},
		{"categories are public", http.MethodGet, "/api/job/categories", http.StatusOK},
		{"single job is public", http.MethodGet, "/api/job/1", http.StatusOK},
		{"profile needs a token", http.MethodGet, "/api/user/profile", http.StatusUnauthorized},
		{"apply needs a token", http.MethodPost, "/api/job/apply/1", http.StatusUnauthorized},
		{"applied needs a token", http.MethodGet, "/api/job/applied", http.StatusUnauthorized},
		{"create needs a token", http.MethodPost, "/api/job/create", http.StatusUnauthorized},
		{"unknown path", http.MethodGet, "/api/nope", http.StatusNotFound},
		{"wrong method is hidden", http.MethodGet, "/api/auth/register", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
