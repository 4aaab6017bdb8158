package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/jobify-dev/jobify/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateInterests(ctx context.Context, userID int64, role string, interests []string) (models.User, error)
	UpdateLinkedIn(ctx context.Context, userID int64, linkedin string) (models.User, error)
}

type JobService interface {
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, jobID int64) (models.Job, error)
	Categories(ctx context.Context) []string
}

type ApplicationService interface {
	Apply(ctx context.Context, jobID, userID int64) error
	ListApplied(ctx context.Context, userID int64) ([]models.Job, error)
}
