package service

import (
	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/notify"
	"github.com/jobify-dev/jobify/internal/store"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	JobService         JobService
	ApplicationService ApplicationService
}

func NewServices(storages *store.Storages, broadcaster notify.Broadcaster, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserService:        NewUserService(storages.UserRepository, logger),
		JobService:         NewJobService(storages.JobRepository, storages.UserRepository, broadcaster, logger),
		ApplicationService: NewApplicationService(storages.JobRepository, logger),
	}
}
