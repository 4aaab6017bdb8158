package handler

import (
	"github.com/jobify-dev/jobify/internal/config"
	"github.com/jobify-dev/jobify/internal/handler/http"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
