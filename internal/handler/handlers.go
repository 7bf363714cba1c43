package handler

import (
	"github.com/expnse/expnse-server/internal/config"
	"github.com/expnse/expnse-server/internal/handler/http"
	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, db http.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, db, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
