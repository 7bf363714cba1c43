package http

import (
	"context"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/service"
)

// Pinger is the slice of the database the health endpoint needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		db:       db,
		logger:   logger,
	}
}
