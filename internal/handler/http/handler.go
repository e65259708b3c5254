package http

import (
	"time"

	"github.com/pagemark/pagemark/internal/config"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/service"
)

type Handler struct {
	services *service.Services

	// internalToken guards the /internal/* job endpoints.
	internalToken string

	// version is reported by the version endpoint.
	version string

	rateLimit  int
	rateWindow time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		internalToken: cfg.App.InternalToken,
		version:       cfg.App.Version,
		rateLimit:     cfg.Server.RateLimit,
		rateWindow:    cfg.Server.RateWindow,
		logger:        logger,
	}
}
