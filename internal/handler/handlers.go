// Package handler assembles the transport handlers of the fixture server.
package handler

import (
	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(directory http.UserDirectory, buildInfo models.AppBuildInfo, cfg config.FixtureServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(directory, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
