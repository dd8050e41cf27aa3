package http

import (
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type Handler struct {
	directory UserDirectory
	buildInfo models.AppBuildInfo
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(directory UserDirectory, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		directory: directory,
		buildInfo: buildInfo,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
