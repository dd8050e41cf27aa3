package service

import (
	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type ClientServices struct {
	UserService     ClientUserService
	EndpointService ClientEndpointService
	AppInfoService  AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	directory adapter.UserDirectoryAdapter,
	historySize int,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		UserService:     NewClientUserService(directory, logger),
		EndpointService: NewClientEndpointService(storages, historySize),
		AppInfoService:  NewAppInfoService(buildInfo),
	}
}
