package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level settings of the dashboard client.
type ClientApp struct {
	// LogFile is where the client writes its logs.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the directory endpoint applied on start. May be empty.
	BaseURL string
	// RequestTimeout is the timeout for a single page request; zero means
	// no timeout.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the endpoint history.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// HistorySize is the number of recent base URLs offered in the UI.
	HistorySize int
}

// ClientConfig is the top-level dashboard configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the dashboard config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:          ClientDB{DSN: cfg.Storage.DB.DSN},
			HistorySize: cfg.Storage.HistorySize,
		},
	}
}
