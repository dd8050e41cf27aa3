package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
)

var ErrNoUI = errors.New("no ui configured")

type App struct {
	ui      UI
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp assembles the dashboard. Closers are released in reverse order when
// Run returns.
func NewApp(ui UI, logger *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, closers: closers, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("dashboard started")

	runErr := a.ui.Run(ctx)
	if runErr != nil {
		runErr = fmt.Errorf("run ui: %w", runErr)
	}

	var closeErrs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Err(err).Msg("error releasing resource")
			closeErrs = append(closeErrs, err)
		}
	}

	a.logger.Info().Msg("dashboard stopped")

	return errors.Join(append([]error{runErr}, closeErrs...)...)
}
