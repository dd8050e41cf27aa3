package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services   *service.ClientServices
	initialURL string
	logger     *logger.Logger
}

// New creates the dashboard UI. A non-empty initialURL is set as the base URL
// on start, which fetches the first page right away.
func New(services *service.ClientServices, initialURL string, logger *logger.Logger) *TUI {
	return &TUI{services: services, initialURL: initialURL, logger: logger}
}

// Run blocks until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.services, t.initialURL, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard ui: %w", err)
	}
	return nil
}
