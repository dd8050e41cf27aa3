package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uiSpy struct {
	runs int
	err  error
}

func (u *uiSpy) Run(context.Context) error {
	u.runs++
	return u.err
}

type closerSpy struct {
	name  string
	order *[]string
	err   error
}

func (c *closerSpy) Close() error {
	*c.order = append(*c.order, c.name)
	return c.err
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run_ClosesInReverseOrder(t *testing.T) {
	var order []string
	ui := &uiSpy{}

	app, err := NewApp(ui, logger.Nop(),
		&closerSpy{name: "db", order: &order},
		&closerSpy{name: "log", order: &order},
	)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.runs)
	assert.Equal(t, []string{"log", "db"}, order)
}

func TestApp_Run_JoinsErrors(t *testing.T) {
	var order []string
	uiErr := errors.New("terminal lost")
	closeErr := errors.New("database is locked")

	app, err := NewApp(&uiSpy{err: uiErr}, logger.Nop(), &closerSpy{name: "db", order: &order, err: closeErr})
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
	assert.ErrorIs(t, err, closeErr)
	assert.Equal(t, []string{"db"}, order, "resources are released even when the ui fails")
}
