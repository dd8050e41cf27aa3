package tui

import (
	"github.com/MKhiriev/go-user-dashboard/models"
)

// pageLoadedMsg carries the outcome of the fetch issued with sequence seq.
type pageLoadedMsg struct {
	seq    int
	cursor int
	page   models.Page
	err    error
}

type historyLoadedMsg struct {
	urls []string
	err  error
}

type endpointRememberedMsg struct {
	url string
	err error
}

type copiedMsg struct {
	email string
	err   error
}

type clearStatusMsg struct{}
