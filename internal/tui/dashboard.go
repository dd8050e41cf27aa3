package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgEnterValidBaseURL = "Please enter a valid base URL"
	msgLoading           = "Loading data..."

	urlPlaceholder    = "Enter Base URL (e.g., https://www.qloneapp.com/version-test/api/1.0/obj/user)"
	searchPlaceholder = "Search by Name or Email"

	statusTTL = 2 * time.Second
)

type focusArea int

const (
	focusURL focusArea = iota
	focusSearch
	focusTable
)

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	focus       focusArea
	urlInput    textinput.Model
	searchInput textinput.Model
	table       table.Model
	spinner     spinner.Model

	baseURL string
	users   []models.User
	visible []models.User
	page    models.PageState
	loaded  bool
	loading bool
	// seq identifies the latest issued fetch; responses of older fetches
	// are dropped.
	seq int

	history    []string
	historyIdx int

	showAlert     bool
	alert         alertOverlayModel
	showBuildInfo bool
	buildInfo     models.AppBuildInfo
	status        string

	copyToClipboard func(string) error
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, initialURL string, logger *logger.Logger) dashboardModel {
	urlInput := textinput.New()
	urlInput.Placeholder = urlPlaceholder
	urlInput.Prompt = "URL    › "
	urlInput.Width = 80
	urlInput.Focus()

	searchInput := textinput.New()
	searchInput.Placeholder = searchPlaceholder
	searchInput.Prompt = "Search › "
	searchInput.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := dashboardModel{
		ctx:             ctx,
		services:        services,
		logger:          logger,
		focus:           focusURL,
		urlInput:        urlInput,
		searchInput:     searchInput,
		table:           newUsersTable(),
		spinner:         s,
		historyIdx:      -1,
		buildInfo:       services.AppInfoService.GetBuildInfo(),
		copyToClipboard: clipboard.WriteAll,
	}

	if initialURL = strings.TrimSpace(initialURL); initialURL != "" {
		m.urlInput.SetValue(initialURL)
		m.baseURL = initialURL
		m.loading = true
		m.seq = 1
	}

	return m
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.cmdLoadHistory()}
	if m.loading {
		cmds = append(cmds, m.spinner.Tick, m.cmdFetchPage(m.seq, m.baseURL, 0), m.cmdRemember(m.baseURL))
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, inputs, totals, pagination and help take roughly 14 lines
		if h := msg.Height - 14; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case pageLoadedMsg:
		return m.handlePageLoaded(msg), nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("failed to load endpoint history")
			return m, nil
		}
		m.history = msg.urls
		m.historyIdx = -1
		if m.baseURL == "" && m.urlInput.Value() == "" && len(m.history) > 0 {
			m.urlInput.SetValue(m.history[0])
			m.urlInput.CursorEnd()
		}
		return m, nil

	case endpointRememberedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("base_url", msg.url).Msg("failed to remember endpoint")
			return m, nil
		}
		m.history = prependUnique(m.history, msg.url)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("clipboard write failed")
			m.status = "Copy failed"
		} else {
			m.status = "Copied " + msg.email
		}
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m dashboardModel) handlePageLoaded(msg pageLoadedMsg) dashboardModel {
	if msg.seq != m.seq {
		m.logger.Debug().
			Int("seq", msg.seq).
			Int("latest_seq", m.seq).
			Int("cursor", msg.cursor).
			Msg("dropping stale page response")
		return m
	}

	m.loading = false
	if msg.err != nil {
		m.logger.Err(msg.err).
			Str("base_url", m.baseURL).
			Int("cursor", msg.cursor).
			Msg("error fetching data")
		return m
	}

	m.users = msg.page.Results
	m.page = models.NewPageState(msg.page)
	m.loaded = true
	m.applyFilter()
	m.table.GotoTop()

	return m
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showAlert {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showAlert = false
			m.alert.message = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.tab):
		cmd := m.setFocus((m.focus + 1) % 3)
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.setFocus((m.focus + 2) % 3)
		return m, cmd
	case key.Matches(msg, keys.next):
		return m.nextPage()
	case key.Matches(msg, keys.previous):
		return m.previousPage()
	}

	switch m.focus {
	case focusURL:
		return m.updateURLInput(msg)
	case focusSearch:
		return m.updateSearchInput(msg)
	default:
		return m.updateTable(msg)
	}
}

func (m dashboardModel) updateURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		return m.setBaseURL(m.urlInput.Value())
	case key.Matches(msg, keys.up):
		m.browseHistory(1)
		return m, nil
	case key.Matches(msg, keys.down):
		m.browseHistory(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.searchInput.SetValue("")
		m.applyFilter()
		return m, nil
	}
	if key.Matches(msg, keys.enter) {
		cmd := m.setFocus(focusTable)
		return m, cmd
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m dashboardModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tableNext):
		return m.nextPage()
	case key.Matches(msg, keys.tablePrev):
		return m.previousPage()
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		cmd := m.startFetch(m.page.Cursor)
		return m, cmd
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopySelectedEmail()
	case key.Matches(msg, keys.tableInfo):
		m.showBuildInfo = true
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateFocused forwards non-key messages (cursor blink) to the focused input.
func (m dashboardModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case focusSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	}
	return m, cmd
}

// setBaseURL commits the URL typed by the operator. A changed non-empty URL
// starts a fetch of the first page; an empty one raises the alert.
func (m dashboardModel) setBaseURL(raw string) (tea.Model, tea.Cmd) {
	url := strings.TrimSpace(raw)
	m.historyIdx = -1

	if url == "" {
		m.baseURL = ""
		m.showAlertf(msgEnterValidBaseURL)
		return m, nil
	}
	if url == m.baseURL {
		return m, nil
	}

	m.baseURL = url
	fetch := m.startFetch(0)
	return m, tea.Batch(fetch, m.cmdRemember(url))
}

func (m dashboardModel) nextPage() (tea.Model, tea.Cmd) {
	if m.loading || !m.page.HasNext() {
		return m, nil
	}
	cmd := m.startFetch(m.page.NextCursor())
	return m, cmd
}

func (m dashboardModel) previousPage() (tea.Model, tea.Cmd) {
	if m.loading || !m.page.HasPrevious() {
		return m, nil
	}
	cmd := m.startFetch(m.page.PreviousCursor())
	return m, cmd
}

// startFetch issues a fetch of the page at cursor, or raises the alert when no
// base URL is set.
func (m *dashboardModel) startFetch(cursor int) tea.Cmd {
	if strings.TrimSpace(m.baseURL) == "" {
		m.showAlertf(msgEnterValidBaseURL)
		return nil
	}

	m.seq++
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdFetchPage(m.seq, m.baseURL, cursor))
}

func (m *dashboardModel) showAlertf(format string, args ...any) {
	m.showAlert = true
	m.alert.message = fmt.Sprintf(format, args...)
}

func (m *dashboardModel) applyFilter() {
	m.visible = service.FilterUsers(m.users, m.searchInput.Value())
	m.table.SetRows(userRows(m.visible))
	if c := m.table.Cursor(); c >= len(m.visible) || c < 0 {
		m.table.GotoTop()
	}
}

func (m *dashboardModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.urlInput.Blur()
	m.searchInput.Blur()
	m.table.Blur()

	switch f {
	case focusURL:
		return m.urlInput.Focus()
	case focusSearch:
		return m.searchInput.Focus()
	default:
		m.table.Focus()
		return nil
	}
}

// browseHistory moves through remembered URLs; step 1 goes to older entries.
// Leaving the newest entry restores the committed base URL.
func (m *dashboardModel) browseHistory(step int) {
	if len(m.history) == 0 {
		return
	}

	idx := m.historyIdx + step
	if idx >= len(m.history) {
		idx = len(m.history) - 1
	}
	if idx < 0 {
		m.historyIdx = -1
		m.urlInput.SetValue(m.baseURL)
		m.urlInput.CursorEnd()
		return
	}

	m.historyIdx = idx
	m.urlInput.SetValue(m.history[idx])
	m.urlInput.CursorEnd()
}

func (m dashboardModel) selectedUser() (models.User, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return models.User{}, false
	}
	return m.visible[idx], true
}

func (m dashboardModel) cmdFetchPage(seq int, baseURL string, cursor int) tea.Cmd {
	ctx := m.ctx
	users := m.services.UserService
	return func() tea.Msg {
		page, err := users.FetchPage(ctx, baseURL, cursor)
		return pageLoadedMsg{seq: seq, cursor: cursor, page: page, err: err}
	}
}

func (m dashboardModel) cmdRemember(url string) tea.Cmd {
	ctx := m.ctx
	endpoints := m.services.EndpointService
	return func() tea.Msg {
		return endpointRememberedMsg{url: url, err: endpoints.Remember(ctx, url)}
	}
}

func (m dashboardModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	endpoints := m.services.EndpointService
	return func() tea.Msg {
		urls, err := endpoints.Recent(ctx)
		return historyLoadedMsg{urls: urls, err: err}
	}
}

func (m dashboardModel) cmdCopySelectedEmail() tea.Cmd {
	user, ok := m.selectedUser()
	if !ok || user.Email() == "" {
		return nil
	}

	email := user.Email()
	write := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{email: email, err: write(email)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func prependUnique(urls []string, url string) []string {
	out := make([]string, 0, len(urls)+1)
	out = append(out, url)
	for _, u := range urls {
		if u != url {
			out = append(out, u)
		}
	}
	return out
}
