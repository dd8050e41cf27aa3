package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.showAlert {
		return appStyle.Render(m.alert.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("User Dashboard"))
	b.WriteString("\n\n")
	b.WriteString(m.urlInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Total Users in the System: %d", m.page.TotalRecords())))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(msgLoading)
		b.WriteString("\n")
	} else {
		b.WriteString(m.tableView())
		b.WriteString("\n\n")
		b.WriteString(m.paginationView())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpView()))

	return appStyle.Render(b.String())
}

func (m dashboardModel) tableView() string {
	view := m.table.View()
	switch {
	case !m.loaded:
		view += "\n" + helpStyle.Render("Set a base URL and press enter to load users")
	case len(m.visible) == 0:
		view += "\n" + helpStyle.Render("No users match")
	}
	return view
}

func (m dashboardModel) paginationView() string {
	previous := buttonStyle
	if !m.page.HasPrevious() {
		previous = disabledButtonStyle
	}
	next := buttonStyle
	if !m.page.HasNext() {
		next = disabledButtonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		previous.Render("Previous"),
		"  "+m.page.RangeLabel()+"  ",
		next.Render("Next"),
	)
}

func (m dashboardModel) helpView() string {
	switch m.focus {
	case focusURL:
		return helpLine(keys.enter, keys.tab, keys.previous, keys.next, keys.buildInfo, keys.forceQuit) + "  ↑/↓ history"
	case focusSearch:
		return helpLine(keys.tab, keys.previous, keys.next, keys.buildInfo, keys.forceQuit) + "  esc clear"
	default:
		return helpLine(keys.tablePrev, keys.tableNext, keys.reload, keys.copy, keys.tab, keys.quit)
	}
}
