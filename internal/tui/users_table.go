package tui

import (
	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/charmbracelet/bubbles/table"
)

const defaultTableHeight = 12

var userColumns = []table.Column{
	{Title: "First Name", Width: 14},
	{Title: "Last Name", Width: 14},
	{Title: "Email", Width: 30},
	{Title: "Mobile", Width: 16},
	{Title: "Program", Width: 18},
	{Title: "Profile Completed", Width: 17},
}

func newUsersTable() table.Model {
	t := table.New(
		table.WithColumns(userColumns),
		table.WithRows([]table.Row{}),
		table.WithHeight(defaultTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	t.SetStyles(s)

	return t
}

func userRow(u models.User) table.Row {
	return table.Row{
		fitText(valueOrPlaceholder(u.FirstName), userColumns[0].Width),
		fitText(valueOrPlaceholder(u.LastName), userColumns[1].Width),
		fitText(valueOrPlaceholder(u.Email()), userColumns[2].Width),
		fitText(valueOrPlaceholder(u.Mobile), userColumns[3].Width),
		fitText(valueOrPlaceholder(u.MainProgramme), userColumns[4].Width),
		yesNo(u.ProfileCompleted),
	}
}

func userRows(users []models.User) []table.Row {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = userRow(u)
	}
	return rows
}
