package ui

import (
	"path"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/staffdir/directory"
)

const (
	dateColumnWidth  = 12
	phoneColumnWidth = 21
	cellPadding      = 2 // table cells pad one space each side
)

func newTable() table.Model {
	t := table.New(
		table.WithColumns(tableColumns(0)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(DraculaComment).
		BorderBottom(true).
		Foreground(DraculaPink).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(DraculaCyan).
		Bold(true)
	t.SetStyles(styles)
	return t
}

// tableColumns splits width between the five columns. Date and phone have
// fixed widths; photo, name and job share what is left.
func tableColumns(width int) []table.Column {
	flexible := width - dateColumnWidth - phoneColumnWidth - 5*cellPadding
	if flexible < 30 {
		flexible = 30
	}
	photo := flexible * 3 / 10
	name := flexible * 4 / 10
	job := flexible - photo - name

	return []table.Column{
		{Title: "Photo", Width: photo},
		{Title: "Name", Width: name},
		{Title: "Job", Width: job},
		{Title: "Admission", Width: dateColumnWidth},
		{Title: "Phone", Width: phoneColumnWidth},
	}
}

func tableRows(rows []directory.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			path.Base(r.Photo),
			r.Name,
			r.Job,
			r.AdmissionDate,
			r.Phone,
		})
	}
	return out
}
