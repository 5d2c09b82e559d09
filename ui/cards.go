package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/staffdir/directory"
)

const (
	iconCollapsed = "▾"
	iconExpanded  = "▴"
)

// renderCard draws one card. Collapsed cards show photo, name and the
// expand icon; expanded cards add the job, admission date and phone.
func renderCard(card directory.Card, selected bool, width int) string {
	inner := width - 2 // room for the selection border or indent
	if inner < 10 {
		inner = 10
	}

	icon := ExpandIconStyle.Render(iconCollapsed)
	if card.Expanded {
		icon = ExpandIconOpenStyle.Render(iconExpanded)
	}

	name := truncate(card.Name, inner-3)
	gap := inner - lipgloss.Width(name) - lipgloss.Width(icon)
	if gap < 1 {
		gap = 1
	}
	header := CardNameStyle.Render(name) + strings.Repeat(" ", gap) + icon

	lines := []string{
		header,
		CardPhotoStyle.Render(truncate(card.Photo, inner)),
	}
	if card.Expanded {
		lines = append(lines,
			detailLine("Job", card.Job, inner),
			detailLine("Admission date", card.AdmissionDate, inner),
			detailLine("Phone", card.Phone, inner),
		)
	}

	body := strings.Join(lines, "\n")
	if selected {
		return SelectedItemStyle.Render(body)
	}
	return ItemStyle.Render(body)
}

func detailLine(label, value string, width int) string {
	valueWidth := width - CardLabelStyle.GetWidth()
	if valueWidth < 4 {
		valueWidth = 4
	}
	return CardLabelStyle.Render(label) + CardValueStyle.Render(truncate(value, valueWidth))
}

// renderCards draws every card separated by a blank line and returns the
// line each card starts on, so the viewport can follow the cursor.
func renderCards(cards []directory.Card, cursor, width int) (string, []int) {
	var b strings.Builder
	offsets := make([]int, len(cards))
	line := 0
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}
		offsets[i] = line
		rendered := renderCard(card, i == cursor, width)
		b.WriteString(rendered)
		line += lipgloss.Height(rendered)
	}
	return b.String(), offsets
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
