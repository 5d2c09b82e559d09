package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/staffdir/types"
)

// Message types for async operations

type employeesMsg struct {
	requestID int
	employees []types.Employee
	err       error
}

type copiedMsg struct {
	text string
	err  error
}

type cacheClearSource interface {
	ClearCache()
}

// fetchEmployees returns a tea.Cmd that resolves the record collection asynchronously
func fetchEmployees(source types.EmployeeSource, requestID int) tea.Cmd {
	return func() tea.Msg {
		employees, err := source.GetEmployees(context.Background())
		return employeesMsg{requestID: requestID, employees: employees, err: err}
	}
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboardWrite(text)}
	}
}
