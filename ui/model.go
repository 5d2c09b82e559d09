package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/staffdir/directory"
	"github.com/qyinm/staffdir/format"
	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/types"
)

// Model is the main TUI model. Directory state lives in the controller;
// the model only holds widgets and input mode.
type Model struct {
	source     types.EmployeeSource
	dir        *directory.Controller
	table      table.Model
	viewport   viewport.Model
	search     textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap
	searching  bool
	cursor     int
	requestID  int
	lastRender int
	width      int
	height     int
	statusMsg  string
}

// NewModel creates a new Model reading from source.
func NewModel(source types.EmployeeSource, opts directory.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name, job or phone"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(DraculaPink)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(DraculaComment)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(DraculaPink)

	dir := directory.NewController(opts)
	dir.BeginLoad()

	return Model{
		source:    source,
		dir:       dir,
		table:     newTable(),
		viewport:  viewport.New(0, 0),
		search:    ti,
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		requestID: 1,
		statusMsg: "Loading",
	}
}

// Init starts the first resolution.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchEmployees(m.source, m.requestID))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case employeesMsg:
		if msg.requestID != m.requestID {
			return m, nil
		}
		if msg.err != nil {
			logging.Error("resolve employees failed", "err", msg.err)
			m.dir.Failed(msg.err)
			m.statusMsg = "Failed"
		} else {
			logging.Debug("employees resolved", "count", len(msg.employees))
			m.dir.Loaded(msg.employees)
			m.statusMsg = fmt.Sprintf("%d employees", len(msg.employees))
		}

	case copiedMsg:
		if msg.err != nil {
			logging.Warn("clipboard write failed", "err", msg.err)
			m.statusMsg = "Copy failed"
		} else {
			m.statusMsg = "Copied " + msg.text
		}

	case spinner.TickMsg:
		if m.dir.Phase() == types.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		if m.dir.Resize(msg.Width) {
			logging.Debug("viewport class changed", "class", m.dir.Class())
		} else if m.dir.Frame().Mode == directory.CardMode {
			m.layoutCards()
		}

	case tea.KeyMsg:
		if m.searching {
			cmds = append(cmds, m.updateSearch(msg))
			break
		}
		cmds = append(cmds, m.handleKey(msg))
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return nil
	case tea.KeyCtrlC:
		return tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.dir.Query() {
		m.dir.SetQuery(q)
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m.search.Focus()
	case key.Matches(msg, m.keys.Back):
		if m.dir.Query() != "" {
			m.search.SetValue("")
			m.dir.SetQuery("")
		}
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		return nil
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	case key.Matches(msg, m.keys.Copy):
		e, ok := m.selected()
		if !ok {
			return nil
		}
		return copyToClipboard(format.Phone(e.Phone()))
	}

	if m.dir.Phase() != types.Populated {
		return nil
	}

	if m.dir.Frame().Mode == directory.TableMode {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}

	cards := m.dir.Frame().Cards
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(cards)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(cards) {
			m.dir.Toggle(cards[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	default:
		return nil
	}
	m.layoutCards()
	return nil
}

// refresh drops any cached collection and starts a new resolution. A
// response from an earlier request is ignored when it arrives.
func (m *Model) refresh() tea.Cmd {
	if clearable, ok := m.source.(cacheClearSource); ok {
		clearable.ClearCache()
	}
	m.requestID++
	m.dir.BeginLoad()
	m.statusMsg = "Loading"
	return tea.Batch(m.spinner.Tick, fetchEmployees(m.source, m.requestID))
}

// sync redraws widgets from the controller's frame whenever it has
// re-rendered since the last sync.
func (m *Model) sync() {
	if m.dir.Renders() == m.lastRender {
		return
	}
	m.lastRender = m.dir.Renders()
	m.cursor = 0

	f := m.dir.Frame()
	switch f.Mode {
	case directory.TableMode:
		m.table.SetRows(tableRows(f.Rows))
		m.table.SetCursor(0)
	case directory.CardMode:
		m.viewport.SetYOffset(0)
		m.layoutCards()
	}
}

// layoutCards redraws the card list and scrolls just enough to keep the
// card under the cursor visible.
func (m *Model) layoutCards() {
	content, offsets := renderCards(m.dir.Frame().Cards, m.cursor, m.viewport.Width)
	m.viewport.SetContent(content)
	if m.cursor >= len(offsets) {
		return
	}

	top := offsets[m.cursor]
	bottom := m.viewport.TotalLineCount() - 1
	if m.cursor+1 < len(offsets) {
		bottom = offsets[m.cursor+1] - 2
	}
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// selected returns the employee under the cursor in either presentation.
func (m Model) selected() (types.Employee, bool) {
	if m.dir.Phase() != types.Populated {
		return types.Employee{}, false
	}
	f := m.dir.Frame()
	var id string
	switch f.Mode {
	case directory.TableMode:
		i := m.table.Cursor()
		if i < 0 || i >= len(f.Rows) {
			return types.Employee{}, false
		}
		id = f.Rows[i].ID
	case directory.CardMode:
		if m.cursor >= len(f.Cards) {
			return types.Employee{}, false
		}
		id = f.Cards[m.cursor].ID
	}
	return m.dir.Lookup(id)
}

// View renders the current view
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Staff Directory"))
	b.WriteString(StatusBarStyle.Render(" " + m.statusMsg))
	b.WriteString("\n")
	b.WriteString(m.searchView())
	b.WriteString("\n")

	f := m.dir.Frame()
	switch f.Phase {
	case types.Loading:
		b.WriteString(fmt.Sprintf("\n %s Loading employees...\n", m.spinner.View()))
	case types.Error:
		b.WriteString("\n " + ErrorStyle.Render("Error: "+f.Err) + "\n")
		b.WriteString(StatusBarStyle.Render(" Press r to try again.") + "\n")
	case types.Empty:
		b.WriteString(EmptyStyle.Render("No employees found.") + "\n")
	case types.Populated:
		if f.Mode == directory.TableMode {
			b.WriteString(m.table.View())
		} else {
			b.WriteString(m.viewport.View())
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) searchView() string {
	style := SearchStyle
	if m.searching {
		style = SearchFocusedStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(m.search.View())
}

// resizePanes adjusts the dimensions of table and viewport based on window size
func (m *Model) resizePanes() {
	// title, search box (3 lines) and help
	headerHeight := 4
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 4
	}
	availableHeight := m.height - headerHeight - helpHeight - 1

	if availableHeight < 0 {
		availableHeight = 0
	}

	m.table.SetColumns(tableColumns(m.width))
	m.table.SetWidth(m.width)
	m.table.SetHeight(availableHeight)

	m.viewport.Width = m.width
	m.viewport.Height = availableHeight

	m.search.Width = max(m.width-8, 0)
	m.help.Width = m.width
}
