package directory

import (
	"github.com/qyinm/staffdir/format"
	"github.com/qyinm/staffdir/types"
)

// Mode is the presentation chosen for a render.
type Mode int

const (
	TableMode Mode = iota
	CardMode
)

func (m Mode) String() string {
	if m == CardMode {
		return "cards"
	}
	return "table"
}

// ModeFor maps a viewport class to its presentation.
func ModeFor(class types.ViewportClass) Mode {
	if class == types.Narrow {
		return CardMode
	}
	return TableMode
}

// Row is the display data for one employee: photo source plus formatted fields.
type Row struct {
	ID            string `json:"id"`
	Photo         string `json:"photo"`
	Name          string `json:"name"`
	Job           string `json:"job"`
	AdmissionDate string `json:"admission_date"`
	Phone         string `json:"phone"`
}

// Card is a Row plus its expand/collapse flag.
type Card struct {
	Row
	Expanded bool
}

// Frame is the view-model produced by a render.
type Frame struct {
	Phase types.Phase
	Err   string
	Mode  Mode
	Rows  []Row
	Cards []Card
}

// NewRow formats a single employee. A bad date or phone only degrades that field.
func NewRow(e types.Employee, assetDir string) Row {
	return Row{
		ID:            e.ID(),
		Photo:         format.Photo(e.Image(), assetDir),
		Name:          e.Name(),
		Job:           e.Job(),
		AdmissionDate: format.Date(e.AdmissionDate()),
		Phone:         format.Phone(e.Phone()),
	}
}

// BuildRows projects employees into table rows.
func BuildRows(employees []types.Employee, assetDir string) []Row {
	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, NewRow(e, assetDir))
	}
	return rows
}

// BuildCards projects employees into cards, all collapsed.
func BuildCards(employees []types.Employee, assetDir string) []Card {
	cards := make([]Card, 0, len(employees))
	for _, e := range employees {
		cards = append(cards, Card{Row: NewRow(e, assetDir)})
	}
	return cards
}

// Expansion tracks which cards are open, keyed by employee id.
// Entries exist only while expanded.
type Expansion map[string]bool

// Toggle flips id and reports whether it is now expanded.
func (x Expansion) Toggle(id string) bool {
	if x[id] {
		delete(x, id)
		return false
	}
	x[id] = true
	return true
}

// IsExpanded reports whether id is open.
func (x Expansion) IsExpanded(id string) bool {
	return x[id]
}
