package directory

import (
	"github.com/qyinm/staffdir/format"
	"github.com/qyinm/staffdir/types"
)

// DefaultNarrowWidth is the widest terminal, in columns, that still gets cards.
const DefaultNarrowWidth = 100

// Options configures a Controller.
type Options struct {
	NarrowWidth int
	AssetDir    string
}

// Controller owns the directory state. All mutation goes through its
// methods and every method that changes what is visible re-renders the
// Frame from current state. It is not safe for concurrent use; the UI
// drives it from the Bubble Tea update loop.
type Controller struct {
	narrowWidth int
	assetDir    string

	employees []types.Employee
	filtered  []types.Employee
	query     string

	phase types.Phase
	err   string
	class types.ViewportClass

	expanded Expansion
	frame    Frame
	renders  int
}

// NewController starts in the Loading phase with a Wide viewport.
func NewController(opts Options) *Controller {
	if opts.NarrowWidth <= 0 {
		opts.NarrowWidth = DefaultNarrowWidth
	}
	if opts.AssetDir == "" {
		opts.AssetDir = format.DefaultAssetDir
	}
	c := &Controller{
		narrowWidth: opts.NarrowWidth,
		assetDir:    opts.AssetDir,
		phase:       types.Loading,
		class:       types.Wide,
		expanded:    make(Expansion),
	}
	c.frame = Frame{Phase: c.phase, Mode: ModeFor(c.class)}
	return c
}

// BeginLoad enters the Loading phase. Existing records stay in place until
// the resolution finishes.
func (c *Controller) BeginLoad() {
	c.phase = types.Loading
	c.err = ""
	c.render()
}

// Loaded replaces the collection wholesale and re-applies the current query.
func (c *Controller) Loaded(employees []types.Employee) {
	c.employees = employees
	c.filtered = Filter(c.employees, c.query)
	c.phase = SelectPhase(c.filtered)
	c.err = ""
	c.render()
}

// Failed enters the Error phase with err's message.
func (c *Controller) Failed(err error) {
	c.phase = types.Error
	c.err = err.Error()
	c.render()
}

// SetQuery refilters the current collection and re-renders. While Loading
// or Error the phase is left alone.
func (c *Controller) SetQuery(query string) {
	c.query = query
	c.filtered = Filter(c.employees, c.query)
	if c.phase == types.Empty || c.phase == types.Populated {
		c.phase = SelectPhase(c.filtered)
	}
	c.render()
}

// Resize reclassifies the viewport and re-renders only when the class
// changed. It reports whether a render happened.
func (c *Controller) Resize(width int) bool {
	class := types.Classify(width, c.narrowWidth)
	if class == c.class {
		return false
	}
	c.class = class
	c.render()
	return true
}

// Toggle flips the expansion of one card. It only applies to cards that
// are currently drawn; other cards and the filtered view are untouched.
// It reports whether the card is now expanded.
func (c *Controller) Toggle(id string) bool {
	if c.frame.Mode != CardMode {
		return false
	}
	idx := -1
	for i := range c.frame.Cards {
		if c.frame.Cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	open := c.expanded.Toggle(id)
	for i := range c.frame.Cards {
		if c.frame.Cards[i].ID == id {
			c.frame.Cards[i].Expanded = open
		}
	}
	return open
}

// render rebuilds the frame from scratch. Presentation is re-decided on
// every call and expansion state is discarded.
func (c *Controller) render() {
	c.renders++
	c.expanded = make(Expansion)

	f := Frame{
		Phase: c.phase,
		Err:   c.err,
		Mode:  ModeFor(c.class),
	}
	if c.phase == types.Populated {
		switch f.Mode {
		case TableMode:
			f.Rows = BuildRows(c.filtered, c.assetDir)
		case CardMode:
			f.Cards = BuildCards(c.filtered, c.assetDir)
		}
	}
	c.frame = f
}

// Frame returns the view-model of the most recent render.
func (c *Controller) Frame() Frame { return c.frame }

// Renders counts renders since construction.
func (c *Controller) Renders() int { return c.renders }

// Phase returns the active phase.
func (c *Controller) Phase() types.Phase { return c.phase }

// Class returns the current viewport class.
func (c *Controller) Class() types.ViewportClass { return c.class }

// Query returns the active search query.
func (c *Controller) Query() string { return c.query }

// Employees returns the full record collection.
func (c *Controller) Employees() []types.Employee { return c.employees }

// Filtered returns the current filtered view.
func (c *Controller) Filtered() []types.Employee { return c.filtered }

// IsExpanded reports whether the card for id is open.
func (c *Controller) IsExpanded(id string) bool { return c.expanded.IsExpanded(id) }

// Lookup finds an employee in the full collection by id.
func (c *Controller) Lookup(id string) (types.Employee, bool) {
	for _, e := range c.employees {
		if e.ID() == id {
			return e, true
		}
	}
	return types.Employee{}, false
}
