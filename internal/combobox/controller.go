package combobox

import (
	"log"

	"formkit/internal/domain"
)

// Source identifies what triggered a commit
type Source int

const (
	SourceEnter Source = iota
	SourceClick
)

type observer struct {
	id int
	fn func(State)
}

// Controller owns the interaction state of one combobox. It is not safe for
// concurrent use; the host delivers events one at a time.
type Controller struct {
	cfg       Config
	catalog   []domain.Option
	view      []domain.Option
	state     State
	scroller  Scroller
	observers []observer
	nextID    int
}

// New creates a controller from cfg. scroller may be nil when the host has no
// scrollable region.
func New(cfg Config, scroller Scroller) *Controller {
	cfg = cfg.Resolve()
	c := &Controller{
		cfg:      cfg,
		catalog:  cfg.Options,
		scroller: scroller,
	}
	c.state = Initial(c.catalog, cfg.Value)
	c.view = Filter(c.catalog, c.state.Query)
	return c
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	return c.state
}

// View returns the filtered options currently on offer
func (c *Controller) View() []domain.Option {
	return c.view
}

// Config returns the resolved configuration
func (c *Controller) Config() Config {
	return c.cfg
}

// Display returns the text the input should show: the query while editing,
// otherwise the committed label. Empty means the placeholder applies.
func (c *Controller) Display() string {
	if c.state.Query != "" {
		return c.state.Query
	}
	return c.state.Label
}

// Subscribe registers fn to be called after every event that changed the
// state. The returned function removes it.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// OnTextEdit handles an edit of the input text
func (c *Controller) OnTextEdit(raw string) {
	if c.cfg.Disabled {
		return
	}
	next, view := EditText(c.state, c.catalog, raw)
	c.apply(next, view)
}

// OnDirectionalKey moves the highlight, opening the list if needed
func (c *Controller) OnDirectionalKey(dir Direction) {
	if c.cfg.Disabled {
		return
	}
	c.apply(Navigate(c.state, c.view, dir), c.view)
}

// Commit accepts an option. For SourceEnter the highlighted row of an open
// list is used. For SourceClick opt is used as given, or the view row at
// index when opt is nil. It reports whether a commit happened; only then is
// OnChange called, exactly once.
func (c *Controller) Commit(source Source, opt *domain.Option, index int) bool {
	if c.cfg.Disabled {
		return false
	}

	var chosen domain.Option
	switch source {
	case SourceEnter:
		if !c.state.Open {
			return false
		}
		o, ok := Highlighted(c.state, c.view)
		if !ok {
			return false
		}
		chosen = o
	case SourceClick:
		if opt != nil {
			chosen = *opt
		} else if index >= 0 && index < len(c.view) {
			chosen = c.view[index]
		} else {
			return false
		}
	default:
		return false
	}

	next, view := CommitOption(c.state, c.catalog, chosen)
	c.apply(next, view)
	log.Printf("combobox: committed %v", chosen)

	if c.cfg.OnChange != nil {
		c.cfg.OnChange(chosen.Value, chosen)
	}
	return true
}

// ToggleOpen handles a click on the trigger
func (c *Controller) ToggleOpen() {
	if c.cfg.Disabled {
		return
	}
	c.apply(Toggle(c.state, c.view), c.view)
}

// Close hides the list, as on Escape
func (c *Controller) Close() {
	if c.cfg.Disabled {
		return
	}
	c.apply(Close(c.state), c.view)
}

// Blur reacts to the host reporting loss of focus
func (c *Controller) Blur() {
	c.apply(Close(c.state), c.view)
}

// SetOptions replaces the catalog
func (c *Controller) SetOptions(options []domain.Option) {
	catalog := make([]domain.Option, len(options))
	copy(catalog, options)
	c.catalog = catalog

	next, view := Reclamp(c.state, c.catalog, c.view)
	c.apply(next, view)
}

// SetValue re-seeds the committed value from the host without notifying it
func (c *Controller) SetValue(value any) {
	next := c.state
	next.Value = value
	next.Label = ""
	if i := domain.FindByValue(c.catalog, value); i >= 0 {
		next.Label = c.catalog[i].Label
	}
	c.apply(next, c.view)
}

// HandleKey maps a key name onto the controller and reports whether the key
// was consumed. Keys it does not consume belong to the text field.
func (c *Controller) HandleKey(key string) bool {
	if c.cfg.Disabled {
		return false
	}

	switch key {
	case "up", "ctrl+p":
		c.OnDirectionalKey(DirectionUp)
		return true
	case "down", "ctrl+n":
		c.OnDirectionalKey(DirectionDown)
		return true
	case "enter":
		wasOpen := c.state.Open
		c.Commit(SourceEnter, nil, NoHighlight)
		return wasOpen
	case "esc":
		if !c.state.Open {
			return false
		}
		c.Close()
		return true
	}
	return false
}

// apply installs next, asks the scroller to follow the highlight and notifies
// observers. Everything happens before the caller returns.
func (c *Controller) apply(next State, view []domain.Option) {
	prev := c.state
	viewChanged := !sameView(c.view, view)

	c.state = next
	c.view = view

	if next.Open && next.Highlight != NoHighlight &&
		(viewChanged || !prev.Open || prev.Highlight != next.Highlight) {
		c.requestScrollTo(next.Highlight)
	}

	if viewChanged || !prev.Equal(next) {
		c.notify()
	}
}

func (c *Controller) requestScrollTo(index int) {
	if c.scroller == nil {
		return
	}
	c.scroller.ScrollIntoView(index, len(c.view))
}

func (c *Controller) notify() {
	observers := make([]observer, len(c.observers))
	copy(observers, c.observers)
	for _, o := range observers {
		o.fn(c.state)
	}
}
