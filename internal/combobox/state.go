package combobox

import "formkit/internal/domain"

// State is the whole interaction state of one combobox instance
type State struct {
	Open      bool
	Query     string // text in the input; the filter term while typing
	Highlight int    // index into the filtered view, or NoHighlight
	Value     any    // last committed value
	Label     string // last committed label
}

// Equal reports whether two states are indistinguishable
func (s State) Equal(o State) bool {
	return s.Open == o.Open &&
		s.Query == o.Query &&
		s.Highlight == o.Highlight &&
		s.Label == o.Label &&
		domain.SameValue(s.Value, o.Value)
}

// Initial builds the state of a freshly mounted combobox. The committed label
// is looked up by value; a value missing from the catalog keeps an empty label.
func Initial(catalog []domain.Option, value any) State {
	s := State{Highlight: 0, Value: value}
	if i := domain.FindByValue(catalog, value); i >= 0 {
		s.Label = catalog[i].Label
	}
	return s
}

// EditText replaces the query, opens the list and points the highlight at the
// first row of the new view.
func EditText(s State, catalog []domain.Option, raw string) (State, []domain.Option) {
	view := Filter(catalog, raw)
	s.Query = raw
	s.Open = true
	s.Highlight = clamp(0, len(view))
	return s, view
}

// Navigate opens the list and moves the highlight one row with wraparound
func Navigate(s State, view []domain.Option, dir Direction) State {
	s.Open = true
	s.Highlight = Step(s.Highlight, len(view), dir)
	return s
}

// Highlighted returns the option under the highlight, if it is in bounds
func Highlighted(s State, view []domain.Option) (domain.Option, bool) {
	if s.Highlight < 0 || s.Highlight >= len(view) {
		return domain.Option{}, false
	}
	return view[s.Highlight], true
}

// CommitOption accepts opt as the value, shows its label in the input and
// closes the list.
func CommitOption(s State, catalog []domain.Option, opt domain.Option) (State, []domain.Option) {
	view := Filter(catalog, opt.Label)
	s.Value = opt.Value
	s.Label = opt.Label
	s.Query = opt.Label
	s.Open = false
	s.Highlight = clamp(0, len(view))
	return s, view
}

// Toggle flips the list open or closed
func Toggle(s State, view []domain.Option) State {
	s.Open = !s.Open
	if s.Open {
		s.Highlight = clamp(s.Highlight, len(view))
	}
	return s
}

// Close hides the list without committing
func Close(s State) State {
	s.Open = false
	return s
}

// Reclamp re-derives the view after the catalog changed under the state.
// The highlight survives only if the view itself is unchanged.
func Reclamp(s State, catalog, previous []domain.Option) (State, []domain.Option) {
	view := Filter(catalog, s.Query)
	if sameView(previous, view) {
		s.Highlight = clamp(s.Highlight, len(view))
	} else {
		s.Highlight = clamp(0, len(view))
	}
	return s, view
}

func sameView(a, b []domain.Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label || !domain.SameValue(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
