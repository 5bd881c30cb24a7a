package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"formkit/internal/eventbus"
	"formkit/internal/ui/views"
)

// headerRows is the number of lines above the first field: title and a gap
const headerRows = 2

// Form is the top-level model holding an ordered list of fields
type Form struct {
	title   string
	fields  []Field
	focus   int
	keys    keyMap
	help    help.Model
	styles  *views.Styles
	bus     eventbus.EventBus
	helpOps *HelpOps
	width   int
	height  int
	done    bool
}

// NewForm creates a form over fields. bus may be nil.
func NewForm(title string, fields []Field, styles *views.Styles, bus eventbus.EventBus) *Form {
	return &Form{
		title:   title,
		fields:  fields,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  styles,
		bus:     bus,
		helpOps: NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (f *Form) SetProgram(p *tea.Program) {
	f.helpOps = NewHelpOps(p)
}

// Fields returns the form's fields in order
func (f *Form) Fields() []Field {
	return f.fields
}

// Focused returns the index of the focused field
func (f *Form) Focused() int {
	return f.focus
}

// Values returns every field's current value keyed by field name
func (f *Form) Values() map[string]any {
	values := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		values[field.Name()] = field.Value()
	}
	return values
}

// Init returns an initial command
func (f *Form) Init() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus].Focus()
}

// Update handles messages
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		f.help.Width = msg.Width
		return f, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Quit):
			f.done = true
			f.publish(eventbus.FormSubmittedEvent{Values: f.Values()})
			return f, tea.Quit
		case key.Matches(msg, f.keys.Next):
			return f, f.focusField(f.focus + 1)
		case key.Matches(msg, f.keys.Prev):
			return f, f.focusField(f.focus - 1)
		case key.Matches(msg, f.keys.Help):
			return f, f.showHelp()
		}
		return f, f.current(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return f, nil
		}
		index, row := f.fieldAt(msg.Y)
		if index < 0 {
			return f, nil
		}
		focusCmd := f.focusField(index)
		return f, tea.Batch(focusCmd, f.fields[index].Click(row))

	case tea.BlurMsg:
		// Terminal lost focus
		for _, field := range f.fields {
			field.Dismiss()
		}
		return f, nil

	case CommittedMsg:
		log.Printf("Field %s committed %v", msg.Field, msg.Value)
		f.publish(eventbus.ValueCommittedEvent{Field: msg.Field, Value: msg.Value, Option: msg.Option})
		return f, nil

	case ToggledMsg:
		log.Printf("Field %s toggled to %v", msg.Field, msg.Checked)
		f.publish(eventbus.CheckboxToggledEvent{Field: msg.Field, Value: msg.Value, Checked: msg.Checked})
		return f, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return f, nil
	}

	return f, f.current(msg)
}

func (f *Form) current(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus].Update(msg)
}

// focusField moves focus to index, wrapping around the field list
func (f *Form) focusField(index int) tea.Cmd {
	n := len(f.fields)
	if n == 0 {
		return nil
	}
	index = ((index % n) + n) % n
	if index == f.focus {
		return f.fields[index].Focus()
	}
	f.fields[f.focus].Blur()
	f.focus = index
	return f.fields[index].Focus()
}

// fieldAt maps a screen row to a field index and a row within that field
func (f *Form) fieldAt(y int) (int, int) {
	top := headerRows
	for i, field := range f.fields {
		h := lipgloss.Height(field.View())
		if y >= top && y < top+h {
			return i, y - top
		}
		top += h
	}
	return -1, 0
}

func (f *Form) showHelp() tea.Cmd {
	content := NewHelpRenderer(f.keys).RenderHelpContent()
	ops := f.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

func (f *Form) publish(event eventbus.DomainEvent) {
	if f.bus != nil {
		f.bus.Publish(event)
	}
}

// View renders the form
func (f *Form) View() string {
	if f.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(f.styles.Title.Render(f.title))
	b.WriteString(strings.Repeat("\n", headerRows))

	for _, field := range f.fields {
		b.WriteString(field.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.styles.Help.Render(f.help.View(f.keys)))
	return f.styles.Main.Render(b.String())
}
