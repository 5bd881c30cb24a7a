package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"formkit/internal/combobox"
	"formkit/internal/domain"
	"formkit/internal/ui/views"
)

// Field is one focusable widget of a form
type Field interface {
	Name() string
	Value() any
	Update(msg tea.Msg) tea.Cmd
	View() string
	Focus() tea.Cmd
	Blur()
	// Dismiss hides transient UI such as an open option list
	Dismiss()
	// Click handles a left click on the given row of the field's view
	Click(row int) tea.Cmd
}

// Combobox renders a searchable single-select field driven by a
// combobox.Controller
type Combobox struct {
	name     string
	label    string
	ctrl     *combobox.Controller
	input    textinput.Model
	viewport *combobox.Viewport
	styles   *views.Styles
	focused  bool
	pending  []tea.Msg
}

// NewCombobox creates a combobox field. cfg.OnChange, if set, is still called
// on every commit; the field additionally emits a CommittedMsg.
func NewCombobox(name, label string, cfg combobox.Config, styles *views.Styles) *Combobox {
	cfg = cfg.Resolve()
	m := &Combobox{
		name:     name,
		label:    label,
		styles:   styles,
		viewport: combobox.NewViewport(cfg.Height),
	}

	hostChange := cfg.OnChange
	cfg.OnChange = func(value any, opt domain.Option) {
		if hostChange != nil {
			hostChange(value, opt)
		}
		m.pending = append(m.pending, CommittedMsg{Field: name, Value: value, Option: opt})
	}
	m.ctrl = combobox.New(cfg, m.viewport)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = cfg.Width - 1
	m.input = ti

	m.sync(m.ctrl.State())
	m.ctrl.Subscribe(m.sync)
	return m
}

// sync mirrors controller state into the text input
func (m *Combobox) sync(s combobox.State) {
	if m.input.Value() != s.Query {
		m.input.SetValue(s.Query)
		m.input.CursorEnd()
	}
	if s.Label != "" {
		m.input.Placeholder = s.Label
	} else {
		m.input.Placeholder = m.ctrl.Config().Placeholder
	}
}

func (m *Combobox) Name() string { return m.name }

// Value returns the committed value
func (m *Combobox) Value() any { return m.ctrl.State().Value }

// Controller exposes the underlying controller
func (m *Combobox) Controller() *combobox.Controller { return m.ctrl }

// Viewport exposes the scroll window over the option list
func (m *Combobox) Viewport() *combobox.Viewport { return m.viewport }

// SetOptions replaces the option catalog
func (m *Combobox) SetOptions(options []domain.Option) {
	m.ctrl.SetOptions(options)
}

func (m *Combobox) Focus() tea.Cmd {
	m.focused = true
	if m.ctrl.Config().Disabled {
		return nil
	}
	return m.input.Focus()
}

func (m *Combobox) Blur() {
	m.focused = false
	m.input.Blur()
	m.ctrl.Blur()
}

func (m *Combobox) Dismiss() {
	m.ctrl.Blur()
}

// Update handles a message while the field is in the form
func (m *Combobox) Update(msg tea.Msg) tea.Cmd {
	if !m.focused || m.ctrl.Config().Disabled {
		return nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && m.ctrl.HandleKey(keyMsg.String()) {
		return m.flush()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); isKey && after != before {
		m.ctrl.OnTextEdit(after)
	}
	return tea.Batch(cmd, m.flush())
}

// Click maps row 0 to the trigger and the rows below to visible options
func (m *Combobox) Click(row int) tea.Cmd {
	if m.ctrl.Config().Disabled {
		return nil
	}
	if row <= 0 {
		m.ctrl.ToggleOpen()
		return m.flush()
	}
	if !m.ctrl.State().Open {
		return nil
	}

	view := m.ctrl.View()
	start, end := m.viewport.Visible(len(view))
	index := start + row - 1
	if index >= end {
		return nil
	}
	opt := view[index]
	m.ctrl.Commit(combobox.SourceClick, &opt, index)
	return m.flush()
}

// flush turns commits recorded during this event into messages
func (m *Combobox) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, msg := range m.pending {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Combobox) View() string {
	cfg := m.ctrl.Config()
	state := m.ctrl.State()

	label := m.styles.Label.Render(m.label + ":")
	indent := strings.Repeat(" ", lipgloss.Width(label)+1)

	arrow := "▾"
	if state.Open {
		arrow = "▴"
	}
	trigger := m.styles.Trigger(cfg.Variant, m.focused, cfg.Disabled).
		Width(cfg.Width).
		MaxHeight(1).
		Render(m.input.View())

	var b strings.Builder
	b.WriteString(label + " " + trigger + " " + arrow)

	if !state.Open {
		return b.String()
	}

	view := m.ctrl.View()
	if len(view) == 0 {
		b.WriteString("\n" + indent + m.styles.Empty.Render("No options"))
		return b.String()
	}

	start, end := m.viewport.Visible(len(view))
	for i := start; i < end; i++ {
		opt := view[i]
		text := ansi.Truncate(opt.Label, cfg.Width-2, "…")

		style := m.styles.Option
		if domain.SameValue(opt.Value, state.Value) && opt.Label == state.Label {
			style = m.styles.Committed
		}
		line := "  " + text
		if i == state.Highlight {
			line = "› " + text
			style = style.Inherit(m.styles.Highlight)
		}
		b.WriteString("\n" + indent + style.Width(cfg.Width).Render(line))
	}
	return b.String()
}
