package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"formkit/internal/ui/views"
)

// Checkbox defaults
const (
	DefaultCheckboxLabel = "Hello Label"
	DefaultCheckboxValue = "Hello Value"
)

// CheckboxConfig holds construction-time settings of a checkbox
type CheckboxConfig struct {
	Label    string
	Value    any
	Checked  bool
	Disabled bool
	OnChange func(value any, checked bool)
}

// Resolve fills unset fields with their defaults
func (c CheckboxConfig) Resolve() CheckboxConfig {
	if c.Label == "" {
		c.Label = DefaultCheckboxLabel
	}
	if c.Value == nil {
		c.Value = DefaultCheckboxValue
	}
	return c
}

// Checkbox is a boolean toggle field
type Checkbox struct {
	name    string
	cfg     CheckboxConfig
	checked bool
	focused bool
	styles  *views.Styles
}

// NewCheckbox creates a checkbox field
func NewCheckbox(name string, cfg CheckboxConfig, styles *views.Styles) *Checkbox {
	cfg = cfg.Resolve()
	return &Checkbox{
		name:    name,
		cfg:     cfg,
		checked: cfg.Checked,
		styles:  styles,
	}
}

func (c *Checkbox) Name() string { return c.name }

// Value reports whether the box is checked
func (c *Checkbox) Value() any { return c.checked }

// Checked reports whether the box is checked
func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Checkbox) Blur() { c.focused = false }

func (c *Checkbox) Dismiss() {}

// Toggle flips the box and notifies the host
func (c *Checkbox) Toggle() tea.Cmd {
	if c.cfg.Disabled {
		return nil
	}
	c.checked = !c.checked
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(c.cfg.Value, c.checked)
	}
	msg := ToggledMsg{Field: c.name, Value: c.cfg.Value, Checked: c.checked}
	return func() tea.Msg { return msg }
}

func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil
	}
	switch keyMsg.String() {
	case " ", "enter":
		return c.Toggle()
	}
	return nil
}

func (c *Checkbox) Click(row int) tea.Cmd {
	return c.Toggle()
}

func (c *Checkbox) View() string {
	box := "[ ]"
	if c.checked {
		box = "[" + c.styles.CheckMark.Render("✓") + "]"
	}

	label := c.styles.Label.Render(c.cfg.Label)
	if c.cfg.Disabled {
		label = c.styles.Disabled.Render(c.cfg.Label)
	} else if c.focused {
		label = c.styles.Label.Underline(true).Render(c.cfg.Label)
	}
	return box + " " + label
}
