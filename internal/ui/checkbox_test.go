package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formkit/internal/ui/views"
)

func TestCheckboxDefaults(t *testing.T) {
	c := NewCheckbox("agree", CheckboxConfig{}, views.NewStyles())

	assert.False(t, c.Checked())
	assert.Equal(t, "[ ] Hello Label", ansi.Strip(c.View()))
	assert.Equal(t, "Hello Value", c.cfg.Value)
}

func TestCheckboxToggleWithKeys(t *testing.T) {
	var calls []bool
	c := NewCheckbox("agree", CheckboxConfig{
		Label:    "Agree",
		Value:    "yes",
		OnChange: func(value any, checked bool) { calls = append(calls, checked) },
	}, views.NewStyles())

	assert.Nil(t, c.Update(keyMsg(tea.KeySpace)), "unfocused checkbox ignores keys")

	c.Focus()
	msgs := runCmd(c.Update(keyMsg(tea.KeySpace)))
	require.Equal(t, []tea.Msg{ToggledMsg{Field: "agree", Value: "yes", Checked: true}}, msgs)
	assert.Equal(t, "[✓] Agree", ansi.Strip(c.View()))

	runCmd(c.Update(keyMsg(tea.KeyEnter)))
	assert.False(t, c.Checked())
	assert.Equal(t, []bool{true, false}, calls)

	assert.Nil(t, c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
}

func TestCheckboxClickAndDisabled(t *testing.T) {
	c := NewCheckbox("agree", CheckboxConfig{Checked: true}, views.NewStyles())
	runCmd(c.Click(0))
	assert.False(t, c.Checked())

	d := NewCheckbox("locked", CheckboxConfig{Disabled: true}, views.NewStyles())
	d.Focus()
	assert.Nil(t, d.Click(0))
	assert.Nil(t, d.Update(keyMsg(tea.KeySpace)))
	assert.Equal(t, false, d.Value())
}
