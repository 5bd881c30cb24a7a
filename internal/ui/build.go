package ui

import (
	"fmt"

	"formkit/internal/combobox"
	"formkit/internal/config"
	"formkit/internal/eventbus"
	"formkit/internal/ui/views"
)

// BuildForm turns a form definition into a Form model
func BuildForm(cfg *config.Config, bus eventbus.EventBus) (*Form, error) {
	styles := views.NewStyles()
	fields := make([]Field, 0, len(cfg.Fields))

	for _, def := range cfg.Fields {
		switch def.Kind {
		case config.KindSelect:
			variant, err := combobox.ParseVariant(def.Variant)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", def.Name, err)
			}
			label := def.Label
			if label == "" {
				label = def.Name
			}
			fields = append(fields, NewCombobox(def.Name, label, combobox.Config{
				Options:     def.Options,
				Value:       def.Value,
				Placeholder: def.Placeholder,
				Disabled:    def.Disabled,
				Variant:     variant,
				Width:       def.Width,
				Height:      def.Height,
			}, styles))

		case config.KindCheckbox:
			fields = append(fields, NewCheckbox(def.Name, CheckboxConfig{
				Label:    def.Label,
				Value:    def.Value,
				Checked:  def.Checked,
				Disabled: def.Disabled,
			}, styles))

		default:
			return nil, fmt.Errorf("%w: field %q has unknown kind %q", config.ErrInvalidForm, def.Name, def.Kind)
		}
	}

	title := cfg.Title
	if title == "" {
		title = "formkit"
	}
	return NewForm(title, fields, styles, bus), nil
}
