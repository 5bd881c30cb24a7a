package combobox

import (
	"errors"
	"fmt"
	"slices"

	"formkit/internal/domain"
)

// Variant is a visual styling tag. It has no behavioral effect.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantSuccess   Variant = "success"
	VariantDanger    Variant = "danger"
	VariantWarning   Variant = "warning"
)

// Variants lists every supported styling tag
var Variants = []Variant{VariantPrimary, VariantSecondary, VariantSuccess, VariantDanger, VariantWarning}

// ErrUnknownVariant is returned when a variant tag is not one of Variants
var ErrUnknownVariant = errors.New("unknown variant")

// ParseVariant converts a tag into a Variant. The empty tag means primary.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantPrimary, nil
	}
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

// Valid reports whether v is a supported tag
func (v Variant) Valid() bool {
	return slices.Contains(Variants, v)
}

// Defaults applied by Resolve
const (
	DefaultPlaceholder = "Please select"
	DefaultWidth       = 24
	DefaultHeight      = 5
)

// ChangeFunc receives the committed value and the full option it came from
type ChangeFunc func(value any, opt domain.Option)

// Config holds construction-time settings of a combobox
type Config struct {
	Options     []domain.Option
	Value       any
	Placeholder string
	Disabled    bool
	Variant     Variant
	Width       int // layout hint, in cells
	Height      int // visible option rows
	OnChange    ChangeFunc
}

// Resolve returns a copy of c with every unset field given its default.
// The catalog is copied so later changes by the caller do not leak in.
func (c Config) Resolve() Config {
	out := c
	out.Options = slices.Clone(c.Options)
	if out.Options == nil {
		out.Options = []domain.Option{}
	}
	if out.Value == nil {
		out.Value = ""
	}
	if out.Placeholder == "" {
		out.Placeholder = DefaultPlaceholder
	}
	if !out.Variant.Valid() {
		out.Variant = VariantPrimary
	}
	if out.Width <= 0 {
		out.Width = DefaultWidth
	}
	if out.Height <= 0 {
		out.Height = DefaultHeight
	}
	return out
}
