package combobox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formkit/internal/domain"
)

func TestResolveDefaults(t *testing.T) {
	cfg := Config{}.Resolve()

	assert.NotNil(t, cfg.Options)
	assert.Empty(t, cfg.Options)
	assert.Equal(t, "", cfg.Value)
	assert.Equal(t, "Please select", cfg.Placeholder)
	assert.False(t, cfg.Disabled)
	assert.Equal(t, VariantPrimary, cfg.Variant)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Nil(t, cfg.OnChange)
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	in := Config{
		Options:     []domain.Option{{Value: 1, Label: "one"}},
		Value:       1,
		Placeholder: "Pick",
		Variant:     VariantDanger,
		Width:       40,
		Height:      8,
	}
	cfg := in.Resolve()

	assert.Equal(t, "Pick", cfg.Placeholder)
	assert.Equal(t, VariantDanger, cfg.Variant)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 8, cfg.Height)

	in.Options[0].Label = "changed"
	assert.Equal(t, "one", cfg.Options[0].Label, "catalog must be copied")
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, err := ParseVariant(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, VariantPrimary, got)

	_, err = ParseVariant("info")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
