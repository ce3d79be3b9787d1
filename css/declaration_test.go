package css_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dynstyle/css"
	"dynstyle/css/property"
)

func TestClassifyDeclaration(t *testing.T) {
	center := property.Property{Key: property.KeyTextAlign, Value: property.TextAlignCenter}

	t.Run("static", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("text-align", "center")
		require.NoError(t, err)
		require.Nil(t, d.Dynamic)
		require.Equal(t, center, *d.Static)
	})

	t.Run("static with surrounding space", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("  text-align ", "  center  ")
		require.NoError(t, err)
		require.Equal(t, center, *d.Static)
	})

	t.Run("dynamic exact", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("text-align", "[[ hello | center ]]")
		require.NoError(t, err)
		require.Nil(t, d.Static)
		require.Equal(t, css.DynamicProperty{ID: "hello", Key: property.KeyTextAlign, Default: center}, *d.Dynamic)
	})

	t.Run("dynamic auto", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("text-align", "[[ hello | auto ]]")
		require.NoError(t, err)
		require.Equal(t, css.DynamicProperty{ID: "hello", Key: property.KeyTextAlign, Auto: true}, *d.Dynamic)
	})

	t.Run("dynamic auto of unknown property", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("Float", "[[ side | auto ]]")
		require.NoError(t, err)
		require.Equal(t, css.DynamicProperty{ID: "side", Name: "float", Auto: true}, *d.Dynamic)
		require.Equal(t, "float", d.PropertyName())
		require.Equal(t, "float: [[ side | auto ]]", d.String())
	})

	t.Run("dynamic without spaces", func(t *testing.T) {
		d, err := css.ClassifyDeclaration("width", "[[w|5px]]")
		require.NoError(t, err)
		require.Equal(t, "w", d.Dynamic.ID)
		require.Equal(t, property.PixelValue{Number: 5, Metric: property.MetricPx}, d.Dynamic.Default.Value)
	})
}

func TestClassifyDeclaration_Errors(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  error
	}{
		{"text-align", "[[ 400px ]]", css.ErrNoDefaultCase},
		{"text-align", "[[ 400px", css.ErrUnclosedBraces},
		{"text-align", "400px ]]", css.ErrUnclosedBraces},
		{"text-align", "[[]", css.ErrUnclosedBraces},
		{"text-align", "[[ 400px | center ]]", css.ErrInvalidID},
		{"text-align", "[[ left | center ]]", css.ErrInvalidID},
		{"text-align", "[[ ]]", css.ErrEmptyBraces},
		{"text-align", "[[]]", css.ErrEmptyBraces},
		{"text-align", "[[ | ]]", css.ErrEmptyBraces},
		{"text-align", "[[ |  ]]", css.ErrEmptyBraces},
		{"text-align", "[[ center ]]", css.ErrNoID},
		{"text-align", "[[ | center ]]", css.ErrNoID},
		{"text-align", "[[ hello |  ]]", css.ErrNoDefaultCase},
		{"text-align", "[[ abc | hello ]]", css.ErrUnexpectedValue},
		{"text-align", "middle", css.ErrUnexpectedValue},
		{"float", "left", css.ErrUnexpectedValue},
		{"float", "[[ side | left ]]", css.ErrUnexpectedValue},
	}

	for _, tt := range tests {
		t.Run(tt.key+" "+tt.value, func(t *testing.T) {
			_, err := css.ClassifyDeclaration(tt.key, tt.value)
			require.ErrorIs(t, err, tt.want)

			var de *css.DeclarationError
			require.True(t, errors.As(err, &de))
			require.Equal(t, tt.key, de.Key)
		})
	}
}

func TestClassifyDeclaration_UnexpectedValueCause(t *testing.T) {
	_, err := css.ClassifyDeclaration("width", "[[ w | wide ]]")
	require.ErrorIs(t, err, css.ErrUnexpectedValue)
	require.ErrorIs(t, err, property.ErrInvalidValue)

	var ve *property.ValueError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "wide", ve.Value)

	_, err = css.ClassifyDeclaration("float", "left")
	require.ErrorIs(t, err, property.ErrUnknownProperty)
}

func TestClassifyDeclaration_DigitID(t *testing.T) {
	// any leading digit is rejected even when the id is no valid value
	_, err := css.ClassifyDeclaration("color", "[[ 1st | red ]]")
	require.ErrorIs(t, err, css.ErrInvalidID)
}

func TestDeclaration_Zero(t *testing.T) {
	var d css.Declaration
	require.Equal(t, property.Key(0), d.Key())
	require.Empty(t, d.PropertyName())
	require.Empty(t, d.String())
	require.Equal(t, d, d.Clone())
}
