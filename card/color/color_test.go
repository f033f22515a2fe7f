package color_test

import (
	"strings"
	"testing"

	"github.com/madans2984/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"red", "Red", " RED "} {
		c, err := color.ByName(name)
		require.NoError(t, err)
		require.Equal(t, color.Red, c)
	}

	c, err := color.ByName("wild")
	require.NoError(t, err)
	require.Equal(t, color.Wild, c)

	_, err = color.ByName("purple")
	require.Error(t, err)
}

func TestByInitial(t *testing.T) {
	scenarios := map[string]color.Color{
		"r": color.Red,
		"g": color.Green,
		"b": color.Blue,
		"Y": color.Yellow,
	}
	for input, expected := range scenarios {
		c, err := color.ByInitial(input)
		require.NoError(t, err)
		require.Equal(t, expected, c)
	}

	_, err := color.ByInitial("w")
	require.Error(t, err)
	_, err = color.ByInitial("")
	require.Error(t, err)
}

func TestDeclarable(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Green, color.Blue, color.Yellow}, color.Declarable())
	for _, c := range color.Declarable() {
		require.True(t, c.IsDeclarable())
	}
	require.False(t, color.Wild.IsDeclarable())
	require.False(t, color.Color(42).IsDeclarable())
}

func TestName(t *testing.T) {
	require.Equal(t, "Wild", color.Wild.String())
	require.Equal(t, "Yellow", color.Yellow.Name())
	require.Equal(t, "Color(42)", color.Color(42).Name())
}

func TestPaintWild(t *testing.T) {
	t.Cleanup(func() { color.SetEnabled(false) })

	color.SetEnabled(false)
	require.Equal(t, "Wild +4", color.Wild.Paint("Wild +4"))
	require.Equal(t, "Wild", color.Wild.Name())

	color.SetEnabled(true)
	painted := color.Wild.Paint("Wild +4")
	require.Equal(t, 6, strings.Count(painted, "\x1b[0m"))
	for _, r := range "Wild+4" {
		require.Contains(t, painted, string(r))
	}
	require.Contains(t, painted, " ")
	require.Equal(t, color.Red.Paint("W"), painted[:len(color.Red.Paint("W"))])
}
