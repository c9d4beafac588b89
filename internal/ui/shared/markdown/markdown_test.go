package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderer_RendersMarkdown(t *testing.T) {
	r, err := New(60, "")
	require.NoError(t, err)
	require.Equal(t, 60, r.Width())

	out, err := r.Render("# Al-Fatihah\n\nThe opening chapter.")
	require.NoError(t, err)
	require.Contains(t, out, "Al-Fatihah")
	require.Contains(t, out, "opening chapter")
}

func TestRenderer_LightStyle(t *testing.T) {
	r, err := New(40, "light")
	require.NoError(t, err)

	out, err := r.Render("plain text")
	require.NoError(t, err)
	require.Contains(t, out, "plain text")
}
