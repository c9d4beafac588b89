package reader

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"mushaf/internal/align"
	"mushaf/internal/content"
)

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testVerse() content.Verse {
	return content.Verse{
		Number:          2,
		Arabic:          "الحمد لله",
		Translation:     "All praise is for Allah",
		Transliteration: "Alhamdu lillahi",
		WordMappings: []align.WordMapping{
			{Source: 0, Target: 1},
			{Source: 1, Target: 4},
		},
	}
}

// layoutRow places a column's words on one screen row, 10 cells apart,
// each 8 cells wide, the way the view lays them out.
func layoutRow(m Model, origin align.Origin, count, y int) {
	for i := 0; i < count; i++ {
		m.coord.SetBox(origin, i, align.Box{X: i * 10, Y: y, Width: 8, Height: 0})
	}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release() tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestReader_SetVerse_StartsIdle(t *testing.T) {
	m := New().SetVerse(testVerse())

	require.False(t, m.Highlighting())
	s, tr := m.Highlight()
	require.Equal(t, align.None, s)
	require.Equal(t, align.None, tr)
}

func TestReader_DragHighlightsCounterpart(t *testing.T) {
	m := New().SetVerse(testVerse())
	layoutRow(m, align.OriginSource, 2, 1)
	layoutRow(m, align.OriginTarget, 5, 5)

	// Drag over the second Arabic word.
	m, _ = m.Update(motion(12, 1))

	s, tr := m.Highlight()
	require.Equal(t, 1, s)
	require.Equal(t, 4, tr, "explicit mapping pairs word 1 with translation word 4")
}

func TestReader_DragOverTranslationColumn(t *testing.T) {
	m := New().SetVerse(testVerse())
	layoutRow(m, align.OriginSource, 2, 1)
	layoutRow(m, align.OriginTarget, 5, 5)

	m, _ = m.Update(motion(10, 5))

	s, tr := m.Highlight()
	require.Equal(t, 1, tr)
	require.Equal(t, 0, s, "explicit mapping pairs translation word 1 back to word 0")
}

func TestReader_GapKeepsHighlight(t *testing.T) {
	m := New().SetVerse(testVerse())
	layoutRow(m, align.OriginSource, 2, 1)
	layoutRow(m, align.OriginTarget, 5, 5)

	m, _ = m.Update(motion(0, 1))
	m, _ = m.Update(motion(9, 1)) // between words

	s, tr := m.Highlight()
	require.Equal(t, 0, s)
	require.Equal(t, 1, tr)
}

func TestReader_ReleaseClears(t *testing.T) {
	m := New().SetVerse(testVerse())
	layoutRow(m, align.OriginSource, 2, 1)

	m, _ = m.Update(motion(0, 1))
	require.True(t, m.Highlighting())

	m, _ = m.Update(release())
	require.False(t, m.Highlighting())
}

func TestReader_SetVerse_DiscardsHighlight(t *testing.T) {
	m := New().SetVerse(testVerse())
	layoutRow(m, align.OriginSource, 2, 1)
	m, _ = m.Update(motion(0, 1))
	require.True(t, m.Highlighting())

	m = m.SetVerse(content.Verse{Number: 3, Arabic: "مالك", Translation: "Master"})
	require.False(t, m.Highlighting(), "a new verse starts without a highlight")
}

func TestReader_ViewContainsBothTexts(t *testing.T) {
	m := New().SetSize(80).SetVerse(testVerse())

	view := zone.Scan(m.View())
	require.Contains(t, view, "praise")
	require.Contains(t, view, "الحمد")
	require.NotContains(t, view, "Alhamdu", "transliteration hidden by default")
}

func TestReader_ViewShowsTransliteration(t *testing.T) {
	m := New().SetSize(80).SetVerse(testVerse()).SetShowTransliteration(true)

	view := zone.Scan(m.View())
	require.Contains(t, view, "Alhamdu")
}

func TestReader_ViewWrapsLongTranslation(t *testing.T) {
	v := content.Verse{
		Number:      1,
		Arabic:      "كلمة",
		Translation: "a deliberately long translation line that cannot possibly fit one narrow column",
	}
	m := New().SetSize(40).SetVerse(v)

	view := zone.Scan(m.View())
	require.Greater(t, len(splitLines(view)), 2, "narrow width forces wrapping")
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
