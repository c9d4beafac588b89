package reader

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"mushaf/internal/align"
	"mushaf/internal/ui/styles"
)

// minColumnWidth keeps columns usable on very narrow terminals.
const minColumnWidth = 12

// View renders the two bordered columns side by side.
// Note: Do NOT call zone.Scan() here - it must be called at the app level
// on the final composed output.
func (m Model) View() string {
	colWidth := m.columnWidth()

	arabic := m.renderColumn(m.arabicTokens, align.OriginSource, colWidth, styles.ArabicStyle)
	if m.showTranslit && m.verse.Transliteration != "" {
		translit := styles.TranslitStyle.Render(wordwrap.String(m.verse.Transliteration, colWidth))
		arabic = lipgloss.JoinVertical(lipgloss.Left, arabic, "", translit)
	}
	translation := m.renderColumn(m.transTokens, align.OriginTarget, colWidth, styles.TranslationStyle)

	left := styles.ColumnBorderStyle.Width(colWidth + 2).Render(arabic)
	right := styles.ColumnBorderStyle.Width(colWidth + 2).Render(translation)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// columnWidth derives the per-column content width from the total width.
// Each column carries a border and padding (4 cells) plus a 1 cell gap.
func (m Model) columnWidth() int {
	w := (m.width - 9) / 2
	if w < minColumnWidth {
		w = minColumnWidth
	}
	return w
}

// renderColumn wraps the tokens of one column to the given width. Every
// word is zone-marked individually so pointer samples can be resolved
// back to a token index, and the active word gets the highlight style.
func (m Model) renderColumn(tokens []align.Token, origin align.Origin, width int, style lipgloss.Style) string {
	if len(tokens) == 0 {
		return ""
	}

	activeSource, activeTarget := m.coord.Highlight()
	active := activeSource
	if origin == align.OriginTarget {
		active = activeTarget
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
	)
	flush := func() {
		if lineWidth > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
	}

	for _, tok := range tokens {
		w := runewidth.StringWidth(tok.Text)
		if lineWidth > 0 && lineWidth+1+w > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}

		rendered := style.Render(tok.Text)
		if tok.Index == active {
			rendered = styles.HighlightStyle.Render(tok.Text)
		}
		line.WriteString(zone.Mark(wordZoneID(origin, tok.Index), rendered))
		lineWidth += w
	}
	flush()

	return strings.Join(lines, "\n")
}
