// Package reader renders one verse as side-by-side Arabic and translation
// columns and drives the word highlight gesture. Dragging the pointer over
// a word lights it up together with its counterpart in the other column;
// releasing the button clears both.
package reader

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"mushaf/internal/align"
	"mushaf/internal/content"
	"mushaf/internal/log"
)

// Model is the verse reader component. It is embedded in the app model
// and receives mouse events plus the transliteration toggle from it;
// verse navigation stays with the app.
type Model struct {
	verse        content.Verse
	arabicTokens []align.Token
	transTokens  []align.Token
	coord        *align.Coordinator

	width        int
	showTranslit bool
}

// New creates an empty reader. Call SetVerse before the first View.
func New() Model {
	return Model{coord: align.NewCoordinator(0, 0, nil)}
}

// SetVerse loads a verse, tokenizes both texts and rebuilds the highlight
// coordinator. Any active highlight is discarded with the old coordinator.
func (m Model) SetVerse(v content.Verse) Model {
	m.verse = v
	m.arabicTokens = align.Tokenize(v.Arabic)
	m.transTokens = align.Tokenize(v.Translation)
	m.coord = align.NewCoordinator(len(m.arabicTokens), len(m.transTokens), v.WordMappings)
	log.Debug(log.CatUI, "Reader verse set",
		"verse", v.Number,
		"arabicWords", len(m.arabicTokens),
		"translationWords", len(m.transTokens),
		"explicitMappings", len(v.WordMappings))
	return m
}

// SetSize sets the total width available to the two columns.
func (m Model) SetSize(width int) Model {
	m.width = width
	return m
}

// SetShowTransliteration toggles the transliteration line under the
// Arabic column.
func (m Model) SetShowTransliteration(on bool) Model {
	m.showTranslit = on
	return m
}

// Verse returns the currently loaded verse.
func (m Model) Verse() content.Verse {
	return m.verse
}

// Highlight returns the active (arabic, translation) word indices.
// Either side may be align.None.
func (m Model) Highlight() (int, int) {
	return m.coord.Highlight()
}

// Highlighting reports whether a word pair is currently emphasized.
func (m Model) Highlighting() bool {
	return m.coord.Highlighting()
}

// HighlightedWords returns the texts of the active pair, empty strings
// for an unhighlighted or unmapped side.
func (m Model) HighlightedWords() (arabic, translation string) {
	s, t := m.coord.Highlight()
	if s != align.None && s < len(m.arabicTokens) {
		arabic = m.arabicTokens[s].Text
	}
	if t != align.None && t < len(m.transTokens) {
		translation = m.transTokens[t].Text
	}
	return arabic, translation
}

// Update implements tea.Model. Only mouse events matter here; keys are
// handled by the app.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		m.handleMouse(mouse)
	}
	return m, nil
}

// handleMouse feeds one pointer sample into the coordinator. Press and
// motion samples move the highlight; releasing the left button ends the
// gesture.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		m.coord.Release()

	case msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion:
		m.syncBoxes()
		// The columns never overlap, so at most one of these hits.
		if !m.coord.PointerMove(align.OriginSource, msg.X, msg.Y) {
			m.coord.PointerMove(align.OriginTarget, msg.X, msg.Y)
		}
	}
}

// syncBoxes copies the zone rectangles of every rendered word into the
// coordinator. Zones only exist after the first View has been scanned, so
// unmeasured words simply stay unset and can't be hit yet.
func (m *Model) syncBoxes() {
	m.syncColumn(align.OriginSource, m.arabicTokens)
	m.syncColumn(align.OriginTarget, m.transTokens)
}

func (m *Model) syncColumn(origin align.Origin, tokens []align.Token) {
	for _, tok := range tokens {
		z := zone.Get(wordZoneID(origin, tok.Index))
		if z == nil || z.IsZero() {
			continue
		}
		m.coord.SetBox(origin, tok.Index, align.Box{
			X:      z.StartX,
			Y:      z.StartY,
			Width:  z.EndX - z.StartX,
			Height: z.EndY - z.StartY,
		})
	}
}
