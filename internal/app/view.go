package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"mushaf/internal/ui/styles"
)

// View implements tea.Model. zone.Scan runs here, on the final composed
// output, so every word zone marked by the reader gets its rectangle.
func (m Model) View() string {
	if m.chapter == nil {
		return "Loading content..."
	}

	if m.logs.Visible() {
		return zone.Scan(m.logs.View())
	}

	var view string
	switch m.overlay {
	case overlayIntro:
		view = m.introView()
	case overlayHelp:
		view = m.helpView()
	case overlayBookmarks:
		view = m.bookmarksView()
	default:
		view = m.readerView()
	}

	return zone.Scan(view)
}

func (m Model) readerView() string {
	sections := []string{
		m.titleView(),
		"",
		m.reader.View(),
	}
	if m.services.Config.UI.ShowStatusBar {
		sections = append(sections, "", m.footerView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleView() string {
	verse := m.currentVerse()
	title := styles.TitleStyle.Render(
		fmt.Sprintf("%d. %s %s", m.chapter.Number, m.chapter.Name, m.chapter.ArabicName))
	position := styles.VerseNumberStyle.Render(
		fmt.Sprintf("  Verse %d of %d", verse.Number, len(m.chapter.Verses)))

	line := title + position
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m Model) footerView() string {
	var parts []string

	if m.bookmarked {
		parts = append(parts, styles.BookmarkStyle.Render("★ bookmarked"))
	}

	if arabic, translation := m.reader.HighlightedWords(); arabic != "" || translation != "" {
		pair := arabic
		if arabic != "" && translation != "" {
			pair = arabic + " = " + translation
		} else if translation != "" {
			pair = translation
		}
		parts = append(parts, styles.HighlightStyle.Render(pair))
	}

	if m.status != "" {
		if m.statusErr {
			parts = append(parts, styles.ErrorStyle.Render(m.status))
		} else {
			parts = append(parts, styles.SuccessStyle.Render(m.status))
		}
	}

	parts = append(parts, styles.FooterStyle.Render("drag over a word to match it · ? help · q quit"))

	line := strings.Join(parts, styles.FooterStyle.Render(" · "))
	if m.width > 0 {
		line = ansi.Truncate(line, m.width, "…")
	}
	return line
}

func (m Model) introView() string {
	body := m.intro
	footer := styles.FooterStyle.Render("esc close")
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ColumnBorderStyle.Render(body),
		footer,
	)
}

func (m Model) helpView() string {
	bindings := []struct{ key, desc string }{
		{m.keys.NextVerse.Help().Key, m.keys.NextVerse.Help().Desc},
		{m.keys.PrevVerse.Help().Key, m.keys.PrevVerse.Help().Desc},
		{m.keys.NextChapter.Help().Key, m.keys.NextChapter.Help().Desc},
		{m.keys.PrevChapter.Help().Key, m.keys.PrevChapter.Help().Desc},
		{m.keys.Bookmark.Help().Key, m.keys.Bookmark.Help().Desc},
		{m.keys.Bookmarks.Help().Key, m.keys.Bookmarks.Help().Desc},
		{m.keys.Transliterate.Help().Key, m.keys.Transliterate.Help().Desc},
		{m.keys.ChapterIntro.Help().Key, m.keys.ChapterIntro.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	lines := []string{styles.TitleStyle.Render("Keys"), ""}
	for _, b := range bindings {
		lines = append(lines, fmt.Sprintf("  %-8s %s", b.key, b.desc))
	}
	lines = append(lines, "", styles.FooterStyle.Render("  drag the mouse over any word to light up its counterpart"))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ColumnBorderStyle.Render(strings.Join(lines, "\n")),
		styles.FooterStyle.Render("esc close"),
	)
}

func (m Model) bookmarksView() string {
	lines := []string{styles.TitleStyle.Render("Bookmarks"), ""}

	if len(m.bookmarks) == 0 {
		lines = append(lines, styles.FooterStyle.Render("  no bookmarks yet"))
	}
	for _, b := range m.bookmarks {
		entry := fmt.Sprintf("  %s %d:%d", styles.BookmarkStyle.Render("★"), b.Chapter(), b.Verse())
		if b.Note() != "" {
			entry += "  " + styles.FooterStyle.Render(b.Note())
		}
		lines = append(lines, entry)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ColumnBorderStyle.Render(strings.Join(lines, "\n")),
		styles.FooterStyle.Render("esc close"),
	)
}

// introWidth sizes the markdown renderer to the window, leaving room for
// the overlay border.
func (m Model) introWidth() int {
	if m.width > 16 {
		return m.width - 8
	}
	return 72
}
