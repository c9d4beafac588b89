// Package logoverlay renders recent log entries inside the running
// program, so mouse-driven highlight behavior can be inspected without
// leaving the alternate screen. Entries arrive as log events over the
// log package's broker; the overlay accumulates them for the lifetime
// of the session.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"mushaf/internal/log"
	"mushaf/internal/ui/styles"
)

const (
	// maxEntries bounds the in-memory entry buffer; the oldest entries
	// are dropped first.
	maxEntries = 2000

	boxMaxWidth       = 160
	boxMinWidth       = 40
	viewportMaxHeight = 25
	viewportMinHeight = 5
)

// Model is the debug log overlay.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	entries  []string
	listener *log.LogListener
	viewport viewport.Model
}

// New creates the overlay and subscribes it to the log broker. The
// subscription is cleaned up when ctx is cancelled. When logging is
// disabled the listener is nil and the overlay stays empty.
func New(ctx context.Context) Model {
	return Model{
		minLevel: log.LevelDebug,
		listener: log.NewListener(ctx),
		viewport: viewport.New(boxMinWidth, viewportMinHeight),
	}
}

// ListenCmd returns the command that waits for the next log entry, or
// nil when logging is disabled. Callers re-arm it by handling
// log.LogEvent messages through Update.
func (m Model) ListenCmd() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

// Visible reports whether the overlay is currently shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips overlay visibility.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m = m.refreshViewport()
		m.viewport.GotoBottom()
	}
	return m
}

// SetSize updates the overlay's knowledge of the window size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m.refreshViewport()
}

// Update consumes log events and, while visible, the overlay keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case log.LogEvent:
		m = m.push(msg.Payload)
		return m, m.ListenCmd()

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.visible = false
		case "c":
			m.entries = nil
			m = m.refreshViewport()
		case "d":
			m = m.setMinLevel(log.LevelDebug)
		case "i":
			m = m.setMinLevel(log.LevelInfo)
		case "w":
			m = m.setMinLevel(log.LevelWarn)
		case "e":
			m = m.setMinLevel(log.LevelError)
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	return m, nil
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	divider := styles.FooterStyle.Render(strings.Repeat("─", boxWidth))

	var body strings.Builder
	body.WriteString(styles.TitleStyle.Render("Logs"))
	body.WriteString("\n")
	body.WriteString(divider)
	body.WriteString("\n")
	body.WriteString(m.viewport.View())
	body.WriteString("\n")
	body.WriteString(divider)
	body.WriteString("\n")
	body.WriteString(m.filterHint())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(boxWidth)

	return lipgloss.JoinVertical(lipgloss.Left,
		box.Render(body.String()),
		styles.FooterStyle.Render("esc close"),
	)
}

// push appends one log entry, dropping the oldest past capacity, and
// keeps a visible viewport pinned to the newest entry.
func (m Model) push(entry string) Model {
	entry = strings.TrimSuffix(entry, "\n")
	if entry == "" {
		return m
	}

	entries := m.entries
	if len(entries) >= maxEntries {
		entries = entries[len(entries)-maxEntries+1:]
	}
	// Copy on append so earlier Model values never share a backing array
	// that gets overwritten.
	m.entries = append(append([]string(nil), entries...), entry)

	if m.visible {
		atBottom := m.viewport.AtBottom()
		m = m.refreshViewport()
		if atBottom {
			m.viewport.GotoBottom()
		}
	}
	return m
}

func (m Model) setMinLevel(level log.Level) Model {
	m.minLevel = level
	m = m.refreshViewport()
	m.viewport.GotoBottom()
	return m
}

// filteredEntries returns entries at or above the current filter level.
// Entries without a recognizable level marker are always shown.
func (m Model) filteredEntries() []string {
	var filtered []string
	for _, entry := range m.entries {
		if entryLevel(entry) >= m.minLevel {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// entryLevel extracts the severity of a formatted entry from its level
// marker. Unmarked entries rank as errors so no filter hides them.
func entryLevel(entry string) log.Level {
	switch {
	case strings.Contains(entry, "[ERROR]"):
		return log.LevelError
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug
	default:
		return log.LevelError
	}
}

func (m Model) buildContent(contentWidth int) string {
	filtered := m.filteredEntries()
	if len(filtered) == 0 {
		return styles.TranslitStyle.Render("No logs to display")
	}

	lines := make([]string, 0, len(filtered))
	for _, entry := range filtered {
		lines = append(lines, colorizeEntry(entry, contentWidth))
	}
	return strings.Join(lines, "\n")
}

// refreshViewport rebuilds the viewport for the current size, filter
// and entries.
func (m Model) refreshViewport() Model {
	contentWidth := m.boxWidth() - 2

	// Header, footer and borders take 6 lines around the viewport.
	viewportHeight := viewportMaxHeight
	if m.height > 0 && m.height-6 < viewportHeight {
		viewportHeight = m.height - 6
	}
	if viewportHeight < viewportMinHeight {
		viewportHeight = viewportMinHeight
	}

	offset := m.viewport.YOffset
	m.viewport = viewport.New(contentWidth, viewportHeight)
	m.viewport.SetContent(m.buildContent(contentWidth))
	m.viewport.SetYOffset(offset)
	return m
}

func (m Model) boxWidth() int {
	width := m.width - 4
	if width > boxMaxWidth {
		width = boxMaxWidth
	}
	if width < boxMinWidth {
		width = boxMinWidth
	}
	return width
}

// colorizeEntry styles one entry by its level marker and truncates it
// to the content width.
func colorizeEntry(entry string, maxWidth int) string {
	if ansi.StringWidth(entry) > maxWidth {
		entry = ansi.Truncate(entry, maxWidth-3, "...")
	}

	var style lipgloss.Style
	switch entryLevel(entry) {
	case log.LevelError:
		style = styles.ErrorStyle
	case log.LevelWarn:
		style = styles.BookmarkStyle
	case log.LevelInfo:
		style = styles.TranslationStyle
	default:
		style = styles.FooterStyle
	}
	return style.Render(entry)
}

// filterHint renders the footer hints with the active level bolded.
func (m Model) filterHint() string {
	options := []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	}

	hints := []string{styles.FooterStyle.Render("[c] Clear")}
	for _, opt := range options {
		if m.minLevel == opt.level {
			hints = append(hints, styles.TitleStyle.Render(opt.label))
		} else {
			hints = append(hints, styles.FooterStyle.Render(opt.label))
		}
	}
	return strings.Join(hints, "  ")
}
