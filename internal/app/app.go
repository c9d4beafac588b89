// Package app contains the root Bubble Tea model. It owns chapter
// navigation, bookmarks and overlays, and delegates verse rendering and
// the word highlight gesture to the reader component.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mushaf/internal/bookmarks/domain"
	"mushaf/internal/config"
	"mushaf/internal/content"
	"mushaf/internal/keys"
	"mushaf/internal/log"
	"mushaf/internal/ui/reader"
	"mushaf/internal/ui/shared/logoverlay"
	"mushaf/internal/ui/shared/markdown"
)

// Services bundles the dependencies the app model needs. Bookmarks and
// Changes may be nil; the corresponding features degrade gracefully.
// Debug exposes the in-app log overlay.
type Services struct {
	Config    config.Config
	Content   content.Provider
	Bookmarks domain.Repository
	Changes   <-chan struct{}
	Debug     bool
}

// flusher is implemented by caching providers that can drop stale entries.
type flusher interface {
	Flush(ctx context.Context) error
}

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayHelp
	overlayIntro
	overlayBookmarks
)

// Model is the root application model.
type Model struct {
	services Services
	keys     keys.KeyMap
	reader   reader.Model
	logs     logoverlay.Model

	chapters []content.ChapterInfo
	chapter  *content.Chapter
	verseIdx int

	bookmarked bool
	bookmarks  []*domain.Bookmark

	overlay overlayKind
	intro   string

	showTranslit bool

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the app model from its services.
func New(services Services) Model {
	return Model{
		services:     services,
		keys:         keys.DefaultKeyMap(),
		reader:       reader.New().SetShowTransliteration(services.Config.UI.ShowTransliteration),
		logs:         logoverlay.New(context.Background()),
		showTranslit: services.Config.UI.ShowTransliteration,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadChaptersCmd(),
		m.loadChapterCmd(m.services.Config.DefaultChapter, 0),
		m.waitForChangeCmd(),
		m.logs.ListenCmd(),
	)
}

// Messages produced by the app's commands.
type (
	chaptersLoadedMsg struct{ chapters []content.ChapterInfo }
	chapterLoadedMsg  struct {
		chapter *content.Chapter
		verse   int
	}
	bookmarkStateMsg   struct{ bookmarked bool }
	bookmarkToggledMsg struct{ bookmarked bool }
	bookmarksListedMsg struct{ bookmarks []*domain.Bookmark }
	contentChangedMsg  struct{}
	errMsg             struct{ err error }
)

func (m Model) loadChaptersCmd() tea.Cmd {
	provider := m.services.Content
	return func() tea.Msg {
		chapters, err := provider.Chapters(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return chaptersLoadedMsg{chapters: chapters}
	}
}

func (m Model) loadChapterCmd(number, verse int) tea.Cmd {
	provider := m.services.Content
	return func() tea.Msg {
		ch, err := provider.Chapter(context.Background(), number)
		if err != nil {
			return errMsg{err}
		}
		return chapterLoadedMsg{chapter: ch, verse: verse}
	}
}

func (m Model) checkBookmarkCmd(chapter, verse int) tea.Cmd {
	repo := m.services.Bookmarks
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := repo.FindByVerse(chapter, verse)
		var nf *domain.NotFoundError
		switch {
		case err == nil:
			return bookmarkStateMsg{bookmarked: true}
		case errors.As(err, &nf):
			return bookmarkStateMsg{bookmarked: false}
		default:
			return errMsg{err}
		}
	}
}

func (m Model) toggleBookmarkCmd(chapter, verse int) tea.Cmd {
	repo := m.services.Bookmarks
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		existing, err := repo.FindByVerse(chapter, verse)
		var nf *domain.NotFoundError
		switch {
		case err == nil:
			if err := repo.Delete(existing.GUID()); err != nil {
				return errMsg{err}
			}
			return bookmarkToggledMsg{bookmarked: false}
		case errors.As(err, &nf):
			b, err := domain.NewBookmark(chapter, verse, "")
			if err != nil {
				return errMsg{err}
			}
			if err := repo.Save(b); err != nil {
				return errMsg{err}
			}
			return bookmarkToggledMsg{bookmarked: true}
		default:
			return errMsg{err}
		}
	}
}

func (m Model) listBookmarksCmd() tea.Cmd {
	repo := m.services.Bookmarks
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := repo.ListAll()
		if err != nil {
			return errMsg{err}
		}
		return bookmarksListedMsg{bookmarks: list}
	}
}

// waitForChangeCmd blocks on the watcher channel and re-arms after every
// signal. A nil or closed channel disables auto-reload.
func (m Model) waitForChangeCmd() tea.Cmd {
	changes := m.services.Changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return contentChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reader = m.reader.SetSize(msg.Width)
		m.logs = m.logs.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.overlay != overlayNone || m.logs.Visible() {
			return m, nil
		}
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case chaptersLoadedMsg:
		m.chapters = msg.chapters
		return m, nil

	case chapterLoadedMsg:
		return m.setChapter(msg.chapter, msg.verse)

	case bookmarkStateMsg:
		m.bookmarked = msg.bookmarked
		return m, nil

	case bookmarkToggledMsg:
		m.bookmarked = msg.bookmarked
		if msg.bookmarked {
			m.setStatus("Bookmark saved", false)
		} else {
			m.setStatus("Bookmark removed", false)
		}
		return m, nil

	case bookmarksListedMsg:
		m.bookmarks = msg.bookmarks
		m.overlay = overlayBookmarks
		return m, nil

	case contentChangedMsg:
		log.Info(log.CatWatcher, "Content changed on disk, reloading")
		if f, ok := m.services.Content.(flusher); ok {
			if err := f.Flush(context.Background()); err != nil {
				log.ErrorErr(log.CatCache, "Flushing content cache", err)
			}
		}
		m.setStatus("Content reloaded", false)
		number := m.services.Config.DefaultChapter
		if m.chapter != nil {
			number = m.chapter.Number
		}
		return m, tea.Batch(
			m.loadChaptersCmd(),
			m.loadChapterCmd(number, m.verseIdx),
			m.waitForChangeCmd(),
		)

	case errMsg:
		log.ErrorErr(log.CatUI, "Command failed", msg.err)
		m.setStatus(msg.err.Error(), true)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The log overlay owns its keys while open.
	if m.logs.Visible() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.DebugLog):
			m.logs = m.logs.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	// Overlays swallow everything except close and quit.
	if m.overlay != overlayNone {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape),
			key.Matches(msg, m.keys.Help) && m.overlay == overlayHelp,
			key.Matches(msg, m.keys.ChapterIntro) && m.overlay == overlayIntro,
			key.Matches(msg, m.keys.Bookmarks) && m.overlay == overlayBookmarks:
			m.overlay = overlayNone
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.NextVerse):
		return m.moveVerse(1)

	case key.Matches(msg, m.keys.PrevVerse):
		return m.moveVerse(-1)

	case key.Matches(msg, m.keys.NextChapter):
		return m.moveChapter(1)

	case key.Matches(msg, m.keys.PrevChapter):
		return m.moveChapter(-1)

	case key.Matches(msg, m.keys.Bookmark):
		if m.chapter == nil {
			return m, nil
		}
		return m, m.toggleBookmarkCmd(m.chapter.Number, m.currentVerse().Number)

	case key.Matches(msg, m.keys.Bookmarks):
		return m, m.listBookmarksCmd()

	case key.Matches(msg, m.keys.Transliterate):
		m.showTranslit = !m.showTranslit
		m.reader = m.reader.SetShowTransliteration(m.showTranslit)
		return m, nil

	case key.Matches(msg, m.keys.ChapterIntro):
		return m.openIntro()

	case key.Matches(msg, m.keys.DebugLog):
		if m.services.Debug {
			m.logs = m.logs.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil
	}

	return m, nil
}

// setChapter installs a loaded chapter and positions on the given verse.
func (m Model) setChapter(ch *content.Chapter, verse int) (tea.Model, tea.Cmd) {
	if len(ch.Verses) == 0 {
		m.setStatus(fmt.Sprintf("chapter %d has no verses", ch.Number), true)
		return m, nil
	}
	if verse < 0 {
		verse = 0
	}
	if verse >= len(ch.Verses) {
		verse = len(ch.Verses) - 1
	}

	m.chapter = ch
	m.verseIdx = verse
	m.reader = m.reader.SetVerse(ch.Verses[verse])
	log.Info(log.CatUI, "Chapter loaded", "chapter", ch.Number, "verses", len(ch.Verses))
	return m, m.checkBookmarkCmd(ch.Number, ch.Verses[verse].Number)
}

func (m Model) moveVerse(delta int) (tea.Model, tea.Cmd) {
	if m.chapter == nil {
		return m, nil
	}
	next := m.verseIdx + delta
	if next < 0 || next >= len(m.chapter.Verses) {
		return m, nil
	}
	m.verseIdx = next
	m.reader = m.reader.SetVerse(m.chapter.Verses[next])
	m.status = ""
	return m, m.checkBookmarkCmd(m.chapter.Number, m.chapter.Verses[next].Number)
}

func (m Model) moveChapter(delta int) (tea.Model, tea.Cmd) {
	number := m.nextChapterNumber(delta)
	if number == 0 {
		return m, nil
	}
	m.status = ""
	return m, m.loadChapterCmd(number, 0)
}

// nextChapterNumber walks the chapter listing when available, so gaps in
// the content set are skipped. Returns 0 when there is nowhere to go.
func (m Model) nextChapterNumber(delta int) int {
	current := m.services.Config.DefaultChapter
	if m.chapter != nil {
		current = m.chapter.Number
	}

	if len(m.chapters) > 0 {
		idx := -1
		for i, info := range m.chapters {
			if info.Number == current {
				idx = i
				break
			}
		}
		next := idx + delta
		if idx == -1 || next < 0 || next >= len(m.chapters) {
			return 0
		}
		return m.chapters[next].Number
	}

	next := current + delta
	if next < 1 || next > 114 {
		return 0
	}
	return next
}

func (m Model) openIntro() (tea.Model, tea.Cmd) {
	if m.chapter == nil || m.chapter.Intro == "" {
		m.setStatus("No introduction for this chapter", false)
		return m, nil
	}

	renderer, err := markdown.New(m.introWidth(), m.services.Config.UI.MarkdownStyle)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}
	rendered, err := renderer.Render(m.chapter.Intro)
	if err != nil {
		return m, func() tea.Msg { return errMsg{err} }
	}

	m.intro = rendered
	m.overlay = overlayIntro
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) currentVerse() content.Verse {
	return m.chapter.Verses[m.verseIdx]
}
