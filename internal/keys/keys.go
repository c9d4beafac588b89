// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Navigation
	NextVerse   key.Binding
	PrevVerse   key.Binding
	NextChapter key.Binding
	PrevChapter key.Binding

	// Actions
	Bookmark      key.Binding
	Bookmarks     key.Binding
	Transliterate key.Binding
	ChapterIntro  key.Binding

	// General
	Help     key.Binding
	Escape   key.Binding
	DebugLog key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextVerse: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next verse"),
		),
		PrevVerse: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous verse"),
		),
		NextChapter: key.NewBinding(
			key.WithKeys("l", "right", "]"),
			key.WithHelp("l/→", "next chapter"),
		),
		PrevChapter: key.NewBinding(
			key.WithKeys("h", "left", "["),
			key.WithHelp("h/←", "previous chapter"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle bookmark"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmark list"),
		),
		Transliterate: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle transliteration"),
		),
		ChapterIntro: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "chapter intro"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		DebugLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "debug log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
