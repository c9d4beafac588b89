// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Translation text
	TextArabicColor   = lipgloss.AdaptiveColor{Light: "#7D5A00", Dark: "#F9E2AF"} // Arabic column text
	TextMutedColor    = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextTranslitColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Transliteration line

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"} // Focused column border

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Bookmark saved, reloads
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Highlight colors for the active word pair
	HighlightBgColor = lipgloss.AdaptiveColor{Light: "#AED6F1", Dark: "#1A5276"}
	HighlightFgColor = lipgloss.AdaptiveColor{Light: "#1B2631", Dark: "#FFFFFF"}

	// Bookmark marker color
	BookmarkColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}

	// Styles for the two text columns
	ArabicStyle      = lipgloss.NewStyle().Foreground(TextArabicColor)
	TranslationStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	TranslitStyle    = lipgloss.NewStyle().Foreground(TextTranslitColor).Italic(true)

	// HighlightStyle emphasizes the active word and its counterpart.
	HighlightStyle = lipgloss.NewStyle().
			Foreground(HighlightFgColor).
			Background(HighlightBgColor).
			Bold(true)

	// Chrome
	VerseNumberStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	FooterStyle      = lipgloss.NewStyle().Foreground(TextMutedColor)
	TitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	BookmarkStyle    = lipgloss.NewStyle().Foreground(BookmarkColor)
	ErrorStyle       = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessStyle     = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	ColumnBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderDefaultColor).
				Padding(0, 1)
)

// ApplyTheme overrides the palette from hex strings in the user config.
// Empty values keep the built-in color.
func ApplyTheme(highlight, arabic, translation, subtle, errColor, success string) {
	if highlight != "" {
		HighlightBgColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		HighlightStyle = HighlightStyle.Background(HighlightBgColor)
	}
	if arabic != "" {
		TextArabicColor = lipgloss.AdaptiveColor{Light: arabic, Dark: arabic}
		ArabicStyle = ArabicStyle.Foreground(TextArabicColor)
	}
	if translation != "" {
		TextPrimaryColor = lipgloss.AdaptiveColor{Light: translation, Dark: translation}
		TranslationStyle = TranslationStyle.Foreground(TextPrimaryColor)
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		FooterStyle = FooterStyle.Foreground(TextMutedColor)
		VerseNumberStyle = VerseNumberStyle.Foreground(TextMutedColor)
	}
	if errColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errColor, Dark: errColor}
		ErrorStyle = ErrorStyle.Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		SuccessStyle = SuccessStyle.Foreground(StatusSuccessColor)
	}
}
