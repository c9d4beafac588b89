// Package content supplies chapter and verse data to the reader.
//
// Chapters are JSON files, one per chapter, either read from a
// user-configured directory or served from the embedded fallback set.
// The package never fetches over the network; remote content sources are
// expected to sync files into the content directory out of band.
package content

import (
	"context"
	"fmt"

	"mushaf/internal/align"
)

// Verse is one verse with its parallel texts. WordMappings, when present,
// is an explicit word-by-word alignment between the Arabic and the
// translation; when absent the reader synthesizes a proportional fallback.
type Verse struct {
	Number          int                 `json:"number"`
	Arabic          string              `json:"arabic"`
	Translation     string              `json:"translation"`
	Transliteration string              `json:"transliteration,omitempty"`
	WordMappings    []align.WordMapping `json:"word_mappings,omitempty"`
}

// Chapter is a full chapter: metadata plus verses. Intro is optional
// markdown shown in the chapter introduction overlay.
type Chapter struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	ArabicName string  `json:"arabic_name"`
	Intro      string  `json:"intro,omitempty"`
	Verses     []Verse `json:"verses"`
}

// ChapterInfo is chapter metadata without verse bodies, for listings.
type ChapterInfo struct {
	Number     int
	Name       string
	ArabicName string
	VerseCount int
}

// Provider serves chapter content. Implementations must be safe to call
// from Bubble Tea commands (multiple goroutines).
type Provider interface {
	// Chapters lists the available chapters in ascending order.
	Chapters(ctx context.Context) ([]ChapterInfo, error)
	// Chapter returns one chapter with all verses.
	Chapter(ctx context.Context, number int) (*Chapter, error)
}

// NotFoundError reports a chapter that no source can supply.
type NotFoundError struct {
	Number int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("chapter %d not found", e.Number)
}
