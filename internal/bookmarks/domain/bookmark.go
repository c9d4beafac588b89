// Package domain defines the bookmark entity and its repository contract.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bookmark marks one verse the reader wants to return to.
type Bookmark struct {
	id        int64
	guid      string
	chapter   int
	verse     int
	note      string
	createdAt time.Time
}

// NewBookmark creates a bookmark for the given verse with a fresh GUID.
func NewBookmark(chapter, verse int, note string) (*Bookmark, error) {
	if chapter < 1 {
		return nil, fmt.Errorf("chapter %d invalid", chapter)
	}
	if verse < 1 {
		return nil, fmt.Errorf("verse %d invalid", verse)
	}
	return &Bookmark{
		guid:      uuid.NewString(),
		chapter:   chapter,
		verse:     verse,
		note:      note,
		createdAt: time.Now().UTC(),
	}, nil
}

// Rehydrate reconstructs a bookmark from persisted state.
func Rehydrate(id int64, guid string, chapter, verse int, note string, createdAt time.Time) *Bookmark {
	return &Bookmark{
		id:        id,
		guid:      guid,
		chapter:   chapter,
		verse:     verse,
		note:      note,
		createdAt: createdAt,
	}
}

func (b *Bookmark) ID() int64            { return b.id }
func (b *Bookmark) GUID() string         { return b.guid }
func (b *Bookmark) Chapter() int         { return b.chapter }
func (b *Bookmark) Verse() int           { return b.verse }
func (b *Bookmark) Note() string         { return b.note }
func (b *Bookmark) CreatedAt() time.Time { return b.createdAt }

// SetID is called by the repository after the first insert.
func (b *Bookmark) SetID(id int64) { b.id = id }

// SetNote updates the free-form note.
func (b *Bookmark) SetNote(note string) { b.note = note }

// Repository persists bookmarks.
type Repository interface {
	Save(bookmark *Bookmark) error
	FindByVerse(chapter, verse int) (*Bookmark, error)
	ListByChapter(chapter int) ([]*Bookmark, error)
	ListAll() ([]*Bookmark, error)
	Delete(guid string) error
}

// NotFoundError reports a bookmark lookup that matched nothing.
type NotFoundError struct {
	Chapter int
	Verse   int
	GUID    string
}

func (e *NotFoundError) Error() string {
	if e.GUID != "" {
		return fmt.Sprintf("bookmark %s not found", e.GUID)
	}
	return fmt.Sprintf("no bookmark for verse %d:%d", e.Chapter, e.Verse)
}
