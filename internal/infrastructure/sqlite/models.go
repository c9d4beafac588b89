package sqlite

import (
	"time"

	"mushaf/internal/bookmarks/domain"
)

// BookmarkModel is the row shape of the bookmarks table.
type BookmarkModel struct {
	ID        int64
	GUID      string
	Chapter   int
	Verse     int
	Note      string
	CreatedAt time.Time
}

func toBookmarkModel(b *domain.Bookmark) BookmarkModel {
	return BookmarkModel{
		ID:        b.ID(),
		GUID:      b.GUID(),
		Chapter:   b.Chapter(),
		Verse:     b.Verse(),
		Note:      b.Note(),
		CreatedAt: b.CreatedAt(),
	}
}

func (m BookmarkModel) toDomain() *domain.Bookmark {
	return domain.Rehydrate(m.ID, m.GUID, m.Chapter, m.Verse, m.Note, m.CreatedAt)
}
