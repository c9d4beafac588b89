package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"mushaf/internal/bookmarks/domain"
)

// bookmarkColumns is the list of columns to select for bookmark queries.
const bookmarkColumns = `id, guid, chapter, verse, note, created_at`

const tracerName = "mushaf/bookmarks"

// bookmarkRepository implements domain.Repository using SQLite.
type bookmarkRepository struct {
	db *sql.DB
}

// NewBookmarkRepository creates a repository over an open database.
func NewBookmarkRepository(db *sql.DB) domain.Repository {
	return &bookmarkRepository{db: db}
}

var _ domain.Repository = (*bookmarkRepository)(nil)

// scanBookmark scans a row into a BookmarkModel.
func scanBookmark(scanner interface{ Scan(...any) error }) (*BookmarkModel, error) {
	var model BookmarkModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.Chapter, &model.Verse,
		&model.Note, &model.CreatedAt,
	)
	return &model, err
}

// Save persists a bookmark. New bookmarks (ID == 0) are inserted and get
// their ID set; existing ones have their note updated.
func (r *bookmarkRepository) Save(bookmark *domain.Bookmark) error {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "bookmarks.save")
	defer span.End()
	span.SetAttributes(
		attribute.Int("bookmark.chapter", bookmark.Chapter()),
		attribute.Int("bookmark.verse", bookmark.Verse()),
	)

	model := toBookmarkModel(bookmark)

	if bookmark.ID() == 0 {
		result, err := r.db.Exec(
			`INSERT INTO bookmarks (guid, chapter, verse, note, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			model.GUID, model.Chapter, model.Verse, model.Note, model.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bookmark: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		bookmark.SetID(id)
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE bookmarks SET note = ? WHERE id = ?`,
		model.Note, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	return nil
}

// FindByVerse retrieves the bookmark for one verse.
// Returns NotFoundError when the verse is not bookmarked.
func (r *bookmarkRepository) FindByVerse(chapter, verse int) (*domain.Bookmark, error) {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "bookmarks.find_by_verse")
	defer span.End()
	span.SetAttributes(
		attribute.Int("bookmark.chapter", chapter),
		attribute.Int("bookmark.verse", verse),
	)

	row := r.db.QueryRow(
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE chapter = ? AND verse = ?`,
		chapter, verse,
	)
	model, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Chapter: chapter, Verse: verse}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bookmark: %w", err)
	}
	return model.toDomain(), nil
}

// ListByChapter returns all bookmarks in one chapter, verse order.
func (r *bookmarkRepository) ListByChapter(chapter int) ([]*domain.Bookmark, error) {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "bookmarks.list_by_chapter")
	defer span.End()
	span.SetAttributes(attribute.Int("bookmark.chapter", chapter))

	rows, err := r.db.Query(
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE chapter = ? ORDER BY verse`,
		chapter,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectBookmarks(rows)
}

// ListAll returns every bookmark, chapter then verse order.
func (r *bookmarkRepository) ListAll() ([]*domain.Bookmark, error) {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "bookmarks.list_all")
	defer span.End()

	rows, err := r.db.Query(
		`SELECT ` + bookmarkColumns + ` FROM bookmarks ORDER BY chapter, verse`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectBookmarks(rows)
}

// Delete removes a bookmark by GUID.
// Returns NotFoundError when no row matches.
func (r *bookmarkRepository) Delete(guid string) error {
	_, span := otel.Tracer(tracerName).Start(context.Background(), "bookmarks.delete")
	defer span.End()
	span.SetAttributes(attribute.String("bookmark.guid", guid))

	result, err := r.db.Exec(`DELETE FROM bookmarks WHERE guid = ?`, guid)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return &domain.NotFoundError{GUID: guid}
	}
	return nil
}

func collectBookmarks(rows *sql.Rows) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	for rows.Next() {
		model, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}
