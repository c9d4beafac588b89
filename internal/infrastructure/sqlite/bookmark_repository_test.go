package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"mushaf/internal/bookmarks/domain"
	"mushaf/internal/testutil"
)

func newRepo(t *testing.T) domain.Repository {
	t.Helper()
	return NewBookmarkRepository(testutil.NewTestDB(t))
}

func TestBookmarkRepository_SaveAndFind(t *testing.T) {
	repo := newRepo(t)

	b, err := domain.NewBookmark(1, 5, "returning here")
	require.NoError(t, err)
	require.NoError(t, repo.Save(b))
	require.NotZero(t, b.ID(), "insert should backfill the ID")

	found, err := repo.FindByVerse(1, 5)
	require.NoError(t, err)
	require.Equal(t, b.GUID(), found.GUID())
	require.Equal(t, "returning here", found.Note())
	require.Equal(t, 1, found.Chapter())
	require.Equal(t, 5, found.Verse())
}

func TestBookmarkRepository_FindMissing(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.FindByVerse(3, 7)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, 3, notFound.Chapter)
	require.Equal(t, 7, notFound.Verse)
}

func TestBookmarkRepository_UpdateNote(t *testing.T) {
	repo := newRepo(t)

	b, err := domain.NewBookmark(1, 1, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(b))

	b.SetNote("memorized")
	require.NoError(t, repo.Save(b))

	found, err := repo.FindByVerse(1, 1)
	require.NoError(t, err)
	require.Equal(t, "memorized", found.Note())
}

func TestBookmarkRepository_ListByChapter(t *testing.T) {
	repo := newRepo(t)

	for _, v := range []int{7, 2, 5} {
		b, err := domain.NewBookmark(1, v, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(b))
	}
	other, err := domain.NewBookmark(2, 1, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(other))

	list, err := repo.ListByChapter(1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []int{2, 5, 7}, []int{list[0].Verse(), list[1].Verse(), list[2].Verse()},
		"bookmarks are ordered by verse")
}

func TestBookmarkRepository_ListAll(t *testing.T) {
	repo := newRepo(t)

	b1, _ := domain.NewBookmark(114, 1, "")
	b2, _ := domain.NewBookmark(1, 3, "")
	require.NoError(t, repo.Save(b1))
	require.NoError(t, repo.Save(b2))

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 1, list[0].Chapter(), "ordered by chapter first")
	require.Equal(t, 114, list[1].Chapter())
}

func TestBookmarkRepository_Delete(t *testing.T) {
	repo := newRepo(t)

	b, err := domain.NewBookmark(1, 4, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(b))

	require.NoError(t, repo.Delete(b.GUID()))

	_, err = repo.FindByVerse(1, 4)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestBookmarkRepository_DeleteMissing(t *testing.T) {
	repo := newRepo(t)

	err := repo.Delete("no-such-guid")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no-such-guid", notFound.GUID)
}

func TestBookmarkRepository_EmitsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	repo := newRepo(t)
	b, err := domain.NewBookmark(2, 3, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(b))
	_, err = repo.FindByVerse(2, 3)
	require.NoError(t, err)
	_, err = repo.ListByChapter(2)
	require.NoError(t, err)
	_, err = repo.ListAll()
	require.NoError(t, err)
	require.NoError(t, repo.Delete(b.GUID()))

	names := make([]string, 0, len(recorder.Ended()))
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	require.Equal(t, []string{
		"bookmarks.save",
		"bookmarks.find_by_verse",
		"bookmarks.list_by_chapter",
		"bookmarks.list_all",
		"bookmarks.delete",
	}, names, "every repository call opens a span")
}

func TestBookmarkRepository_DuplicateVerseRejected(t *testing.T) {
	repo := newRepo(t)

	b1, _ := domain.NewBookmark(1, 1, "")
	require.NoError(t, repo.Save(b1))

	b2, _ := domain.NewBookmark(1, 1, "")
	require.Error(t, repo.Save(b2), "the (chapter, verse) unique constraint rejects duplicates")
}
