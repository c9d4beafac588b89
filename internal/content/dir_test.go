package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"mushaf/internal/align"
)

func TestDir_EmbeddedChapters(t *testing.T) {
	p := NewDir("")

	infos, err := p.Chapters(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, infos)
	require.Equal(t, 1, infos[0].Number, "listing is sorted ascending")
	require.Equal(t, "Al-Fatihah", infos[0].Name)
	require.Equal(t, 7, infos[0].VerseCount)
}

func TestDir_EmbeddedChapter(t *testing.T) {
	p := NewDir("")

	ch, err := p.Chapter(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, ch.Number)
	require.Len(t, ch.Verses, 7)
	require.NotEmpty(t, ch.Intro)

	// The basmala carries an explicit word-by-word alignment.
	require.NotEmpty(t, ch.Verses[0].WordMappings)
	// Verse 7 relies on the synthesized fallback.
	require.Empty(t, ch.Verses[6].WordMappings)
}

func TestDir_EmitsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	p := NewDir("")
	_, err := p.Chapters(context.Background())
	require.NoError(t, err)
	_, err = p.Chapter(context.Background(), 1)
	require.NoError(t, err)

	names := make([]string, 0, len(recorder.Ended()))
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	require.Equal(t, []string{"content.chapters", "content.chapter"}, names)
}

func TestDir_ChapterNotFound(t *testing.T) {
	p := NewDir("")

	_, err := p.Chapter(context.Background(), 42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, 42, notFound.Number)
}

func TestDir_DirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	override := `{
		"number": 1,
		"name": "Custom Fatihah",
		"arabic_name": "الفاتحة",
		"verses": [{"number": 1, "arabic": "بِسْمِ اللَّهِ", "translation": "In the name of Allah"}]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001.json"), []byte(override), 0644))

	p := NewDir(dir)

	ch, err := p.Chapter(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Custom Fatihah", ch.Name)
	require.Len(t, ch.Verses, 1)

	// Embedded chapters without a directory file still resolve.
	ch, err = p.Chapter(context.Background(), 112)
	require.NoError(t, err)
	require.Equal(t, "Al-Ikhlas", ch.Name)
}

func TestDir_MissingDirectoryFallsBack(t *testing.T) {
	p := NewDir(filepath.Join(t.TempDir(), "does-not-exist"))

	ch, err := p.Chapter(context.Background(), 114)
	require.NoError(t, err)
	require.Equal(t, "An-Nas", ch.Name)
}

func TestDir_SanitizesWordMappings(t *testing.T) {
	dir := t.TempDir()
	// Arabic has 2 tokens, translation 5; the second mapping entry is out
	// of range and must be dropped on load.
	chapter := `{
		"number": 2,
		"name": "Test",
		"arabic_name": "اختبار",
		"verses": [{
			"number": 1,
			"arabic": "بِسْمِ اللَّهِ",
			"translation": "In the name of Allah",
			"word_mappings": [{"source": 0, "target": 0}, {"source": 1, "target": 99}]
		}]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002.json"), []byte(chapter), 0644))

	p := NewDir(dir)
	ch, err := p.Chapter(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, []align.WordMapping{{Source: 0, Target: 0}}, ch.Verses[0].WordMappings)
}

func TestDir_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "003.json"), []byte("{not json"), 0644))

	p := NewDir(dir)
	_, err := p.Chapter(context.Background(), 3)
	require.Error(t, err)
	require.False(t, errors.As(err, new(*NotFoundError)), "a corrupt file is not a missing chapter")
}

func TestCached_ServesFromCacheAndFlushes(t *testing.T) {
	ctx := context.Background()
	counting := &countingProvider{inner: NewDir("")}
	c := NewCached(counting, false)

	_, err := c.Chapter(ctx, 1)
	require.NoError(t, err)
	_, err = c.Chapter(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, counting.chapterCalls, "second read should hit the cache")

	require.NoError(t, c.Flush(ctx))
	_, err = c.Chapter(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, counting.chapterCalls, "flush forces a reload")
}

type countingProvider struct {
	inner        Provider
	chapterCalls int
}

func (p *countingProvider) Chapters(ctx context.Context) ([]ChapterInfo, error) {
	return p.inner.Chapters(ctx)
}

func (p *countingProvider) Chapter(ctx context.Context, number int) (*Chapter, error) {
	p.chapterCalls++
	return p.inner.Chapter(ctx, number)
}
