package content

import (
	"context"
	"fmt"
	"time"

	"mushaf/internal/cachemanager"
)

const chapterTTL = 30 * time.Minute

// Cached wraps a Provider with a read-through cache so chapter navigation
// does not re-read files. Flush drops everything after the content
// directory changes on disk.
type Cached struct {
	inner    Provider
	chapters *cachemanager.ReadThroughCache[string, *Chapter, int]
	listing  *cachemanager.ReadThroughCache[string, []ChapterInfo, struct{}]
}

var _ Provider = (*Cached)(nil)

// NewCached fronts inner with an in-memory cache. skipCache disables
// caching without changing call sites.
func NewCached(inner Provider, skipCache bool) *Cached {
	chapterStore := cachemanager.NewInMemoryCacheManager[string, *Chapter](
		"content-chapter", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	listingStore := cachemanager.NewInMemoryCacheManager[string, []ChapterInfo](
		"content-listing", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return &Cached{
		inner: inner,
		chapters: cachemanager.NewReadThroughCache[string, *Chapter, int](
			chapterStore,
			func(ctx context.Context, number int) (*Chapter, error) {
				return inner.Chapter(ctx, number)
			},
			skipCache,
		),
		listing: cachemanager.NewReadThroughCache[string, []ChapterInfo, struct{}](
			listingStore,
			func(ctx context.Context, _ struct{}) ([]ChapterInfo, error) {
				return inner.Chapters(ctx)
			},
			skipCache,
		),
	}
}

// Chapters lists chapters, cached.
func (c *Cached) Chapters(ctx context.Context) ([]ChapterInfo, error) {
	return c.listing.Get(ctx, "listing", struct{}{}, chapterTTL)
}

// Chapter returns one chapter, cached by number.
func (c *Cached) Chapter(ctx context.Context, number int) (*Chapter, error) {
	return c.chapters.Get(ctx, chapterKey(number), number, chapterTTL)
}

// Flush drops all cached content; the next reads hit the inner provider.
func (c *Cached) Flush(ctx context.Context) error {
	if err := c.chapters.Flush(ctx); err != nil {
		return fmt.Errorf("flushing chapter cache: %w", err)
	}
	if err := c.listing.Flush(ctx); err != nil {
		return fmt.Errorf("flushing listing cache: %w", err)
	}
	return nil
}

func chapterKey(number int) string {
	return fmt.Sprintf("chapter:%d", number)
}
