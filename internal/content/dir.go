package content

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"mushaf/internal/align"
	"mushaf/internal/log"
)

//go:embed data/*.json
var embeddedFS embed.FS

const tracerName = "mushaf/content"

// Dir serves chapters from JSON files in a directory, falling back to the
// embedded chapter set for numbers the directory does not cover. An empty
// dir serves embedded content only.
type Dir struct {
	dir string
}

var _ Provider = (*Dir)(nil)

// NewDir creates a directory-backed provider. The directory does not need
// to exist; a missing or empty directory means embedded content only.
func NewDir(dir string) *Dir {
	return &Dir{dir: dir}
}

// Chapters lists available chapters: everything in the directory merged
// with the embedded set, directory files winning on collisions.
func (d *Dir) Chapters(ctx context.Context) ([]ChapterInfo, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "content.chapters")
	defer span.End()

	byNumber := make(map[int]ChapterInfo)

	embedded, err := fs.Glob(embeddedFS, "data/*.json")
	if err != nil {
		return nil, fmt.Errorf("listing embedded chapters: %w", err)
	}
	for _, name := range embedded {
		ch, err := readChapterFS(embeddedFS, name)
		if err != nil {
			return nil, fmt.Errorf("embedded chapter %s: %w", name, err)
		}
		byNumber[ch.Number] = info(ch)
	}

	if d.dir != "" {
		entries, err := os.ReadDir(d.dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading content dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			ch, err := readChapterFile(filepath.Join(d.dir, entry.Name()))
			if err != nil {
				log.Warn(log.CatContent, "skipping unreadable chapter file",
					"file", entry.Name(), "error", err)
				continue
			}
			byNumber[ch.Number] = info(ch)
		}
	}

	infos := make([]ChapterInfo, 0, len(byNumber))
	for _, ci := range byNumber {
		infos = append(infos, ci)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Number < infos[j].Number })

	span.SetAttributes(attribute.Int("chapters.count", len(infos)))
	return infos, nil
}

// Chapter returns the chapter with the given number, preferring the
// directory over the embedded set. Verse word mappings are bounds-checked
// on load; out-of-range entries are dropped.
func (d *Dir) Chapter(ctx context.Context, number int) (*Chapter, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "content.chapter")
	defer span.End()
	span.SetAttributes(attribute.Int("chapter.number", number))

	if d.dir != "" {
		path := filepath.Join(d.dir, fmt.Sprintf("%03d.json", number))
		if ch, err := readChapterFile(path); err == nil {
			sanitize(ch)
			log.Debug(log.CatContent, "chapter loaded from dir",
				"chapter", number, "verses", len(ch.Verses))
			return ch, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading chapter %d: %w", number, err)
		}
	}

	ch, err := readChapterFS(embeddedFS, fmt.Sprintf("data/%03d.json", number))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Number: number}
		}
		return nil, fmt.Errorf("reading embedded chapter %d: %w", number, err)
	}
	sanitize(ch)
	log.Debug(log.CatContent, "chapter loaded from embedded set",
		"chapter", number, "verses", len(ch.Verses))
	return ch, nil
}

func readChapterFile(path string) (*Chapter, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path derived from configured content dir
	if err != nil {
		return nil, err
	}
	return decodeChapter(data)
}

func readChapterFS(fsys fs.FS, name string) (*Chapter, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return decodeChapter(data)
}

func decodeChapter(data []byte) (*Chapter, error) {
	var ch Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("parsing chapter json: %w", err)
	}
	if ch.Number < 1 {
		return nil, fmt.Errorf("chapter number %d invalid", ch.Number)
	}
	return &ch, nil
}

// sanitize drops word-mapping entries that point outside either token
// sequence. Malformed caller-supplied alignment must never cause an
// out-of-bounds read downstream.
func sanitize(ch *Chapter) {
	for i := range ch.Verses {
		v := &ch.Verses[i]
		if len(v.WordMappings) == 0 {
			continue
		}
		sourceLen := len(align.Tokenize(v.Arabic))
		targetLen := len(align.Tokenize(v.Translation))
		kept := align.SanitizeMappings(v.WordMappings, sourceLen, targetLen)
		if len(kept) != len(v.WordMappings) {
			log.Warn(log.CatContent, "dropped out-of-range word mappings",
				"chapter", ch.Number, "verse", v.Number,
				"dropped", len(v.WordMappings)-len(kept))
		}
		v.WordMappings = kept
	}
}

func info(ch *Chapter) ChapterInfo {
	return ChapterInfo{
		Number:     ch.Number,
		Name:       ch.Name,
		ArabicName: ch.ArabicName,
		VerseCount: len(ch.Verses),
	}
}
