package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledIsNoop(t *testing.T) {
	p, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)

	require.False(t, p.Enabled())
	require.NotNil(t, p.Tracer(), "disabled tracing still hands out a usable tracer")
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "carrier-pigeon"})
	require.Error(t, err)
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "file"})
	require.Error(t, err)
}

func TestNewProvider_FileExporterEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "mushaf.jsonl")

	p, err := NewProvider(Config{Enabled: true, Exporter: "file", FilePath: path})
	require.NoError(t, err)
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "content.load_chapter")
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "content.load_chapter")
}

func TestFileExporter_WritesOneJSONObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	exp, err := NewFileExporter(path)
	require.NoError(t, err)

	now := time.Now()
	stubs := tracetest.SpanStubs{
		{Name: "first", StartTime: now, EndTime: now.Add(5 * time.Millisecond)},
		{Name: "second", StartTime: now, EndTime: now.Add(time.Millisecond)},
	}
	require.NoError(t, exp.ExportSpans(context.Background(), stubs.Snapshots()))
	require.NoError(t, exp.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		names = append(names, rec.Name)
		require.GreaterOrEqual(t, rec.DurationMs, 0.0)
	}
	require.Equal(t, []string{"first", "second"}, names)
}

func TestFileExporter_EmptyBatchIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	exp, err := NewFileExporter(path)
	require.NoError(t, err)

	require.NoError(t, exp.ExportSpans(context.Background(), nil))
	require.NoError(t, exp.Shutdown(context.Background()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Zero(t, info.Size())
}
