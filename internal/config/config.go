// Package config provides configuration types, defaults, and persistence
// for mushaf.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowTransliteration bool   `mapstructure:"show_transliteration" yaml:"show_transliteration"`
	ShowStatusBar       bool   `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	MarkdownStyle       string `mapstructure:"markdown_style" yaml:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig holds theme customization options. Colors are hex strings
// like "#10B981"; empty values keep the built-in palette.
type ThemeConfig struct {
	Highlight   string `mapstructure:"highlight" yaml:"highlight"`     // background of the highlighted word pair
	Arabic      string `mapstructure:"arabic" yaml:"arabic"`           // Arabic column text
	Translation string `mapstructure:"translation" yaml:"translation"` // translation column text
	Subtle      string `mapstructure:"subtle" yaml:"subtle"`           // hints, footers
	Error       string `mapstructure:"error" yaml:"error"`
	Success     string `mapstructure:"success" yaml:"success"`
}

// TracingConfig configures the optional OpenTelemetry export.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Exporter     string  `mapstructure:"exporter" yaml:"exporter"` // "file", "stdout", "otlp"
	FilePath     string  `mapstructure:"file_path" yaml:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// Config holds all configuration options for mushaf.
type Config struct {
	// ContentDir is the directory holding per-chapter JSON files.
	// Empty means embedded content only.
	ContentDir string `mapstructure:"content_dir" yaml:"content_dir"`

	// BookmarksDB is the SQLite file for bookmarks.
	// Empty derives <config dir>/bookmarks.db.
	BookmarksDB string `mapstructure:"bookmarks_db" yaml:"bookmarks_db"`

	// AutoReload re-reads chapter files when they change on disk.
	AutoReload bool `mapstructure:"auto_reload" yaml:"auto_reload"`

	// AutoReloadDebounce coalesces bursts of file events.
	AutoReloadDebounce time.Duration `mapstructure:"auto_reload_debounce" yaml:"auto_reload_debounce"`

	// DefaultChapter is opened at startup.
	DefaultChapter int `mapstructure:"default_chapter" yaml:"default_chapter"`

	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		ContentDir:         "",
		BookmarksDB:        "",
		AutoReload:         true,
		AutoReloadDebounce: time.Second,
		DefaultChapter:     1,
		UI: UIConfig{
			ShowTransliteration: false,
			ShowStatusBar:       true,
			MarkdownStyle:       "dark",
		},
		Theme: ThemeConfig{
			Highlight:   "#1A5276",
			Arabic:      "#F9E2AF",
			Translation: "#CCCCCC",
			Subtle:      "#696969",
			Error:       "#FF8787",
			Success:     "#73F59F",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks cross-field constraints before the app starts.
func Validate(cfg Config) error {
	if cfg.DefaultChapter < 1 || cfg.DefaultChapter > 114 {
		return fmt.Errorf("default_chapter %d out of range (1-114)", cfg.DefaultChapter)
	}
	if cfg.ContentDir != "" {
		info, err := os.Stat(cfg.ContentDir)
		if err != nil {
			return fmt.Errorf("content_dir %q: %w", cfg.ContentDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content_dir %q is not a directory", cfg.ContentDir)
		}
	}
	switch cfg.Tracing.Exporter {
	case "", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter %q not one of file, stdout, otlp", cfg.Tracing.Exporter)
	}
	if cfg.AutoReloadDebounce < 0 {
		return fmt.Errorf("auto_reload_debounce must not be negative")
	}
	return nil
}

// DefaultBookmarksPath resolves the bookmarks database path, creating the
// parent directory if needed.
func DefaultBookmarksPath(cfg Config) (string, error) {
	if cfg.BookmarksDB != "" {
		return cfg.BookmarksDB, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "mushaf")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(dir, "bookmarks.db"), nil
}
