package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mushaf/internal/app"
	"mushaf/internal/config"
	"mushaf/internal/content"
	"mushaf/internal/infrastructure/sqlite"
	"mushaf/internal/log"
	"mushaf/internal/tracing"
	"mushaf/internal/ui/styles"
	"mushaf/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "mushaf",
	Short:   "A terminal Quran reader with word-by-word highlighting",
	Long:    `A terminal Quran reader showing Arabic and translation side by side. Drag the mouse over any word to light up its counterpart in the other column.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/mushaf/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to .mushaf/debug.log")
	rootCmd.Flags().StringP("content", "d", "",
		"directory with per-chapter JSON files")
	rootCmd.Flags().IntP("chapter", "n", 0,
		"chapter to open at startup")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic reload when content files change")

	// Bind flags to viper
	_ = viper.BindPFlag("content_dir", rootCmd.Flags().Lookup("content"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("default_chapter", defaults.DefaultChapter)
	viper.SetDefault("ui.show_transliteration", defaults.UI.ShowTransliteration)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.arabic", defaults.Theme.Arabic)
	viper.SetDefault("theme.translation", defaults.Theme.Translation)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .mushaf/config.yaml (current directory)
		// 2. ~/.config/mushaf/config.yaml (user config)
		if _, err := os.Stat(".mushaf/config.yaml"); err == nil {
			viper.SetConfigFile(".mushaf/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "mushaf"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .mushaf/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".mushaf/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if chapter, _ := cmd.Flags().GetInt("chapter"); chapter > 0 {
		cfg.DefaultChapter = chapter
	}
	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debug := debugFlag || os.Getenv("MUSHAF_DEBUG") != ""
	if debug {
		logPath := os.Getenv("MUSHAF_LOG")
		if logPath == "" {
			logPath = ".mushaf/debug.log"
			_ = os.MkdirAll(".mushaf", 0755)
		}
		if cleanup, err := log.Init(logPath); err == nil {
			defer cleanup()
			log.Info(log.CatConfig, "Mushaf starting", "version", version, "logPath", logPath)
		}
	}

	styles.ApplyTheme(
		cfg.Theme.Highlight,
		cfg.Theme.Arabic,
		cfg.Theme.Translation,
		cfg.Theme.Subtle,
		cfg.Theme.Error,
		cfg.Theme.Success,
	)

	tracerProvider, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() { _ = tracerProvider.Shutdown(context.Background()) }()

	provider := content.NewCached(content.NewDir(cfg.ContentDir), false)

	// Bookmarks are optional: a failed database open degrades to a
	// read-only session instead of refusing to start.
	var db interface{ Close() error }
	services := app.Services{Config: cfg, Content: provider, Debug: debug}
	if dbPath, pathErr := config.DefaultBookmarksPath(cfg); pathErr == nil {
		if sqlDB, repo, openErr := sqlite.Open(dbPath); openErr == nil {
			db = sqlDB
			services.Bookmarks = repo
		} else {
			log.ErrorErr(log.CatDB, "Opening bookmarks database", openErr, "path", dbPath)
		}
	} else {
		log.ErrorErr(log.CatDB, "Resolving bookmarks path", pathErr)
	}
	if db != nil {
		defer func() { _ = db.Close() }()
	}

	var w *watcher.Watcher
	if cfg.AutoReload && cfg.ContentDir != "" {
		wcfg := watcher.DefaultConfig(cfg.ContentDir)
		if cfg.AutoReloadDebounce > 0 {
			wcfg.DebounceDur = cfg.AutoReloadDebounce
		}
		w, err = watcher.New(wcfg)
		if err != nil {
			return fmt.Errorf("creating content watcher: %w", err)
		}
		changes, startErr := w.Start()
		if startErr != nil {
			log.ErrorErr(log.CatWatcher, "Starting content watcher", startErr)
		} else {
			services.Changes = changes
		}
	}

	zone.NewGlobal()

	p := tea.NewProgram(
		app.New(services),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if w != nil {
		if stopErr := w.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
