package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vidyasagar/seltrack/internal/app"
	"github.com/vidyasagar/seltrack/internal/config"
	"github.com/vidyasagar/seltrack/internal/storage"
	"github.com/vidyasagar/seltrack/internal/theme"
	"github.com/vidyasagar/seltrack/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run does the work of main and returns the exit code, so deferred cleanup
// runs before the process exits.
func run(args []string) int {
	var (
		dbPath      string
		configPath  string
		themeName   string
		maxEntries  int
		seed        bool
		showVersion bool
	)

	flags := flag.NewFlagSet("seltrack", flag.ContinueOnError)
	flags.StringVar(&dbPath, "db", "", "workspace database file (overrides database.path)")
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/seltrack/config.toml)")
	flags.StringVar(&themeName, "theme", "", "color theme ("+strings.Join(theme.List(), ", ")+")")
	flags.IntVar(&maxEntries, "max", 0, "history length, 1-100 (overrides history.max)")
	flags.BoolVar(&seed, "seed", false, "add demo assets to an empty workspace")
	flags.BoolVar(&showVersion, "version", false, "show version")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "seltrack - browse a workspace with back/forward selection history\n\n")
		fmt.Fprintf(os.Stderr, "Usage: seltrack [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  seltrack --seed                 # start with a few demo assets\n")
		fmt.Fprintf(os.Stderr, "  seltrack --max 50               # keep up to 50 history entries\n")
		fmt.Fprintf(os.Stderr, "  seltrack --db ./game.db         # use a project-local workspace\n")
		fmt.Fprintf(os.Stderr, "  SELTRACK_DEBUG=1 seltrack       # write a debug log\n")
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Printf("seltrack %s\n", version)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Write defaults on first run so the file can be edited and watched.
	if _, err := os.Stat(cfg.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	if themeName != "" {
		cfg.UI.Theme = themeName
	}
	if !theme.Set(cfg.UI.Theme) {
		fmt.Fprintf(os.Stderr, "Unknown theme: %s\nAvailable: %s\n", cfg.UI.Theme, strings.Join(theme.List(), ", "))
		return 1
	}
	if maxEntries != 0 {
		cfg.History.Max = config.ClampMax(maxEntries)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer db.Close()
	log.Printf("workspace %s", db.Path())

	store := storage.NewAssetStore(db)
	if seed {
		n, err := store.SeedDemo(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		log.Printf("seeded %d demo assets", n)
	}

	icon, err := ui.LoadIcon(cfg.UI.Icon)
	if err != nil {
		log.Printf("warn: %v", err)
	}

	m := app.New(app.Options{Store: store, Config: cfg, Icon: icon})
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	config.Watch(cfg, func(c config.Config) {
		p.Send(app.ConfigChangedMsg{Config: c})
	}, func(err error) {
		log.Printf("warn: %v", err)
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends the standard logger to file, or to debug.log when
// SELTRACK_DEBUG is set. Without either, logs are discarded so they never
// draw over the UI.
func setupLogging(file string) (func(), error) {
	if file == "" && os.Getenv("SELTRACK_DEBUG") != "" {
		file = "debug.log"
	}
	if file == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(file, "seltrack")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func openDB(path string) (*storage.DB, error) {
	if path != "" {
		return storage.OpenPath(path)
	}
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return storage.OpenDB(dir)
}
