package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"movieflix/internal/config"
	"movieflix/internal/eventbus"
	"movieflix/internal/logging"
	"movieflix/internal/omdb"
	"movieflix/internal/storage"
	"movieflix/internal/ui"
	"movieflix/internal/watchlist"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		logPath    string
		backend    string
		ephemeral  bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&logPath, "log", "", "Path to the log file")
	flag.StringVar(&backend, "storage", "", "Watched list storage: file, redis or memory")
	flag.BoolVar(&ephemeral, "ephemeral", false, "Keep the watched list in memory only")
	flag.Parse()

	initialQuery := strings.TrimSpace(strings.Join(flag.Args(), " "))

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, configErr := configSvc.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyEnv(".env", filepath.Join(config.DefaultDir(), ".env"))

	if logPath != "" {
		cfg.Log.File = logPath
	}
	if backend != "" {
		cfg.Storage.Backend = strings.ToLower(backend)
	}
	if ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration (%s): %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if cfg.API.Key == "" {
		fmt.Fprintf(os.Stderr, "No OMDb API key: set %s or api.key in %s\n", config.EnvAPIKey, configSvc.Path())
		os.Exit(1)
	}

	// Set up logging
	log, logCloser, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log = logging.Discard()
	} else {
		defer logCloser.Close()
	}
	if configErr != nil {
		log.Warn("using default config", "path", configSvc.Path(), "error", configErr)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New(log)
	defer bus.Close()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("storage unavailable", "backend", cfg.Storage.Backend, "error", err)
		fmt.Fprintf(os.Stderr, "Could not open %s storage: %v\n", cfg.Storage.Backend, err)
		os.Exit(1)
	}
	defer store.Close()

	list := watchlist.Open(ctx, store, cfg.Storage.Key, bus, log)

	api, err := omdb.NewClient(omdb.Options{
		BaseURL:           cfg.API.BaseURL,
		Key:               cfg.API.Key,
		Timeout:           cfg.API.Timeout.Duration,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Logger:            log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid OMDb settings: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	model := ui.NewModel(ui.Options{
		Config:       cfg,
		API:          api,
		Watchlist:    list,
		Logger:       log,
		InitialQuery: initialQuery,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward watched list events to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventWatchlistLoaded,
		eventbus.EventEntryAdded,
		eventbus.EventEntryRemoved,
		eventbus.EventStorageFailed,
	} {
		defer bus.Subscribe(t, forward)()
	}

	// Run the UI
	log.Info("starting UI", "storage", cfg.Storage.Backend, "query", initialQuery)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("UI exited normally")
}

// openStore opens the configured storage backend
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		return storage.NewRedisStore(ctx, cfg.Storage.RedisURL)
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewFileStore(cfg.Storage.Dir)
	}
}
