package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"riderdir/internal/api"
	"riderdir/internal/config"
	"riderdir/internal/eventbus"
	"riderdir/internal/notify"
	"riderdir/internal/ui"
)

func main() {
	var (
		configPath string
		baseURL    string
		timeout    time.Duration
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&baseURL, "base-url", "", "Rider API base URL")
	flag.StringVar(&baseURL, "u", "", "Rider API base URL (shorthand)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (e.g. 10s)")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

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

	// Buffer notifications and errors for the UI. Startup problems are
	// published before the program exists and shown once it runs.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := forwardTo(ctx, eventChan)
	bus.Subscribe(eventbus.EventNotification, forward)
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	// Load configuration, writing the defaults on first run
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	configSvc = config.WithBus(configSvc, bus)

	cfg, err := configSvc.LoadOrCreate()
	if err != nil {
		log.Printf("Error loading config, using defaults: %v", err)
	}
	cfg.ApplyEnv()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.TimeoutSeconds = int(timeout.Round(time.Second) / time.Second)
		if cfg.TimeoutSeconds == 0 {
			cfg.TimeoutSeconds = 1
		}
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	if logFile := openLogFile(cfg.LogFile, bus); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Starting with base URL %s (timeout %s)", cfg.BaseURL, cfg.Timeout())

	client, err := api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid base URL: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	uiModel := ui.NewModel(ctx, bus, cfg, client, notify.NewBusNotifier(bus))

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Signal readiness to the end-to-end harness
	if os.Getenv("RIDERDIR_E2E_TEST") == "1" {
		bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
			fmt.Print("__READY__")
		})
	}

	// Forward buffered events to the UI
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	cancel()
}

// forwardTo returns a bus handler that queues events on ch. It blocks while
// ch is full and gives up only once ctx is done.
func forwardTo(ctx context.Context, ch chan<- eventbus.DomainEvent) func(eventbus.DomainEvent) {
	return func(e eventbus.DomainEvent) {
		select {
		case ch <- e:
		case <-ctx.Done():
			log.Printf("Shutting down, dropping %s event", e.Type())
		}
	}
}

// openLogFile redirects the standard logger to path. A file that cannot be
// opened is reported on the bus and logging stays where it was.
func openLogFile(path string, bus eventbus.EventBus) *os.File {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		bus.Publish(eventbus.ErrorEvent{Message: "Could not open log file " + path, Err: err})
		return nil
	}
	log.SetOutput(f)
	return f
}
