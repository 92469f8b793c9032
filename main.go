package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"docnav/internal/clipboard"
	"docnav/internal/config"
	"docnav/internal/discovery"
	"docnav/internal/eventbus"
	"docnav/internal/ui"
)

func main() {
	var logPath string
	flag.StringVar(&logPath, "log", "", "write debug log to this file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: docnav [-log file] <document>")
		os.Exit(1)
	}
	docPath := flag.Arg(0)

	// Set up logging
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// The clipboard may legitimately be unavailable (no display); yank
	// then fails with a status message instead of a crash.
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	}

	// Create event bus and services
	bus := eventbus.New()
	defer bus.Close()

	discoverySvc := discovery.NewDiscoveryService(bus)

	// Create UI model and program
	uiModel := ui.NewModel(bus, cfg)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward domain events into the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventScanStarted, forward)
	bus.Subscribe(eventbus.EventElementsDiscovered, forward)
	bus.Subscribe(eventbus.EventScanCompleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Kick off the document scan
	go func() {
		if err := discoverySvc.StartScan(ctx, docPath); err != nil {
			log.Printf("Scan failed: %v", err)
		}
	}()

	// Quit the program on shutdown signals
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "docnav: %v\n", err)
		os.Exit(1)
	}
}
