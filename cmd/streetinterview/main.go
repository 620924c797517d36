package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"streetinterview/internal/adapters/clipboard"
	"streetinterview/internal/adapters/editor"
	"streetinterview/internal/adapters/filesystem"
	"streetinterview/internal/adapters/storage"
	"streetinterview/internal/adapters/tui"
	"streetinterview/internal/adapters/tui/views"
	"streetinterview/internal/config"
	"streetinterview/internal/logging"
	"streetinterview/internal/ports"
)

func main() {
	configPath := flag.String("config", "", "config file (default "+config.DefaultPath()+")")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.NewFile(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	repo, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer repo.Close()

	logger.Info("starting", "backend", cfg.Storage.Backend, "location", repo.Location())

	svc := views.Services{
		Repo:      repo,
		Files:     filesystem.NewDocuments(),
		ExportDir: cfg.Export.Dir,
		Logger:    logger,
	}
	if cb := clipboard.New(); cb.Available() {
		svc.Clipboard = cb
	} else {
		logger.Warn("clipboard unavailable")
	}

	var ed ports.EditorOpener
	if opener := editor.NewOpener(cfg.Editor.Command); opener.Available() {
		ed = opener
	}

	app := tui.NewApp(svc, ed)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		return err
	}
	return nil
}
