// Command scened opens a scene in the terminal layout editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/idursun/scened/internal/commands"
	"github.com/idursun/scened/internal/config"
	"github.com/idursun/scened/internal/project"
	"github.com/idursun/scened/internal/scene"
	"github.com/idursun/scened/internal/ui"
)

type options struct {
	scenePath  string
	configPath string
	logPath    string
	debug      bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("scened", flag.ContinueOnError)
	fs.StringVar(&opts.scenePath, "scene", "", "scene file to open (defaults to the bundled sample)")
	fs.StringVar(&opts.configPath, "config", "", "config file (defaults to the user config)")
	fs.StringVar(&opts.logPath, "log", "", "write logs to this file")
	fs.BoolVar(&opts.debug, "debug", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func loadScene(path string) (*project.Scene, error) {
	if path == "" {
		return project.Sample()
	}
	return project.LoadFile(path)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "scened")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger = newLogger(f, opts.debug)
	}
	scene.SetLogger(logger)

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		if data, err := os.ReadFile(opts.configPath); err == nil {
			for _, w := range config.Warnings(string(data)) {
				logger.Warn(w, "file", opts.configPath)
			}
		}
	}

	sc, err := loadScene(opts.scenePath)
	if err != nil {
		return err
	}

	manager := commands.NewManager()
	manager.SetLogger(logger)
	model, err := ui.New(ui.Options{
		Config:  cfg,
		Scene:   sc,
		Manager: manager,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting", "layout", sc.Layout.Name, "instances", sc.Instances.Count())
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "scened:", err)
		os.Exit(1)
	}
}
