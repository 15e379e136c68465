// Package app wires the viewer together: flags, logging, configuration,
// file watching and the bubbletea program.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"scrollsync/internal/config"
	"scrollsync/internal/domain"
	"scrollsync/internal/source"
	"scrollsync/internal/ui"
)

// E2EEnv enables the ready marker used by the end-to-end driver
const E2EEnv = "SCROLLSYNC_E2E_TEST"

// LogFile is where the viewer logs, relative to the working directory
const LogFile = "scrollsync.log"

// Flags holds the parsed command line
type Flags struct {
	File       string
	Axis       string
	ConfigPath string
	Debug      bool
}

// ParseFlags reads the command line. The file may be given with -f or as
// the first argument.
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("scrollsync", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.File, "file", "", "File to view")
	fs.StringVar(&f.File, "f", "", "File to view (shorthand)")
	fs.StringVar(&f.Axis, "axis", "", "Scroll direction: horizontal or vertical (overrides config)")
	fs.StringVar(&f.ConfigPath, "config", "", "Config file (default: user config dir)")
	fs.BoolVar(&f.Debug, "debug", false, "Log scroll control internals")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.File == "" && fs.NArg() > 0 {
		f.File = fs.Arg(0)
	}
	if f.File == "" {
		return nil, errors.New("no file given; use -f FILE")
	}
	if f.Axis != "" {
		if _, err := domain.ParseAxis(f.Axis); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Override returns the config changes the flags ask for
func (f *Flags) Override() func(*config.Config) {
	if f.Axis == "" {
		return nil
	}
	return func(cfg *config.Config) {
		cfg.Scrollbar.Direction = f.Axis
	}
}

// Run starts the viewer and returns the process exit code
func Run(args []string) int {
	flags, err := ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging
	logFile, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	file, err := source.Load(flags.File)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	configSvc := config.NewConfigService()
	if flags.ConfigPath != "" {
		configSvc = config.NewConfigServiceAt(flags.ConfigPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	watcher, err := config.NewWatcher(file.Path, configSvc.Path())
	if err != nil {
		log.Printf("File watching disabled: %v", err)
		watcher = nil
	} else {
		watcher.Logf = log.Printf
	}

	opts := ui.Options{
		File:        file,
		Config:      cfg,
		ConfigSvc:   configSvc,
		Override:    flags.Override(),
		Watcher:     watcher,
		ReadyMarker: os.Getenv(E2EEnv) == "1",
	}
	if flags.Debug {
		opts.Logf = log.Printf
	}

	model, err := ui.NewModel(opts)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	// SIGTERM ends the program; ctrl+c arrives as a key in raw mode
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if model.Config().UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	log.Printf("Viewing %s (%d lines, %d columns)", file.Path, file.LineCount(), file.Width())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		return 1
	}
	log.Printf("UI exited normally")
	return 0
}
