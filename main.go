package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/app"
	"github.com/llehouerou/burrow/internal/config"
	"github.com/llehouerou/burrow/internal/errmsg"
	"github.com/llehouerou/burrow/internal/icons"
	"github.com/llehouerou/burrow/internal/logging"
	"github.com/llehouerou/burrow/internal/state"
)

var version = "dev"

const usage = `usage: burrow [path]

Browse the filesystem starting at path (default: configured default_folder,
else the current directory).

  -h, --help     show this help
  -v, --version  print the version
`

// multiCloser closes each closer in order and returns the first error.
type multiCloser []io.Closer

func (mc multiCloser) Close() error {
	var first error
	for _, c := range mc {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func initialModel(args []string) (app.Model, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	icons.Init(cfg.Icons)

	// Logging is best effort: a read-only state dir must not keep the browser
	// from starting.
	var closer io.Closer = io.NopCloser(nil)
	logger := logging.Nop()
	if l, err := logging.Init(logging.Config{Level: cfg.LogLevel, Path: cfg.LogFile}); err == nil {
		logger = l.Logger
		closer = l
	} else {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}

	// Remembering the location is best effort as well.
	stateMgr, err := state.Open()
	if err != nil {
		logger.Warn().Err(err).Msg("state store unavailable")
	} else {
		closer = multiCloser{stateMgr, closer}
	}

	// Determine start path: argument > saved state > config default > cwd
	startPath := cfg.DefaultFolder
	var savedSelection string
	switch {
	case len(args) > 0:
		startPath = args[0]
	case stateMgr != nil && cfg.ShouldRestoreLocation():
		if navState, err := stateMgr.GetNavigation(); err == nil && navState != nil {
			// Check if saved path still exists
			if _, statErr := os.Stat(navState.CurrentPath); statErr == nil {
				startPath = navState.CurrentPath
				savedSelection = navState.SelectedName
			}
		}
	}
	if startPath == "" {
		if startPath, err = os.Getwd(); err != nil {
			closer.Close()
			return app.Model{}, nil, err
		}
	}

	opts := app.Options{
		StartPath: startPath,
		Select:    savedSelection,
		Config:    cfg,
		Logger:    logger.With().Str("component", "app").Logger(),
	}
	if stateMgr != nil {
		opts.State = stateMgr
	}

	m, err := app.New(opts)
	if err != nil {
		logger.Error().Err(err).Str("path", startPath).Msg("cannot start")
		closer.Close()
		return app.Model{}, nil, fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	return m, closer, nil
}

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "-v", "--version":
			fmt.Println("burrow", version)
			return
		case "-h", "--help":
			fmt.Print(usage)
			return
		}
	}
	if len(args) > 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	m, closer, err := initialModel(args)
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	if err := closer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}
}
