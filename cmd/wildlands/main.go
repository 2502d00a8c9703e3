package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/wildlands/audio"
	"github.com/lixenwraith/wildlands/config"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/desktop"
	"github.com/lixenwraith/wildlands/engine"
	"github.com/lixenwraith/wildlands/logger"
	"github.com/lixenwraith/wildlands/status"
	"github.com/lixenwraith/wildlands/terminal"
)

const (
	logDir      = "logs"
	logFileName = "wildlands.log"
)

var (
	backendFlag = flag.String("backend", "", "Host backend: desktop or terminal (overrides config)")
	configFlag  = flag.String("config", "wildlands.yaml", "YAML config file; missing file uses defaults")
	debugFlag   = flag.Bool("debug", false, "Show the metric overlay and log at debug level")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(*configFlag, *backendFlag, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run holds the deferred cleanups; main exits only after they have run
func run(configPath, backend string, debug bool) error {
	cfg, err := loadConfig(configPath, backend, debug)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, logCloser, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	metrics := status.NewRegistry()
	cues := audio.NewCuePlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := cues.Start(); err != nil {
			log.WithError(err).Warn("audio initialization failed, continuing without audio")
		} else {
			metrics.Bools.Get(status.MetricAudioEnabled).Store(true)
			defer cues.Stop()
		}
	}

	game := engine.NewGame(engine.Config{
		Seed:    cfg.Seed,
		Logger:  log,
		Cues:    cues,
		Metrics: metrics,
		Debug:   cfg.Debug,
	})

	switch cfg.Backend {
	case config.BackendTerminal:
		err = terminal.Run(game, cfg, log)
	default:
		err = desktop.Run(game, cfg, log)
	}
	if err != nil {
		log.WithError(err).Error("host stopped")
		return err
	}
	return nil
}

// loadConfig applies command-line overrides on top of the file and environment
func loadConfig(path, backend string, debug bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if debug {
		cfg.Debug = true
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging builds the process logger
// The terminal host owns the tty, so its log goes to a file under debug and is discarded otherwise
func setupLogging(cfg *config.Config) (*logrus.Logger, io.Closer, error) {
	if cfg.Backend == config.BackendTerminal && cfg.Log.File == "" {
		if !cfg.Debug {
			return logger.Discard(), nopCloser{}, nil
		}
		cfg.Log.File = filepath.Join(logDir, logFileName)
	}
	return logger.New(cfg.Log)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
