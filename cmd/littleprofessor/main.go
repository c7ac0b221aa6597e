// Package main is the entry point for Little Professor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/littleprofessor/internal/config"
	"github.com/samdwyer/littleprofessor/internal/game"
	"github.com/samdwyer/littleprofessor/internal/gamedata"
	"github.com/samdwyer/littleprofessor/internal/house"
	"github.com/samdwyer/littleprofessor/internal/level"
	"github.com/samdwyer/littleprofessor/internal/logging"
	"github.com/samdwyer/littleprofessor/internal/question"
	"github.com/samdwyer/littleprofessor/internal/storage"
	"github.com/samdwyer/littleprofessor/internal/telemetry"
	"github.com/samdwyer/littleprofessor/internal/ui"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("fatal")
		fmt.Fprintf(os.Stderr, "littleprofessor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			// Continue without telemetry - game still works
			log.Warn().Err(err).Msg("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown")
				}
			}()
		}
	}

	cipher, err := storage.NewCipher(cfg.Secret)
	if err != nil {
		return err
	}
	store := storage.NewUserFile(cfg.UserFile, cipher)

	gameCfg := cfg.Game()
	catalog, err := level.LoadCatalog(question.NewRandSource(gameCfg.Seed))
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	clock := game.NewClock(0)
	h, err := house.New(gamedata.Layouts{}, clock)
	if err != nil {
		return err
	}

	display, err := newDisplay(cfg)
	if err != nil {
		return err
	}
	defer display.Close()

	g, err := game.New(gameCfg, display, store, catalog, h, clock)
	if err != nil {
		return err
	}

	go clock.Run(ctx, gameCfg.TickInterval)
	return g.Run(ctx)
}

// newDisplay picks the tcell screen for interactive terminals and the line
// based backend otherwise.
func newDisplay(cfg config.Config) (*ui.Display, error) {
	if cfg.Plain || !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return ui.NewDisplay(ui.NewStreamIO(os.Stdin, os.Stdout)), nil
	}
	palette, err := ui.NewPalette(cfg.AccentColor)
	if err != nil {
		return nil, err
	}
	term, err := ui.NewTerminalIO(palette)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return ui.NewDisplay(term), nil
}
