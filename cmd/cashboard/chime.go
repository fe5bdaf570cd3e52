package main

import (
	"log/slog"
	"os/exec"

	"github.com/pterm/pterm"

	"github.com/karski/cashboard/internal/config"
	"github.com/karski/cashboard/internal/live"
)

// bellChimer rings the terminal bell.
type bellChimer struct{}

func (bellChimer) Chime() {
	pterm.Print("\a")
}

// execChimer shells out to an external audio player. Playback runs in
// the background so the clock tick is never delayed.
type execChimer struct {
	player string
	asset  string
	logger *slog.Logger
}

func (c *execChimer) Chime() {
	go func() {
		if err := exec.Command(c.player, c.asset).Run(); err != nil {
			c.logger.Warn("hour chime playback failed", "player", c.player, "error", err)
		}
	}()
}

// newChimer picks the full-hour cue implementation. With sound disabled
// there is no Chimer at all and the viewer skips the cue.
func newChimer(cfg config.SoundConfig, logger *slog.Logger) live.Chimer {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Player == "" || cfg.Asset == "" {
		return bellChimer{}
	}
	return &execChimer{player: cfg.Player, asset: cfg.Asset, logger: logger}
}
