package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/karski/cashboard/internal/live"
	"github.com/karski/cashboard/internal/model"
	"github.com/karski/cashboard/internal/settlement"
)

const (
	gameResume = "Resume live view"
	gameRebuy  = "Rebuy"
	gameUndo   = "Undo rebuy"
	gameInfo   = "Table info"
	gameEnd    = "End game"
	gameLeave  = "Back to menu"

	settleSubmit = "Submit settlement"
	settleCancel = "Cancel"
)

// gameScreen alternates between the live view and the game action menu
// until the user leaves or the game is settled.
func (a *app) gameScreen(ctx context.Context, code string) {
	settings, err := a.client.GetGameSettings(ctx, code)
	if err != nil {
		a.logger.Warn("could not load game settings", "code", code, "error", err)
	}

	for ctx.Err() == nil {
		if err := a.liveView(ctx, code); err != nil {
			return
		}

		options := []string{gameResume, gameRebuy}
		if a.sess.IsSuperuser() {
			options = append(options, gameUndo, gameEnd)
		}
		options = append(options, gameInfo, gameLeave)

		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("Game " + code).
			Show()

		switch choice {
		case gameResume:
			// next iteration restarts the live view
		case gameRebuy:
			a.rebuy(ctx, code)
		case gameUndo:
			a.undoRebuy(ctx, code)
		case gameInfo:
			renderSettings(code, settings)
		case gameEnd:
			if a.endGameScreen(ctx, code) {
				return
			}
		case gameLeave:
			return
		}
	}
}

// liveView renders the clock and table metrics until the user presses
// enter. The viewer owns the poll and tick loops; both are joined before
// this returns, so no timers outlive the screen.
func (a *app) liveView(ctx context.Context, code string) error {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return err
	}

	vcfg := live.Config{
		Code:          code,
		PollInterval:  a.cfg.Live.PollInterval.Std(),
		ClockInterval: a.cfg.Live.ClockInterval.Std(),
		FetchTimeout:  a.cfg.Live.FetchTimeout.Std(),
	}

	var viewer *live.Viewer
	viewer = live.NewViewer(vcfg, a.client, a.logger,
		live.WithChimer(a.chimer),
		live.WithTickHandler(func(display string) {
			area.Update(renderGame(code, display, viewer.Snapshot()))
		}),
	)

	// With the stream enabled, pushed snapshots feed the same viewer and
	// polling becomes a fallback.
	var stream *live.Stream
	if a.cfg.Stream.Enabled {
		scfg := live.StreamConfig{
			URL:                strings.ReplaceAll(a.cfg.Stream.URL, "{code}", code),
			HandshakeTimeout:   a.cfg.Stream.HandshakeTimeout.Std(),
			ReadTimeout:        a.cfg.Stream.ReadTimeout.Std(),
			ReconnectBaseDelay: a.cfg.Stream.ReconnectBaseDelay.Std(),
			ReconnectMaxDelay:  a.cfg.Stream.ReconnectMaxDelay.Std(),
		}
		stream = live.NewStream(scfg, a.sess, viewer, nil, a.logger)
	}

	if err := viewer.Start(ctx); err != nil {
		area.Stop()
		return err
	}
	if stream != nil {
		if err := stream.Start(ctx); err != nil {
			a.logger.Warn("snapshot stream failed to start", "error", err)
			stream = nil
		}
	}

	waitErr := waitForEnter(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if stream != nil {
		if err := stream.Stop(stopCtx); err != nil {
			a.logger.Warn("snapshot stream did not stop cleanly", "error", err)
		}
	}
	if err := viewer.Stop(stopCtx); err != nil {
		a.logger.Warn("game view did not stop cleanly", "error", err)
	}
	area.Stop()

	return waitErr
}

func (a *app) rebuy(ctx context.Context, code string) {
	username := a.sess.Username()
	if a.sess.IsSuperuser() {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("Player username").
			WithDefaultValue(username).
			Show()
		if name = strings.TrimSpace(name); name != "" {
			username = name
		}
	}

	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		return a.client.Rebuy(ctx, code, username)
	})
	if err != nil {
		pterm.Error.Println(requestFailure("Rebuy failed", err))
		return
	}
	pterm.Success.Printfln("Rebuy recorded for %s", username)
}

func (a *app) undoRebuy(ctx context.Context, code string) {
	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Player username").Show()
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		return a.client.UndoRebuy(ctx, code, name)
	})
	if err != nil {
		pterm.Error.Println(requestFailure("Undo rebuy failed", err))
		return
	}
	pterm.Success.Printfln("Last rebuy removed for %s", name)
}

// endGameScreen drives the settlement proposal. It returns true when the
// game was settled and the game view should close.
func (a *app) endGameScreen(ctx context.Context, code string) bool {
	var players []model.Player
	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		var err error
		players, _, err = a.client.GetPlayers(ctx, code)
		return err
	})
	if err != nil {
		pterm.Error.Println(requestFailure("Could not load players", err))
		return false
	}

	bal := settlement.NewBalancer(code, players)

	for ctx.Err() == nil {
		renderProposal(bal)

		options := make([]string, 0, len(players)+2)
		for _, p := range bal.Players() {
			options = append(options, "Set cash-out: "+p.Name)
		}
		if bal.CanSubmit() {
			options = append(options, settleSubmit)
		}
		options = append(options, settleCancel)

		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("Settle game " + code).
			Show()

		switch choice {
		case settleSubmit:
			if a.submitSettlement(ctx, bal) {
				return true
			}
		case settleCancel:
			discard, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText("Discard the proposal?").
				Show()
			if discard {
				return false
			}
		default:
			editPayout(bal, strings.TrimPrefix(choice, "Set cash-out: "))
		}
	}
	return false
}

// editPayout prompts for one player's cash-out. A rejected value leaves
// the proposal untouched.
func editPayout(bal *settlement.Balancer, name string) {
	idx := -1
	for i, p := range bal.Players() {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Cash-out for " + name).Show()
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	if err := bal.SetPayout(idx, raw); err != nil {
		var vErr *settlement.ValidationError
		if errors.As(err, &vErr) {
			pterm.Warning.Println(vErr.Message)
			return
		}
		pterm.Warning.Println(err.Error())
	}
}

func (a *app) submitSettlement(ctx context.Context, bal *settlement.Balancer) bool {
	spinner, _ := pterm.DefaultSpinner.Start("Submitting settlement...")

	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		return bal.Submit(ctx, a.client)
	})
	if err != nil {
		// The proposal survives a rejected submission so the operator
		// can correct and retry.
		spinner.Fail(requestFailure("Settlement rejected", err))
		return false
	}

	spinner.Success("Game settled, all money accounted for")
	return true
}
