package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/karski/cashboard/internal/api"
	"github.com/karski/cashboard/internal/config"
	"github.com/karski/cashboard/internal/live"
	"github.com/karski/cashboard/internal/model"
	"github.com/karski/cashboard/internal/session"
)

const (
	menuJoin   = "Join a game"
	menuCreate = "Create a game"
	menuStats  = "My stats"
	menuDebts  = "Debts"
	menuLogout = "Log out"
	menuQuit   = "Quit"
)

type app struct {
	cfg    *config.ClientConfig
	client *api.Client
	sess   *session.Session
	logger *slog.Logger
	chimer live.Chimer
}

func newApp(cfg *config.ClientConfig, client *api.Client, sess *session.Session, logger *slog.Logger) *app {
	return &app{
		cfg:    cfg,
		client: client,
		sess:   sess,
		logger: logger,
		chimer: newChimer(cfg.Sound, logger),
	}
}

// run drives the screen loop: login until authenticated, then the home
// menu until the user quits or the context is cancelled.
func (a *app) run(ctx context.Context) error {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Cash", pterm.FgGreen.ToStyle()),
		putils.LettersFromStringWithStyle("Board", pterm.FgDarkGray.ToStyle()),
	).Render()

	for ctx.Err() == nil {
		if !a.sess.Authenticated() {
			if err := a.login(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			continue
		}

		quit, err := a.home(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

func (a *app) login(ctx context.Context) error {
	for ctx.Err() == nil {
		username, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Username").Show()
		password, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Password").WithMask("*").Show()
		pterm.Println()

		spinner, _ := pterm.DefaultSpinner.Start("Signing in...")
		pair, err := a.client.ObtainToken(ctx, strings.TrimSpace(username), password)
		if err != nil {
			spinner.Fail(loginFailure(err))
			continue
		}

		a.sess.Begin(strings.TrimSpace(username), pair.Access, pair.Refresh)

		superuser, err := a.client.CheckSuperuser(ctx)
		if err != nil {
			a.logger.Warn("superuser check failed", "error", err)
		}
		a.sess.SetSuperuser(superuser)

		spinner.Success(pterm.Sprintf("Signed in as %s", a.sess.Username()))
		return nil
	}
	return ctx.Err()
}

func (a *app) home(ctx context.Context) (quit bool, err error) {
	options := []string{menuJoin}
	if a.sess.IsSuperuser() {
		options = append(options, menuCreate)
	}
	options = append(options, menuStats, menuDebts, menuLogout, menuQuit)

	choice, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("What next?").
		Show()

	switch choice {
	case menuJoin:
		a.joinGame(ctx)
	case menuCreate:
		a.createGame(ctx)
	case menuStats:
		a.statsScreen(ctx)
	case menuDebts:
		a.debtsScreen(ctx)
	case menuLogout:
		a.sess.End()
		pterm.Info.Println("Logged out")
	case menuQuit:
		return true, nil
	}
	return false, ctx.Err()
}

func (a *app) joinGame(ctx context.Context) {
	code, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Room code").Show()
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return
	}

	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		return a.client.JoinGame(ctx, code)
	})
	if err != nil {
		pterm.Error.Println(requestFailure("Could not join the game", err))
		return
	}

	if status, err := a.client.CheckPlayer(ctx, code); err == nil && status.GameEnded {
		pterm.Info.Println("That game has already ended")
		return
	}

	a.gameScreen(ctx, code)
}

func (a *app) createGame(ctx context.Context) {
	buyIn, ok := promptAmount("Buy-in amount")
	if !ok {
		return
	}
	blind, ok := promptAmount("Big blind")
	if !ok {
		return
	}
	plo, ok := promptInt("PLO rounds per orbit", 0)
	if !ok {
		return
	}
	standUp, ok := promptInt("Stand-up game frequency", 0)
	if !ok {
		return
	}
	jackpot, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Poker jackpot?").Show()
	win27, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("2-7 game?").Show()

	var code string
	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		var err error
		code, err = a.client.CreateGame(ctx, api.CreateGameOptions{
			BuyIn:           buyIn,
			Blind:           blind,
			HowManyPLO:      plo,
			HowOftenStandUp: standUp,
			IsPokerJackpot:  jackpot,
			IsWin27:         win27,
		})
		return err
	})
	if err != nil {
		pterm.Error.Println(requestFailure("Could not create the game", err))
		return
	}

	pterm.Success.Printfln("Game created, room code %s", code)
	a.gameScreen(ctx, code)
}

// withAuthRetry retries fn once after rotating the access token when the
// backend reports it expired. A failed rotation ends the session, which
// sends the user back to the login screen.
func (a *app) withAuthRetry(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)

	var serverErr *api.ServerError
	if !errors.As(err, &serverErr) || serverErr.Status != http.StatusUnauthorized {
		return err
	}

	if refreshErr := a.sess.Refresh(ctx, a.client); refreshErr != nil {
		a.logger.Warn("token refresh failed", "error", refreshErr)
		a.sess.End()
		return err
	}
	return fn(ctx)
}

// waitForEnter blocks until the user presses enter or ctx is cancelled.
func waitForEnter(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				break
			}
			if n > 0 && buf[0] == '\n' {
				break
			}
		}
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func promptAmount(prompt string) (model.Cents, bool) {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, false
		}
		amount, err := model.ParseAmount(raw)
		if err != nil {
			pterm.Warning.Println("Enter a non-negative amount, e.g. 200 or 12.50")
			continue
		}
		return amount, true
	}
}

func promptInt(prompt string, def int) (int, bool) {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			WithDefaultValue(strconv.Itoa(def)).
			Show()
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return def, true
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			pterm.Warning.Println("Enter a non-negative whole number")
			continue
		}
		return n, true
	}
}

func loginFailure(err error) string {
	var serverErr *api.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.Status == http.StatusUnauthorized {
			return "Invalid username or password"
		}
		if serverErr.Detail != "" {
			return serverErr.Detail
		}
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return "Cannot reach the server, try again"
	}
	return err.Error()
}

// requestFailure surfaces the backend's detail message when one exists.
func requestFailure(prefix string, err error) string {
	var serverErr *api.ServerError
	if errors.As(err, &serverErr) && serverErr.Detail != "" {
		return prefix + ": " + serverErr.Detail
	}
	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return prefix + ": server unreachable"
	}
	return prefix + ": " + err.Error()
}
