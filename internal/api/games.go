package api

import (
	"context"
	"fmt"

	"github.com/karski/cashboard/internal/model"
)

// GetPlayers fetches the players of a game with their current stacks.
// The second return value is the game's configured buy-in.
func (c *Client) GetPlayers(ctx context.Context, code string) ([]model.Player, model.Cents, error) {
	var resp playersResponse
	if err := c.get(ctx, "/api/games/"+code+"/players/", nil, &resp); err != nil {
		return nil, 0, fmt.Errorf("get players: %w", err)
	}
	return toPlayers(&resp), model.CentsFromFloat(float64(resp.BuyIn)), nil
}

// GetGameData fetches the live table snapshot. Responses missing the start
// time or a positive blind are rejected as a whole.
func (c *Client) GetGameData(ctx context.Context, code string) (*model.GameSnapshot, error) {
	var resp gameDataResponse
	if err := c.get(ctx, "/api/games/"+code+"/data/", nil, &resp); err != nil {
		return nil, fmt.Errorf("get game data: %w", err)
	}
	snap, err := toSnapshot(&resp)
	if err != nil {
		return nil, fmt.Errorf("get game data: %w", err)
	}
	return snap, nil
}

// GetGameSettings fetches the static game configuration.
func (c *Client) GetGameSettings(ctx context.Context, code string) (*model.GameSettings, error) {
	var resp additionalDataResponse
	if err := c.get(ctx, "/api/games/"+code+"/additional-data/", nil, &resp); err != nil {
		return nil, fmt.Errorf("get game settings: %w", err)
	}
	return &model.GameSettings{
		BuyIn:           model.CentsFromFloat(float64(resp.BuyIn)),
		Blind:           model.CentsFromFloat(float64(resp.Blinds)),
		HowManyPLO:      resp.HowManyPLO,
		HowOftenStandUp: resp.HowOftenStandUp,
		IsPokerJackpot:  resp.IsPokerJackpot,
		IsWin27:         resp.IsWin27,
	}, nil
}

// CheckPlayer reports whether the current user belongs to the game and
// whether it has ended.
func (c *Client) CheckPlayer(ctx context.Context, code string) (*model.PlayerStatus, error) {
	var resp checkPlayerResponse
	if err := c.get(ctx, "/api/games/"+code+"/check-player/", nil, &resp); err != nil {
		return nil, fmt.Errorf("check player: %w", err)
	}
	return &model.PlayerStatus{InGame: resp.IsInGame, GameEnded: resp.IsGameEnded}, nil
}

// JoinGame joins the current user to a game by room code.
func (c *Client) JoinGame(ctx context.Context, roomCode string) error {
	if err := c.post(ctx, "/api/games/join/", joinGameRequest{RoomCode: roomCode}, nil); err != nil {
		return fmt.Errorf("join game: %w", err)
	}
	return nil
}

// CreateGameOptions configures a new game.
type CreateGameOptions struct {
	BuyIn           model.Cents
	Blind           model.Cents
	HowManyPLO      int
	HowOftenStandUp int
	IsPokerJackpot  bool
	IsWin27         bool
}

// CreateGame creates a new game and returns its room code. Requires a
// superuser session.
func (c *Client) CreateGame(ctx context.Context, opts CreateGameOptions) (string, error) {
	req := createGameRequest{
		BuyIn:           int(opts.BuyIn / 100),
		Blind:           opts.Blind.Float(),
		HowManyPLO:      opts.HowManyPLO,
		HowOftenStandUp: opts.HowOftenStandUp,
		IsPokerJackpot:  opts.IsPokerJackpot,
		IsWin27:         opts.IsWin27,
	}

	var resp createGameResponse
	if err := c.post(ctx, "/api/games/create/", req, &resp); err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	return resp.Code, nil
}

// Rebuy records another buy-in for the named player.
func (c *Client) Rebuy(ctx context.Context, code, username string) error {
	req := playerActionRequest{Action: "rebuy", Username: username}
	if err := c.post(ctx, "/api/games/"+code+"/action/", req, nil); err != nil {
		return fmt.Errorf("rebuy: %w", err)
	}
	return nil
}

// UndoRebuy removes the named player's most recent buy-in. Requires a
// superuser session.
func (c *Client) UndoRebuy(ctx context.Context, code, username string) error {
	req := playerActionRequest{Action: "back", Username: username}
	if err := c.post(ctx, "/api/games/"+code+"/action/", req, nil); err != nil {
		return fmt.Errorf("undo rebuy: %w", err)
	}
	return nil
}

// EndGame submits the final settlement. The backend records per-player
// statistics and derives debts; it responds non-2xx when the submission is
// rejected, with the reason in the error's Detail.
func (c *Client) EndGame(ctx context.Context, code string, entries []model.SettlementEntry) error {
	req := endGameRequest{Players: make([]endGamePlayer, 0, len(entries))}
	for _, e := range entries {
		req.Players = append(req.Players, endGamePlayer{
			Player:  e.Player,
			BuyIn:   e.BuyIn.Float(),
			CashOut: e.CashOut.Float(),
		})
	}

	if err := c.post(ctx, "/api/games/"+code+"/end-game/", req, nil); err != nil {
		return fmt.Errorf("end game: %w", err)
	}
	return nil
}
