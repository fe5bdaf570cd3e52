package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/karski/cashboard/internal/model"
)

// ParseSnapshot decodes a raw game-data payload, applying the same
// validation as GetGameData. Used by the push-based stream, whose messages
// carry the same shape as the data endpoint.
func ParseSnapshot(data []byte) (*model.GameSnapshot, error) {
	var resp gameDataResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return toSnapshot(&resp)
}

// ErrInvalidSnapshot is returned when a game-data response is missing
// required fields. The caller must treat it as a fetch failure and keep
// the previous snapshot; partial updates are never produced.
var ErrInvalidSnapshot = errors.New("invalid game snapshot")

// parseTimestamp parses the backend's ISO 8601 timestamps.
func parseTimestamp(iso string) (time.Time, error) {
	if iso == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		// Django omits the offset when USE_TZ is off.
		t, err = time.Parse("2006-01-02T15:04:05.999999", iso)
		if err != nil {
			return time.Time{}, err
		}
	}

	return t, nil
}

// toSnapshot validates and converts a game-data response.
func toSnapshot(resp *gameDataResponse) (*model.GameSnapshot, error) {
	start, err := parseTimestamp(resp.GameStartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: game_start_time: %v", ErrInvalidSnapshot, err)
	}
	if resp.Blinds <= 0 {
		return nil, fmt.Errorf("%w: blinds must be positive, got %v", ErrInvalidSnapshot, float64(resp.Blinds))
	}

	return &model.GameSnapshot{
		StartTime:       start,
		Blind:           model.CentsFromFloat(float64(resp.Blinds)),
		MoneyOnTable:    model.CentsFromFloat(float64(resp.MoneyOnTable)),
		NumberOfPlayers: resp.NumberOfPlayers,
		AvgStack:        model.CentsFromFloat(float64(resp.AvgStack)),
	}, nil
}

// toPlayers converts the players list. Payouts the server does not report
// are left unset.
func toPlayers(resp *playersResponse) []model.Player {
	players := make([]model.Player, 0, len(resp.Players))
	for _, p := range resp.Players {
		player := model.Player{
			Name:  p.Name,
			Stack: model.CentsFromFloat(float64(p.Stack)),
		}
		if p.Payout != nil {
			player.Payout = model.CentsFromFloat(float64(*p.Payout))
			player.HasPayout = true
		}
		players = append(players, player)
	}
	return players
}

// toDebts converts the debts list.
func toDebts(resp []apiDebt) []model.Debt {
	debts := make([]model.Debt, 0, len(resp))
	for _, d := range resp {
		debts = append(debts, model.Debt{
			ID:          d.ID,
			From:        d.From,
			To:          d.To,
			Amount:      model.CentsFromFloat(float64(d.Money)),
			PhoneNumber: d.PhoneNumber,
			Incoming:    d.Type == "incoming",
		})
	}
	return debts
}

// toStats converts the user-stats response.
func toStats(resp *userStatsResponse) *model.UserStats {
	return &model.UserStats{
		Earn:         model.CentsFromFloat(float64(resp.Earn)),
		GamesPlayed:  resp.GamesPlayed,
		TotalHours:   resp.TotalPlayTime,
		HourlyRate:   model.CentsFromFloat(float64(resp.HourlyRate)),
		HighestWin:   model.CentsFromFloat(float64(resp.HighestWin)),
		AverageStake: model.CentsFromFloat(float64(resp.AverageStake)),
		WinRate:      resp.WinRate,
		TotalBuyIn:   model.CentsFromFloat(float64(resp.TotalBuyIn)),
	}
}

// toPlotData converts the plot-data response. Labels are calendar dates.
func toPlotData(resp *plotDataResponse) (*model.PlotData, error) {
	if len(resp.SingleGameResults) != len(resp.Labels) || len(resp.CumulativeResults) != len(resp.Labels) {
		return nil, fmt.Errorf("plot data length mismatch: %d labels, %d results, %d cumulative",
			len(resp.Labels), len(resp.SingleGameResults), len(resp.CumulativeResults))
	}

	pd := &model.PlotData{
		Labels:     make([]time.Time, 0, len(resp.Labels)),
		PerGame:    make([]model.Cents, 0, len(resp.Labels)),
		Cumulative: make([]model.Cents, 0, len(resp.Labels)),
	}

	for i, label := range resp.Labels {
		t, err := time.Parse("2006-01-02", label)
		if err != nil {
			return nil, fmt.Errorf("parse plot label %q: %w", label, err)
		}
		pd.Labels = append(pd.Labels, t)
		pd.PerGame = append(pd.PerGame, model.CentsFromFloat(float64(resp.SingleGameResults[i])))
		pd.Cumulative = append(pd.Cumulative, model.CentsFromFloat(float64(resp.CumulativeResults[i])))
	}

	return pd, nil
}
