package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// amount is a wire money value. The backend serializes decimals
// inconsistently: aggregates arrive as JSON numbers, decimal columns as
// strings ("12.50"). Both decode to a float64.
type amount float64

func (a *amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse amount %q: %w", s, err)
		}
		*a = amount(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = amount(f)
	return nil
}

// playersResponse from GET /api/games/{code}/players/
type playersResponse struct {
	Players []apiPlayer `json:"players"`
	BuyIn   amount      `json:"buy_in"`
}

type apiPlayer struct {
	Name   string  `json:"name"`
	Stack  amount  `json:"stack"`
	Payout *amount `json:"payout,omitempty"`
}

// gameDataResponse from GET /api/games/{code}/data/
type gameDataResponse struct {
	Blinds          amount `json:"blinds"`
	GameStartTime   string `json:"game_start_time"`
	MoneyOnTable    amount `json:"money_on_table"`
	NumberOfPlayers int    `json:"number_of_players"`
	AvgStack        amount `json:"avg_stack"`
}

// additionalDataResponse from GET /api/games/{code}/additional-data/
type additionalDataResponse struct {
	BuyIn           amount `json:"buy_in"`
	Blinds          amount `json:"blinds"`
	HowManyPLO      int    `json:"how_many_plo"`
	HowOftenStandUp int    `json:"how_often_stand_up"`
	IsPokerJackpot  bool   `json:"is_poker_jackpot"`
	IsWin27         bool   `json:"is_win_27"`
}

// checkPlayerResponse from GET /api/games/{code}/check-player/
type checkPlayerResponse struct {
	IsInGame    bool `json:"is_in_game"`
	IsGameEnded bool `json:"is_game_ended"`
}

// endGameRequest for POST /api/games/{code}/end-game/
type endGameRequest struct {
	Players []endGamePlayer `json:"players"`
}

type endGamePlayer struct {
	Player  string  `json:"player"`
	BuyIn   float64 `json:"buy_in"`
	CashOut float64 `json:"cash_out"`
}

// joinGameRequest for POST /api/games/join/
type joinGameRequest struct {
	RoomCode string `json:"room_code"`
}

// createGameRequest for POST /api/games/create/
type createGameRequest struct {
	BuyIn           int     `json:"buy_in"`
	Blind           float64 `json:"blind"`
	HowManyPLO      int     `json:"how_many_plo"`
	HowOftenStandUp int     `json:"how_often_stand_up"`
	IsPokerJackpot  bool    `json:"is_poker_jackpot"`
	IsWin27         bool    `json:"is_win_27"`
}

// createGameResponse from POST /api/games/create/
type createGameResponse struct {
	Code string `json:"code"`
}

// playerActionRequest for POST /api/games/{code}/action/
type playerActionRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
}

// userResponse from GET /api/user/
type userResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// superuserResponse from GET /api/check-superuser/
type superuserResponse struct {
	IsSuperuser bool `json:"is_superuser"`
}

// userStatsResponse from GET /api/user/stats/
type userStatsResponse struct {
	Earn          amount  `json:"earn"`
	GamesPlayed   int     `json:"games_played"`
	TotalPlayTime float64 `json:"total_play_time"`
	HourlyRate    amount  `json:"hourly_rate"`
	HighestWin    amount  `json:"highest_win"`
	AverageStake  amount  `json:"average_stake"`
	WinRate       float64 `json:"win_rate"`
	TotalBuyIn    amount  `json:"total_buyin"`
}

// plotDataResponse from GET /api/user/plot-data/
type plotDataResponse struct {
	Labels            []string `json:"labels"`
	SingleGameResults []amount `json:"single_game_results"`
	CumulativeResults []amount `json:"cumulative_results"`
}

// apiDebt is one element of the GET /api/debts/ response.
type apiDebt struct {
	ID          int64  `json:"id"`
	To          string `json:"to"`
	From        string `json:"from"`
	Money       amount `json:"money"`
	PhoneNumber string `json:"phone_number"`
	Type        string `json:"type"` // "outgoing" or "incoming"
}

// tokenRequest for POST /api/token/
type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse from POST /api/token/
type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// refreshRequest for POST /api/token/refresh/
type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// refreshResponse from POST /api/token/refresh/
type refreshResponse struct {
	Access string `json:"access"`
}
