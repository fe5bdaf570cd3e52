package model

import "time"

// -----------------------------------------------------------------------------
// Game Types
// -----------------------------------------------------------------------------

// Player represents a player at the table, as reported by the backend.
type Player struct {
	Name      string // Unique within a game
	Stack     Cents  // Money brought to the table (buy-ins so far)
	Payout    Cents  // Proposed cash-out, meaningful only when HasPayout
	HasPayout bool   // Whether a cash-out has been entered
}

// GameSnapshot is the table state returned by GET /api/games/{code}/data/.
// Snapshots are replaced wholesale on each poll, never merged.
type GameSnapshot struct {
	StartTime       time.Time // Server-supplied game start
	Blind           Cents     // Big blind; small blind is half
	MoneyOnTable    Cents     // Sum of all buy-ins
	NumberOfPlayers int
	AvgStack        Cents
}

// GameSettings is the static game configuration from
// GET /api/games/{code}/additional-data/.
type GameSettings struct {
	BuyIn            Cents
	Blind            Cents
	HowManyPLO       int  // PLO rounds per orbit
	HowOftenStandUp  int  // Stand-up game frequency
	IsPokerJackpot   bool
	IsWin27          bool
}

// PlayerStatus reports whether the current user belongs to a game and
// whether that game has already ended.
type PlayerStatus struct {
	InGame    bool
	GameEnded bool
}

// SettlementEntry is one player's line in an end-game submission.
type SettlementEntry struct {
	Player  string
	BuyIn   Cents
	CashOut Cents
}

// Transfer is a single who-pays-whom instruction derived from settlement
// balances.
type Transfer struct {
	From   string
	To     string
	Amount Cents
}

// -----------------------------------------------------------------------------
// User Types
// -----------------------------------------------------------------------------

// User holds the authenticated user's profile.
type User struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UserStats aggregates a user's lifetime results.
type UserStats struct {
	Earn         Cents
	GamesPlayed  int
	TotalHours   float64 // Total play time in hours
	HourlyRate   Cents
	HighestWin   Cents
	AverageStake Cents
	WinRate      float64 // Total cash-out / total buy-in
	TotalBuyIn   Cents
}

// Debt is a pending transfer between two players after a game.
type Debt struct {
	ID          int64
	From        string
	To          string
	Amount      Cents
	PhoneNumber string
	Incoming    bool // true when the current user is the receiver
}

// -----------------------------------------------------------------------------
// Chart Types
// -----------------------------------------------------------------------------

// PlotData is the per-game and cumulative profit history from
// GET /api/user/plot-data/. Parallel slices, chronological order.
type PlotData struct {
	Labels     []time.Time
	PerGame    []Cents
	Cumulative []Cents
}
