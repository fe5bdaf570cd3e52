// Package settlement implements end-of-game accounting: cash-outs must
// exactly balance the money that entered the table before a game can be
// closed.
package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/karski/cashboard/internal/model"
)

// EndGamePoster submits a finished settlement to the backend.
type EndGamePoster interface {
	EndGame(ctx context.Context, code string, entries []model.SettlementEntry) error
}

// ValidationError is a rejected payout edit. The balancer's state is
// unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ErrUnbalanced is returned by Submit while money is still unaccounted for.
var ErrUnbalanced = errors.New("cash-outs do not balance buy-ins")

// ErrNoPlayers is returned by Submit for an empty table.
var ErrNoPlayers = errors.New("no players to settle")

// Balancer tracks proposed cash-outs against the money on the table.
// Unset payouts count as zero; submission unlocks only when the remainder
// is exactly zero. Not safe for concurrent use: it is owned by the single
// view editing it.
type Balancer struct {
	code         string
	players      []model.Player
	initialTotal model.Cents
}

// NewBalancer creates a balancer for the given game and player list. The
// players' stacks are the authoritative buy-in totals; payouts already
// present (a re-opened form) are kept.
func NewBalancer(code string, players []model.Player) *Balancer {
	b := &Balancer{
		code:    code,
		players: make([]model.Player, len(players)),
	}
	copy(b.players, players)
	for _, p := range players {
		b.initialTotal += p.Stack
	}
	return b
}

// Players returns the current proposal state.
func (b *Balancer) Players() []model.Player {
	out := make([]model.Player, len(b.players))
	copy(out, b.players)
	return out
}

// InitialTotal is the sum of all buy-ins.
func (b *Balancer) InitialTotal() model.Cents {
	return b.initialTotal
}

// Remaining is the money still unaccounted for: buy-ins minus entered
// payouts. Zero means every cent on the table has a destination.
func (b *Balancer) Remaining() model.Cents {
	remaining := b.initialTotal
	for _, p := range b.players {
		if p.HasPayout {
			remaining -= p.Payout
		}
	}
	return remaining
}

// SetPayout parses raw as a non-negative amount and records it as player
// i's cash-out. Invalid input is rejected with *ValidationError and no
// state change.
func (b *Balancer) SetPayout(i int, raw string) error {
	if i < 0 || i >= len(b.players) {
		return &ValidationError{Field: "player", Message: fmt.Sprintf("no player at index %d", i)}
	}

	amount, err := model.ParseAmount(raw)
	if err != nil {
		return &ValidationError{Field: b.players[i].Name, Message: err.Error()}
	}

	b.players[i].Payout = amount
	b.players[i].HasPayout = true
	return nil
}

// ClearPayout unsets player i's cash-out.
func (b *Balancer) ClearPayout(i int) error {
	if i < 0 || i >= len(b.players) {
		return &ValidationError{Field: "player", Message: fmt.Sprintf("no player at index %d", i)}
	}
	b.players[i].Payout = 0
	b.players[i].HasPayout = false
	return nil
}

// CanSubmit reports whether the proposal balances exactly and the table is
// non-empty.
func (b *Balancer) CanSubmit() bool {
	return len(b.players) > 0 && b.Remaining() == 0
}

// Entries packages the proposal for submission. Unset payouts become
// explicit zero cash-outs.
func (b *Balancer) Entries() []model.SettlementEntry {
	entries := make([]model.SettlementEntry, 0, len(b.players))
	for _, p := range b.players {
		entries = append(entries, model.SettlementEntry{
			Player:  p.Name,
			BuyIn:   p.Stack,
			CashOut: p.Payout,
		})
	}
	return entries
}

// Submit sends the balanced proposal to the backend. On failure the
// proposal is preserved so the operator can correct and retry.
func (b *Balancer) Submit(ctx context.Context, poster EndGamePoster) error {
	if len(b.players) == 0 {
		return ErrNoPlayers
	}
	if remaining := b.Remaining(); remaining != 0 {
		return fmt.Errorf("%w: %s unaccounted", ErrUnbalanced, remaining)
	}

	if err := poster.EndGame(ctx, b.code, b.Entries()); err != nil {
		return fmt.Errorf("submit settlement: %w", err)
	}
	return nil
}
