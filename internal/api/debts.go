package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/karski/cashboard/internal/model"
)

// ListDebts fetches the user's pending debts, outgoing and incoming.
func (c *Client) ListDebts(ctx context.Context) ([]model.Debt, error) {
	var resp []apiDebt
	if err := c.get(ctx, "/api/debts/", nil, &resp); err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	return toDebts(resp), nil
}

// SendDebt marks an outgoing debt as paid.
func (c *Client) SendDebt(ctx context.Context, id int64) error {
	if err := c.post(ctx, "/api/debts/send/"+strconv.FormatInt(id, 10)+"/", nil, nil); err != nil {
		return fmt.Errorf("send debt: %w", err)
	}
	return nil
}

// AcceptDebt confirms receipt of an incoming debt.
func (c *Client) AcceptDebt(ctx context.Context, id int64) error {
	if err := c.post(ctx, "/api/debts/accept/"+strconv.FormatInt(id, 10)+"/", nil, nil); err != nil {
		return fmt.Errorf("accept debt: %w", err)
	}
	return nil
}
