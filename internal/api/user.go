package api

import (
	"context"
	"fmt"

	"github.com/karski/cashboard/internal/model"
)

// GetUser fetches the authenticated user's profile.
func (c *Client) GetUser(ctx context.Context) (*model.User, error) {
	var resp userResponse
	if err := c.get(ctx, "/api/user/", nil, &resp); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &model.User{
		Username:  resp.Username,
		Email:     resp.Email,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
	}, nil
}

// CheckSuperuser reports whether the authenticated user is a superuser.
func (c *Client) CheckSuperuser(ctx context.Context) (bool, error) {
	var resp superuserResponse
	if err := c.get(ctx, "/api/check-superuser/", nil, &resp); err != nil {
		return false, fmt.Errorf("check superuser: %w", err)
	}
	return resp.IsSuperuser, nil
}

// GetUserStats fetches the user's lifetime statistics.
func (c *Client) GetUserStats(ctx context.Context) (*model.UserStats, error) {
	var resp userStatsResponse
	if err := c.get(ctx, "/api/user/stats/", nil, &resp); err != nil {
		return nil, fmt.Errorf("get user stats: %w", err)
	}
	return toStats(&resp), nil
}

// GetPlotData fetches the user's per-game and cumulative profit history.
func (c *Client) GetPlotData(ctx context.Context) (*model.PlotData, error) {
	var resp plotDataResponse
	if err := c.get(ctx, "/api/user/plot-data/", nil, &resp); err != nil {
		return nil, fmt.Errorf("get plot data: %w", err)
	}
	pd, err := toPlotData(&resp)
	if err != nil {
		return nil, fmt.Errorf("get plot data: %w", err)
	}
	return pd, nil
}
