package main

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/karski/cashboard/internal/model"
)

const debtsBack = "Back"

func (a *app) statsScreen(ctx context.Context) {
	spinner, _ := pterm.DefaultSpinner.Start("Loading stats...")

	var stats *model.UserStats
	err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		var err error
		stats, err = a.client.GetUserStats(ctx)
		return err
	})
	if err != nil {
		spinner.Fail(requestFailure("Could not load stats", err))
		return
	}

	var plot *model.PlotData
	if err := a.withAuthRetry(ctx, func(ctx context.Context) error {
		var err error
		plot, err = a.client.GetPlotData(ctx)
		return err
	}); err != nil {
		a.logger.Warn("could not load plot data", "error", err)
	}
	spinner.Stop()

	renderStats(a.sess.Username(), stats)
	if plot != nil && len(plot.Labels) > 0 {
		renderProfitChart(plot)
	}
}

func (a *app) debtsScreen(ctx context.Context) {
	for ctx.Err() == nil {
		var debts []model.Debt
		err := a.withAuthRetry(ctx, func(ctx context.Context) error {
			var err error
			debts, err = a.client.ListDebts(ctx)
			return err
		})
		if err != nil {
			pterm.Error.Println(requestFailure("Could not load debts", err))
			return
		}

		renderDebts(debts)
		if len(debts) == 0 {
			return
		}

		options := make([]string, 0, len(debts)+1)
		byOption := make(map[string]model.Debt, len(debts))
		for _, d := range debts {
			var label string
			if d.Incoming {
				label = pterm.Sprintf("Accept %s from %s", d.Amount, d.From)
			} else {
				label = pterm.Sprintf("Mark %s to %s as sent", d.Amount, d.To)
			}
			options = append(options, label)
			byOption[label] = d
		}
		options = append(options, debtsBack)

		choice, _ := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("Debts").
			Show()
		if choice == debtsBack {
			return
		}

		debt := byOption[choice]
		err = a.withAuthRetry(ctx, func(ctx context.Context) error {
			if debt.Incoming {
				return a.client.AcceptDebt(ctx, debt.ID)
			}
			return a.client.SendDebt(ctx, debt.ID)
		})
		if err != nil {
			pterm.Error.Println(requestFailure("Could not update the debt", err))
			continue
		}
		pterm.Success.Println("Debt updated")
	}
}
