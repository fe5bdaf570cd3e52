package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/karski/cashboard/internal/chart"
	"github.com/karski/cashboard/internal/model"
	"github.com/karski/cashboard/internal/settlement"
)

func metricPanel(title, value string) pterm.Panel {
	box := pterm.DefaultBox.WithLeftPadding(3).WithRightPadding(3).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: box.WithTitle(title).WithTitleTopCenter().Sprint(value)}
}

// renderGame builds the live view: the game clock on top, table metrics
// below. Metrics show placeholders until the first snapshot lands.
func renderGame(code, display string, snap *model.GameSnapshot) string {
	clockBox := pterm.DefaultBox.WithLeftPadding(8).WithRightPadding(8).WithTopPadding(1).WithBottomPadding(1)
	clockPanel := pterm.Panel{
		Data: clockBox.WithTitle("Game " + code).WithTitleTopCenter().Sprint(pterm.LightGreen(display)),
	}

	money, players, avg, blind := "-", "-", "-", "-"
	if snap != nil {
		money = snap.MoneyOnTable.String()
		players = strconv.Itoa(snap.NumberOfPlayers)
		avg = snap.AvgStack.String()
		blind = snap.Blind.String()
	}

	out, _ := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{clockPanel},
		{
			metricPanel("Money on table", money),
			metricPanel("Players", players),
			metricPanel("Avg stack", avg),
			metricPanel("Blind", blind),
		},
	}).Srender()
	return out
}

func renderSettings(code string, s *model.GameSettings) {
	if s == nil {
		pterm.Warning.Println("Table info is not available")
		return
	}
	pterm.DefaultTable.WithData(pterm.TableData{
		{"Room code", code},
		{"Buy-in", s.BuyIn.String()},
		{"Big blind", s.Blind.String()},
		{"PLO rounds per orbit", strconv.Itoa(s.HowManyPLO)},
		{"Stand-up frequency", strconv.Itoa(s.HowOftenStandUp)},
		{"Poker jackpot", yesNo(s.IsPokerJackpot)},
		{"2-7 game", yesNo(s.IsWin27)},
	}).Render()
}

// renderProposal shows the current settlement state. The transfers
// preview appears only once every cent is assigned.
func renderProposal(bal *settlement.Balancer) {
	data := pterm.TableData{{"Player", "Buy-in", "Cash-out"}}
	for _, p := range bal.Players() {
		payout := "-"
		if p.HasPayout {
			payout = p.Payout.String()
		}
		data = append(data, []string{p.Name, p.Stack.String(), payout})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if bal.CanSubmit() {
		pterm.Success.Println("All money accounted for")
		renderTransfers(settlement.Transfers(bal.Entries()))
		return
	}
	pterm.Warning.Printfln("Remaining to assign: %s", bal.Remaining())
}

func renderTransfers(transfers []model.Transfer) {
	if len(transfers) == 0 {
		return
	}
	data := pterm.TableData{{"From", "To", "Amount"}}
	for _, t := range transfers {
		data = append(data, []string{t.From, t.To, t.Amount.String()})
	}
	pterm.Println("Settlement transfers:")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func renderStats(username string, s *model.UserStats) {
	pterm.DefaultSection.Println("Stats for " + username)
	pterm.DefaultTable.WithData(pterm.TableData{
		{"Total profit", s.Earn.String()},
		{"Games played", strconv.Itoa(s.GamesPlayed)},
		{"Hours at the table", fmt.Sprintf("%.1f", s.TotalHours)},
		{"Hourly rate", s.HourlyRate.String()},
		{"Highest win", s.HighestWin.String()},
		{"Average stake", s.AverageStake.String()},
		{"Win rate", fmt.Sprintf("%.2f", s.WinRate)},
		{"Total buy-in", s.TotalBuyIn.String()},
	}).Render()
}

func renderDebts(debts []model.Debt) {
	if len(debts) == 0 {
		pterm.Info.Println("No open debts")
		return
	}
	data := pterm.TableData{{"", "From", "To", "Amount", "Phone"}}
	for _, d := range debts {
		direction := "owes you"
		if !d.Incoming {
			direction = "you owe"
		}
		data = append(data, []string{direction, d.From, d.To, d.Amount.String(), d.PhoneNumber})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

const chartWidth = 30

// renderProfitChart draws the cumulative profit series as horizontal
// bars around a zero axis, green above and red below. Splitting the
// series at its zero crossings marks the exact moment the balance
// changed sign.
func renderProfitChart(plot *model.PlotData) {
	values := make([]chart.Value, len(plot.Cumulative))
	var max float64
	for i, c := range plot.Cumulative {
		values[i] = chart.Number(c.Float())
		if abs := math.Abs(c.Float()); abs > max {
			max = abs
		}
	}
	if max == 0 {
		max = 1
	}

	split := chart.SplitAtZero(plot.Labels, values)

	pterm.DefaultSection.Println("Cumulative profit")

	var b strings.Builder
	for i, label := range split.Labels {
		var line string
		switch {
		case split.PositiveRadii[i] == chart.PointRadius:
			v := split.Positive[i].Float64
			n := int(v / max * chartWidth)
			line = strings.Repeat(" ", chartWidth) + "|" +
				pterm.LightGreen(strings.Repeat("█", n)) +
				fmt.Sprintf(" %.2f", v)
		case split.NegativeRadii[i] == chart.PointRadius:
			v := split.Negative[i].Float64
			n := int(-v / max * chartWidth)
			line = strings.Repeat(" ", chartWidth-n) +
				pterm.LightRed(strings.Repeat("█", n)) + "|" +
				fmt.Sprintf(" %.2f", v)
		case split.Positive[i].Valid && split.Negative[i].Valid:
			// synthetic zero crossing
			line = strings.Repeat(" ", chartWidth) + "+"
		default:
			line = strings.Repeat(" ", chartWidth) + "·"
		}
		b.WriteString(label.Format("2006-01-02") + " " + line + "\n")
	}
	pterm.Print(b.String())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
