package settlement

import "github.com/karski/cashboard/internal/model"

// Transfers derives the who-pays-whom list from settled entries: players
// who cashed out less than they bought in pay those who cashed out more.
// Greedy pairing in input order, matching what the backend records as
// debts, so the preview shown before submission agrees with the result.
// Entries must balance; a non-zero total leaves a remainder unpaired.
func Transfers(entries []model.SettlementEntry) []model.Transfer {
	type balance struct {
		name   string
		amount model.Cents
	}

	var debtors, creditors []balance
	for _, e := range entries {
		diff := e.CashOut - e.BuyIn
		switch {
		case diff < 0:
			debtors = append(debtors, balance{name: e.Player, amount: -diff})
		case diff > 0:
			creditors = append(creditors, balance{name: e.Player, amount: diff})
		}
	}

	var transfers []model.Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		d, c := &debtors[0], &creditors[0]

		amount := d.amount
		if c.amount < amount {
			amount = c.amount
		}

		transfers = append(transfers, model.Transfer{
			From:   d.name,
			To:     c.name,
			Amount: amount,
		})

		d.amount -= amount
		c.amount -= amount
		if d.amount == 0 {
			debtors = debtors[1:]
		}
		if c.amount == 0 {
			creditors = creditors[1:]
		}
	}

	return transfers
}
