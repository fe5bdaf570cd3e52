package settlement

import (
	"testing"

	"github.com/karski/cashboard/internal/model"
)

func TestTransfers(t *testing.T) {
	entries := []model.SettlementEntry{
		{Player: "anna", BuyIn: 10000, CashOut: 25000}, // +150.00
		{Player: "bart", BuyIn: 10000, CashOut: 0},     // -100.00
		{Player: "carl", BuyIn: 10000, CashOut: 5000},  // -50.00
	}

	got := Transfers(entries)
	want := []model.Transfer{
		{From: "bart", To: "anna", Amount: 10000},
		{From: "carl", To: "anna", Amount: 5000},
	}

	if len(got) != len(want) {
		t.Fatalf("Transfers returned %d transfers, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transfers[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTransfersSplitDebt(t *testing.T) {
	entries := []model.SettlementEntry{
		{Player: "anna", BuyIn: 10000, CashOut: 16000}, // +60.00
		{Player: "bart", BuyIn: 10000, CashOut: 14000}, // +40.00
		{Player: "carl", BuyIn: 10000, CashOut: 0},     // -100.00
	}

	got := Transfers(entries)
	want := []model.Transfer{
		{From: "carl", To: "anna", Amount: 6000},
		{From: "carl", To: "bart", Amount: 4000},
	}

	if len(got) != len(want) {
		t.Fatalf("Transfers returned %d transfers, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transfers[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTransfersConserveMoney(t *testing.T) {
	entries := []model.SettlementEntry{
		{Player: "a", BuyIn: 30000, CashOut: 41200},
		{Player: "b", BuyIn: 20000, CashOut: 100},
		{Player: "c", BuyIn: 10000, CashOut: 18700},
		{Player: "d", BuyIn: 40000, CashOut: 40000},
		{Player: "e", BuyIn: 25000, CashOut: 25000},
	}

	paid := map[string]model.Cents{}
	for _, tr := range Transfers(entries) {
		if tr.Amount <= 0 {
			t.Errorf("non-positive transfer: %+v", tr)
		}
		paid[tr.From] -= tr.Amount
		paid[tr.To] += tr.Amount
	}

	for _, e := range entries {
		if got, want := paid[e.Player], e.CashOut-e.BuyIn; got != want {
			t.Errorf("%s net transfers = %s, want %s", e.Player, got, want)
		}
	}
}

func TestTransfersAllEven(t *testing.T) {
	entries := []model.SettlementEntry{
		{Player: "anna", BuyIn: 10000, CashOut: 10000},
		{Player: "bart", BuyIn: 20000, CashOut: 20000},
	}
	if got := Transfers(entries); len(got) != 0 {
		t.Errorf("Transfers = %+v, want none for an even game", got)
	}
}
