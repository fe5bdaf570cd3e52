package api

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-11-02T18:30:00Z", time.Date(2024, 11, 2, 18, 30, 0, 0, time.UTC)},
		{"2024-11-02T18:30:00.123456Z", time.Date(2024, 11, 2, 18, 30, 0, 123456000, time.UTC)},
		{"2024-11-02T18:30:00+01:00", time.Date(2024, 11, 2, 18, 30, 0, 0, time.FixedZone("", 3600))},
		{"2024-11-02T18:30:00.500000", time.Date(2024, 11, 2, 18, 30, 0, 500000000, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.in)
		if err != nil {
			t.Errorf("parseTimestamp(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseTimestamp(""); err == nil {
		t.Error("parseTimestamp(\"\") succeeded, want error")
	}
	if _, err := parseTimestamp("not-a-time"); err == nil {
		t.Error("parseTimestamp(\"not-a-time\") succeeded, want error")
	}
}

func TestToSnapshotValidation(t *testing.T) {
	tests := []struct {
		name string
		resp gameDataResponse
	}{
		{"missing start time", gameDataResponse{Blinds: 1}},
		{"zero blind", gameDataResponse{GameStartTime: "2024-11-02T18:30:00Z", Blinds: 0}},
		{"negative blind", gameDataResponse{GameStartTime: "2024-11-02T18:30:00Z", Blinds: -1}},
		{"garbage start time", gameDataResponse{GameStartTime: "yesterday", Blinds: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toSnapshot(&tt.resp)
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("toSnapshot() error = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestAmountUnmarshal(t *testing.T) {
	var payload struct {
		A amount `json:"a"`
		B amount `json:"b"`
		C amount `json:"c"`
	}

	data := []byte(`{"a": 12.5, "b": "0.50", "c": null}`)
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if payload.A != 12.5 {
		t.Errorf("A = %v, want 12.5", payload.A)
	}
	if payload.B != 0.5 {
		t.Errorf("B = %v, want 0.5", payload.B)
	}
	if payload.C != 0 {
		t.Errorf("C = %v, want 0", payload.C)
	}

	if err := json.Unmarshal([]byte(`{"a": "abc"}`), &payload); err == nil {
		t.Error("unmarshal of non-numeric string succeeded, want error")
	}
}

func TestToPlotData(t *testing.T) {
	resp := plotDataResponse{
		Labels:            []string{"2024-10-01", "2024-10-08"},
		SingleGameResults: []amount{50, -20},
		CumulativeResults: []amount{50, 30},
	}

	pd, err := toPlotData(&resp)
	if err != nil {
		t.Fatalf("toPlotData failed: %v", err)
	}

	if len(pd.Labels) != 2 {
		t.Fatalf("len(Labels) = %d, want 2", len(pd.Labels))
	}
	if pd.PerGame[1] != -2000 {
		t.Errorf("PerGame[1] = %d cents, want -2000", pd.PerGame[1])
	}
	if pd.Cumulative[1] != 3000 {
		t.Errorf("Cumulative[1] = %d cents, want 3000", pd.Cumulative[1])
	}

	resp.CumulativeResults = resp.CumulativeResults[:1]
	if _, err := toPlotData(&resp); err == nil {
		t.Error("toPlotData with mismatched lengths succeeded, want error")
	}
}

func TestToDebts(t *testing.T) {
	debts := toDebts([]apiDebt{
		{ID: 1, From: "anna", To: "bart", Money: 25, Type: "outgoing"},
		{ID: 2, From: "carl", To: "anna", Money: 10.5, Type: "incoming", PhoneNumber: "600100200"},
	})

	if len(debts) != 2 {
		t.Fatalf("len(debts) = %d, want 2", len(debts))
	}
	if debts[0].Incoming {
		t.Error("debts[0].Incoming = true, want false")
	}
	if !debts[1].Incoming {
		t.Error("debts[1].Incoming = false, want true")
	}
	if debts[1].Amount != 1050 {
		t.Errorf("debts[1].Amount = %d, want 1050", debts[1].Amount)
	}
	if debts[1].PhoneNumber != "600100200" {
		t.Errorf("debts[1].PhoneNumber = %q, want %q", debts[1].PhoneNumber, "600100200")
	}
}
