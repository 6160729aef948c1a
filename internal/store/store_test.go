package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

func sampleSnapshot() Snapshot {
	ts := time.Date(2026, 9, 1, 18, 45, 12, 0, time.UTC)
	return Snapshot{
		Matches: []model.Match{
			{
				ID: "m1", CourtID: 1, Responsible: "Marco",
				Date: "2026-09-01", StartTime: "09:00", Duration: 90,
				Players: [model.RosterSize]model.Player{
					{
						ID: "p1", Name: "Marco", IsOwner: true,
						Field: model.FieldConsumption{CourtShare: 4, CourtAmount: 10, TubeShare: 2, TubeAmount: 3, Overgrip: 2.5},
						Bar: []model.BarItem{
							{ID: "b1", Name: "Powerade", Price: 2, Quantity: 2},
						},
						TotalField: 15.5, TotalBar: 4, TotalGeneral: 19.5,
						IsPaid: false, PendingAmount: 7.5, PaymentMethod: model.MethodCash,
					},
					{ID: "p2"}, {ID: "p3"}, {ID: "p4"},
				},
			},
		},
		Payments: []model.PaymentTransaction{
			{
				ID: "t1", MatchID: "m1", PlayerID: "p1", PlayerName: "Marco",
				Amount: 12, Method: model.MethodCash, CashReceived: 20, Change: 8,
				Timestamp: ts,
			},
		},
		SavedAt: ts,
	}
}

// TestSnapshotJSONRoundTrip checks the persistence contract: every
// model field survives serialization exactly, and transaction
// timestamps come back as real time values rather than strings.
func TestSnapshotJSONRoundTrip(t *testing.T) {
	orig := sampleSnapshot()

	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Snapshot
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.Matches) != 1 || len(got.Payments) != 1 {
		t.Fatalf("collection sizes: %d matches, %d payments", len(got.Matches), len(got.Payments))
	}

	p := got.Matches[0].Players[0]
	op := orig.Matches[0].Players[0]
	if p.ID != op.ID || p.Name != op.Name || p.IsOwner != op.IsOwner {
		t.Errorf("player identity fields: %+v", p)
	}
	if p.Field != op.Field {
		t.Errorf("field consumption: got %+v, want %+v", p.Field, op.Field)
	}
	if len(p.Bar) != 1 || p.Bar[0] != op.Bar[0] {
		t.Errorf("bar lines: got %+v", p.Bar)
	}
	if p.TotalGeneral != op.TotalGeneral || p.PendingAmount != op.PendingAmount || p.PaymentMethod != op.PaymentMethod {
		t.Errorf("payment fields: %+v", p)
	}

	tx := got.Payments[0]
	otx := orig.Payments[0]
	if tx.Amount != otx.Amount || tx.CashReceived != otx.CashReceived || tx.Change != otx.Change {
		t.Errorf("transaction amounts: %+v", tx)
	}
	if !tx.Timestamp.Equal(otx.Timestamp) {
		t.Errorf("timestamp: got %v, want %v", tx.Timestamp, otx.Timestamp)
	}
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	empty, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if len(empty.Matches) != 0 || len(empty.Payments) != 0 {
		t.Errorf("fresh store not empty: %+v", empty)
	}

	want := sampleSnapshot()
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Matches) != 1 || got.Matches[0].ID != "m1" {
		t.Errorf("loaded snapshot: %+v", got)
	}
	if !got.SavedAt.Equal(want.SavedAt) {
		t.Errorf("saved at: got %v, want %v", got.SavedAt, want.SavedAt)
	}
}
