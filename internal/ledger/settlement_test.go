package ledger

import (
	"errors"
	"testing"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// setupPaidMatch gives player 0 a quarter court share on court 1 (12.50).
func setupPaidMatch(t *testing.T) (*Ledger, model.Match) {
	t.Helper()
	l, _ := newTestLedger(t)
	m := mustCreate(t, l, 1, "2026-09-01", "09:00")
	if _, err := l.SetCourtShare(m.ID, m.Players[0].ID, 4); err != nil {
		t.Fatalf("SetCourtShare: %v", err)
	}
	m, err := l.MatchByID(m.ID)
	if err != nil {
		t.Fatalf("MatchByID: %v", err)
	}
	return l, m
}

func amount(v float64) *float64 { return &v }

func TestPayIndividualFullByCard(t *testing.T) {
	l, m := setupPaidMatch(t)
	p := m.Players[0]
	if p.TotalGeneral != 12.5 {
		t.Fatalf("precondition: total general %v, want 12.5", p.TotalGeneral)
	}

	tx, err := l.PayIndividual(m.ID, p.ID, nil, model.MethodCard, 0)
	if err != nil {
		t.Fatalf("PayIndividual: %v", err)
	}

	if tx.Amount != 12.5 {
		t.Errorf("amount: got %v, want 12.5", tx.Amount)
	}
	if tx.Method != model.MethodCard {
		t.Errorf("method: got %v, want card", tx.Method)
	}
	if tx.PlayerID != p.ID || tx.MatchID != m.ID {
		t.Errorf("transaction references: %+v", tx)
	}
	if tx.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	got, _ := l.MatchByID(m.ID)
	gp := got.Players[0]
	if !gp.IsPaid {
		t.Error("player should be paid")
	}
	if gp.PendingAmount != 0 {
		t.Errorf("pending amount: got %v, want 0", gp.PendingAmount)
	}
	if gp.PaymentMethod != model.MethodCard {
		t.Errorf("payment method: got %v, want card", gp.PaymentMethod)
	}
	// The charge itself never changes: totals reflect consumption.
	if gp.TotalGeneral != 12.5 {
		t.Errorf("total general: got %v, want 12.5", gp.TotalGeneral)
	}
}

func TestPayIndividualPartialCash(t *testing.T) {
	l, m := setupPaidMatch(t)
	p := m.Players[0]

	tx, err := l.PayIndividual(m.ID, p.ID, amount(5), model.MethodCash, 5)
	if err != nil {
		t.Fatalf("PayIndividual: %v", err)
	}
	if tx.Amount != 5 || tx.CashReceived != 5 || tx.Change != 0 {
		t.Errorf("transaction: %+v", tx)
	}

	got, _ := l.MatchByID(m.ID)
	gp := got.Players[0]
	if gp.IsPaid {
		t.Error("partial payment must not mark the player paid")
	}
	if gp.PendingAmount != 7.5 {
		t.Errorf("pending amount: got %v, want 7.5", gp.PendingAmount)
	}
	if gp.TotalGeneral != 12.5 {
		t.Errorf("total general must stay at the full charge, got %v", gp.TotalGeneral)
	}

	// A second payment defaults to the remainder, not the full charge.
	tx, err = l.PayIndividual(m.ID, p.ID, nil, model.MethodCash, 10)
	if err != nil {
		t.Fatalf("second PayIndividual: %v", err)
	}
	if tx.Amount != 7.5 {
		t.Errorf("second amount: got %v, want 7.5", tx.Amount)
	}
	if tx.Change != 2.5 {
		t.Errorf("change: got %v, want 2.5", tx.Change)
	}
	got, _ = l.MatchByID(m.ID)
	if !got.Players[0].IsPaid || got.Players[0].PendingAmount != 0 {
		t.Errorf("player after second payment: %+v", got.Players[0])
	}
}

func TestPayIndividualInsufficientCash(t *testing.T) {
	l, m := setupPaidMatch(t)
	p := m.Players[0]

	_, err := l.PayIndividual(m.ID, p.ID, amount(10), model.MethodCash, 8)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}

	// Nothing happened: no transaction, player untouched.
	if len(l.Payments()) != 0 {
		t.Error("failed payment must not append a transaction")
	}
	got, _ := l.MatchByID(m.ID)
	if got.Players[0].IsPaid || got.Players[0].PendingAmount != 0 || got.Players[0].PaymentMethod != "" {
		t.Errorf("player state changed on failed payment: %+v", got.Players[0])
	}
}

func TestPayIndividualInvalidAmount(t *testing.T) {
	l, m := setupPaidMatch(t)
	p := m.Players[0]

	if _, err := l.PayIndividual(m.ID, p.ID, amount(0), model.MethodCard, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := l.PayIndividual(m.ID, p.ID, amount(-3), model.MethodCard, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v, want ErrInvalidAmount", err)
	}
	if _, err := l.PayIndividual(m.ID, p.ID, nil, "transfer", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown method: got %v, want ErrValidation", err)
	}
}

func TestPayIndividualEmptySlot(t *testing.T) {
	l, m := setupPaidMatch(t)
	if _, err := l.PayIndividual(m.ID, m.Players[1].ID, amount(5), model.MethodCard, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("empty slot: got %v, want ErrValidation", err)
	}
}

// TestPayFullMatchAggregate reproduces the canonical scenario: three
// named players owing 12.50 (5 already paid as a partial), 10 and 0.
// The aggregate is 7.50 + 10 + 0 = 17.50 and all three end up paid.
func TestPayFullMatchAggregate(t *testing.T) {
	l, _ := newTestLedger(t)
	m := mustCreate(t, l, 1, "2026-09-01", "09:00")

	// Player 0 (Marco): quarter court share -> 12.50, partial 5 paid.
	if _, err := l.SetCourtShare(m.ID, m.Players[0].ID, 4); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PayIndividual(m.ID, m.Players[0].ID, amount(5), model.MethodCash, 5); err != nil {
		t.Fatal(err)
	}

	// Player 1 (Lucia): bar tab of 10 (five Powerades at 2).
	if _, err := l.SetPlayerName(m.ID, m.Players[1].ID, "Lucia"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := l.AddBarItem(m.ID, m.Players[1].ID, "Powerade"); err != nil {
			t.Fatal(err)
		}
	}

	// Player 2 (Pedro): named but consumed nothing.
	if _, err := l.SetPlayerName(m.ID, m.Players[2].ID, "Pedro"); err != nil {
		t.Fatal(err)
	}

	tx, err := l.PayFullMatch(m.ID, model.MethodCash, 20)
	if err != nil {
		t.Fatalf("PayFullMatch: %v", err)
	}
	if tx.Amount != 17.5 {
		t.Errorf("aggregate: got %v, want 17.5", tx.Amount)
	}
	if tx.Change != 2.5 {
		t.Errorf("change: got %v, want 2.5", tx.Change)
	}
	if tx.PlayerID != "" {
		t.Errorf("whole-match settlement must not reference a single player, got %q", tx.PlayerID)
	}

	got, _ := l.MatchByID(m.ID)
	for i := 0; i < 3; i++ {
		p := got.Players[i]
		if !p.IsPaid {
			t.Errorf("player %d (%s) not paid", i, p.Name)
		}
		if p.PendingAmount != 0 {
			t.Errorf("player %d pending: got %v, want 0", i, p.PendingAmount)
		}
	}
	if got.Players[3].IsPaid {
		t.Error("empty slot must stay untouched")
	}
}

func TestPayFullMatchNothingPending(t *testing.T) {
	l, m := setupPaidMatch(t)
	if _, err := l.PayIndividual(m.ID, m.Players[0].ID, nil, model.MethodCard, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := l.PayFullMatch(m.ID, model.MethodCard, 0); !errors.Is(err, ErrNothingPending) {
		t.Errorf("got %v, want ErrNothingPending", err)
	}
}

func TestPayFullMatchInsufficientCash(t *testing.T) {
	l, m := setupPaidMatch(t)
	_, err := l.PayFullMatch(m.ID, model.MethodCash, 10)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
	got, _ := l.MatchByID(m.ID)
	if got.Players[0].IsPaid {
		t.Error("failed settlement must leave players untouched")
	}
	if len(l.Payments()) != 0 {
		t.Error("failed settlement must not append a transaction")
	}
}

func TestPaymentsByDay(t *testing.T) {
	l, m := setupPaidMatch(t)
	tx, err := l.PayIndividual(m.ID, m.Players[0].ID, nil, model.MethodCard, 0)
	if err != nil {
		t.Fatal(err)
	}

	today := tx.Day()
	if got := l.PaymentsByDay(today); len(got) != 1 {
		t.Errorf("today's payments: got %d, want 1", len(got))
	}
	if got := l.PaymentsByDay("1999-01-01"); len(got) != 0 {
		t.Errorf("other day: got %d, want 0", len(got))
	}
}

func TestUnpaidPlayers(t *testing.T) {
	l, m := setupPaidMatch(t)

	unpaid := l.UnpaidPlayers()
	if len(unpaid) != 1 {
		t.Fatalf("unpaid: got %d, want 1", len(unpaid))
	}
	if unpaid[0].MatchID != m.ID || unpaid[0].CourtID != 1 {
		t.Errorf("unpaid annotation: %+v", unpaid[0])
	}

	if _, err := l.PayIndividual(m.ID, m.Players[0].ID, nil, model.MethodCard, 0); err != nil {
		t.Fatal(err)
	}
	if got := l.UnpaidPlayers(); len(got) != 0 {
		t.Errorf("unpaid after settlement: got %d, want 0", len(got))
	}
}

func TestUnpaidPlayersSkipsCompletedMatches(t *testing.T) {
	l, m := setupPaidMatch(t)
	if _, err := l.CompleteMatch(m.ID); err != nil {
		t.Fatal(err)
	}
	if got := l.UnpaidPlayers(); len(got) != 0 {
		t.Errorf("completed match must not surface unpaid players, got %d", len(got))
	}
}
