package ledger

// This file implements the settlement processor: the two operations
// that turn a payment action into a transaction record plus a
// consistent update of the affected players' payment fields.  Both
// operations validate fully before touching anything, so a rejected
// payment leaves the ledger exactly as it was.

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// PayIndividual settles one player.  When amount is nil the player's
// full outstanding balance is charged; a lesser positive amount
// records a partial payment, leaving the remainder in PendingAmount.
// PendingAmount is informational bookkeeping only: TotalGeneral keeps
// reflecting consumption, not payment history.  For cash payments the
// received amount must cover the charge; the change is recorded on
// the transaction.
func (l *Ledger) PayIndividual(matchID, playerID string, amount *float64, method model.PaymentMethod, cashReceived float64) (model.PaymentTransaction, error) {
	if !method.Valid() {
		return model.PaymentTransaction{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	mi := -1
	for i := range l.matches {
		if l.matches[i].ID == matchID {
			mi = i
			break
		}
	}
	if mi == -1 {
		return model.PaymentTransaction{}, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	m := &l.matches[mi]

	player, pi := m.PlayerByID(playerID)
	if pi == -1 {
		return model.PaymentTransaction{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	if !player.Named() {
		return model.PaymentTransaction{}, fmt.Errorf("%w: roster slot is empty", ErrValidation)
	}

	due := player.Outstanding()
	amt := due
	if amount != nil {
		amt = *amount
	}
	if amt <= 0 {
		return model.PaymentTransaction{}, fmt.Errorf("%w: %.2f", ErrInvalidAmount, amt)
	}
	if method == model.MethodCash && cashReceived < amt {
		return model.PaymentTransaction{}, fmt.Errorf("%w: received %.2f, due %.2f", ErrInsufficientFunds, cashReceived, amt)
	}

	tx := model.PaymentTransaction{
		ID:         uuid.NewString(),
		MatchID:    m.ID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Amount:     amt,
		Method:     method,
		Timestamp:  time.Now(),
	}
	if method == model.MethodCash {
		tx.CashReceived = cashReceived
		tx.Change = cashReceived - amt
	}

	// Transaction append and player update happen under the same
	// lock: callers see both or neither.
	player.PaymentMethod = method
	if amt >= due {
		player.IsPaid = true
		player.PendingAmount = 0
	} else {
		player.IsPaid = false
		player.PendingAmount = due - amt
	}
	m.Players[pi] = player
	l.payments = append(l.payments, tx)
	l.persist()
	return tx, nil
}

// PayFullMatch settles every outstanding balance of a match in one
// transaction.  The charged amount is the aggregate of what each
// named player still owes, so earlier partial payments are not
// charged twice.  It fails with ErrNothingPending when nothing is
// owed.  On success every named player ends up paid with a zero
// pending amount; players who owed nothing are trivially settled and
// keep whatever method they paid with before.
func (l *Ledger) PayFullMatch(matchID string, method model.PaymentMethod, cashReceived float64) (model.PaymentTransaction, error) {
	if !method.Valid() {
		return model.PaymentTransaction{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	mi := -1
	for i := range l.matches {
		if l.matches[i].ID == matchID {
			mi = i
			break
		}
	}
	if mi == -1 {
		return model.PaymentTransaction{}, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	m := &l.matches[mi]

	var total float64
	for _, p := range m.Players {
		total += p.Outstanding()
	}
	if total <= 0 {
		return model.PaymentTransaction{}, fmt.Errorf("%w: match %s", ErrNothingPending, matchID)
	}
	if method == model.MethodCash && cashReceived < total {
		return model.PaymentTransaction{}, fmt.Errorf("%w: received %.2f, due %.2f", ErrInsufficientFunds, cashReceived, total)
	}

	tx := model.PaymentTransaction{
		ID:         uuid.NewString(),
		MatchID:    m.ID,
		PlayerName: fmt.Sprintf("%s (full match)", m.Responsible),
		Amount:     total,
		Method:     method,
		Timestamp:  time.Now(),
	}
	if method == model.MethodCash {
		tx.CashReceived = cashReceived
		tx.Change = cashReceived - total
	}

	for i := range m.Players {
		p := &m.Players[i]
		if !p.Named() {
			continue
		}
		if p.Outstanding() > 0 {
			p.PaymentMethod = method
		}
		p.IsPaid = true
		p.PendingAmount = 0
	}
	l.payments = append(l.payments, tx)
	l.persist()
	return tx, nil
}

// Payments returns the full transaction log in append order.
func (l *Ledger) Payments() []model.PaymentTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]model.PaymentTransaction(nil), l.payments...)
}

// PaymentsByDay filters the transaction log to one calendar day
// ("2006-01-02").
func (l *Ledger) PaymentsByDay(date string) []model.PaymentTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.PaymentTransaction, 0)
	for _, t := range l.payments {
		if t.Day() == date {
			out = append(out, t)
		}
	}
	return out
}

// UnpaidPlayer is a player with an outstanding balance, annotated
// with the match it belongs to so the cashier can find them.
type UnpaidPlayer struct {
	model.Player
	MatchID string `json:"match_id"`
	CourtID int    `json:"court_id"`
}

// UnpaidPlayers lists every named player on an active match who still
// owes money, in match insertion order.
func (l *Ledger) UnpaidPlayers() []UnpaidPlayer {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]UnpaidPlayer, 0)
	for _, m := range l.matches {
		if m.IsCompleted {
			continue
		}
		for _, p := range m.Players {
			if p.Outstanding() > 0 {
				out = append(out, UnpaidPlayer{Player: p, MatchID: m.ID, CourtID: m.CourtID})
			}
		}
	}
	return out
}
