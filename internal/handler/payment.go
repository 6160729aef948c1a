package handler

// This file defines the settlement endpoints.  A successful payment
// appends a transaction to the ledger's log and updates the player
// (or the whole roster) in the same step; afterwards a
// payment.recorded event is published fire-and-forget so a broker
// outage never blocks the cashier.

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/danielfranchi555/padelAdministration/internal/ledger"
	"github.com/danielfranchi555/padelAdministration/internal/model"
	"github.com/danielfranchi555/padelAdministration/internal/queue"
)

// PaymentHandler bundles the ledger for settlement endpoints.
// Publish is the event sink invoked after each recorded settlement;
// it defaults to the RabbitMQ publisher and is replaceable in tests.
type PaymentHandler struct {
	Ledger  *ledger.Ledger
	Publish func(context.Context, queue.PaymentRecordedEvent) error
}

// NewPaymentHandler constructs a PaymentHandler wired to the queue
// publisher.
func NewPaymentHandler(l *ledger.Ledger) *PaymentHandler {
	if l == nil {
		panic("nil ledger passed to NewPaymentHandler")
	}
	return &PaymentHandler{Ledger: l, Publish: queue.PublishPaymentRecorded}
}

// notify publishes the settlement event in the background.  Errors
// are already logged by the publisher and are irrelevant to the
// response.
func (h *PaymentHandler) notify(tx model.PaymentTransaction) {
	if h.Publish == nil {
		return
	}
	ev := queue.PaymentRecordedEvent{
		TransactionID: tx.ID,
		MatchID:       tx.MatchID,
		PlayerID:      tx.PlayerID,
		PlayerName:    tx.PlayerName,
		Amount:        tx.Amount,
		Method:        string(tx.Method),
		CashReceived:  tx.CashReceived,
		Change:        tx.Change,
		RecordedAt:    tx.Timestamp.Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Publish(ctx, ev)
	}()
}

// PayIndividual handles POST /v1/payments/player.  Omitting amount
// charges the player's full outstanding balance; a lesser positive
// amount records a partial payment.
func (h *PaymentHandler) PayIndividual(c echo.Context) error {
	var body struct {
		MatchID      string   `json:"match_id"`      // match the player belongs to
		PlayerID     string   `json:"player_id"`     // player being settled
		Amount       *float64 `json:"amount"`        // optional; defaults to the outstanding balance
		Method       string   `json:"method"`        // "card" or "cash"
		CashReceived float64  `json:"cash_received"` // cash handed over, cash only
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.MatchID) == "" || strings.TrimSpace(body.PlayerID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "match_id and player_id are required"})
	}
	tx, err := h.Ledger.PayIndividual(body.MatchID, body.PlayerID, body.Amount, model.PaymentMethod(body.Method), body.CashReceived)
	if err != nil {
		return fail(c, err)
	}
	h.notify(tx)
	return c.JSON(http.StatusCreated, tx)
}

// PayFullMatch handles POST /v1/payments/match and settles every
// outstanding balance of a match in a single transaction.
func (h *PaymentHandler) PayFullMatch(c echo.Context) error {
	var body struct {
		MatchID      string  `json:"match_id"`
		Method       string  `json:"method"`
		CashReceived float64 `json:"cash_received"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.MatchID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "match_id is required"})
	}
	tx, err := h.Ledger.PayFullMatch(body.MatchID, model.PaymentMethod(body.Method), body.CashReceived)
	if err != nil {
		return fail(c, err)
	}
	h.notify(tx)
	return c.JSON(http.StatusCreated, tx)
}

// ListPayments handles GET /v1/payments with an optional date filter.
// The response includes the summed amount so the cashier sees the
// day's take at a glance.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	var items []model.PaymentTransaction
	if date != "" {
		items = h.Ledger.PaymentsByDay(date)
	} else {
		items = h.Ledger.Payments()
	}
	var total float64
	for _, t := range items {
		total += t.Amount
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}

// ListUnpaid handles GET /v1/payments/unpaid and returns every player
// on an active match with an outstanding balance.
func (h *PaymentHandler) ListUnpaid(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Ledger.UnpaidPlayers()})
}
