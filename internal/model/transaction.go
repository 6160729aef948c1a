package model

import "time"

// PaymentTransaction records one completed settlement.  Transactions
// are append-only: once created they are never modified, and the
// daily reports are computed from them.
//
// Fields:
//  ID           – opaque unique identity.
//  MatchID      – match the settlement belongs to.
//  PlayerID     – player settled; empty for whole-match settlements.
//  PlayerName   – display name captured at settlement time (or a
//                 synthetic full-match label).
//  Amount       – amount charged, always > 0.
//  Method       – card or cash.
//  CashReceived – cash handed over; only set for cash payments and
//                 always >= Amount.
//  Change       – CashReceived - Amount for cash payments.
//  Timestamp    – moment the settlement was recorded.
type PaymentTransaction struct {
	ID           string        `json:"id"`
	MatchID      string        `json:"match_id"`
	PlayerID     string        `json:"player_id,omitempty"`
	PlayerName   string        `json:"player_name"`
	Amount       float64       `json:"amount"`
	Method       PaymentMethod `json:"method"`
	CashReceived float64       `json:"cash_received,omitempty"`
	Change       float64       `json:"change,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Day returns the calendar day of the transaction in "2006-01-02"
// form, used to filter the log for daily summaries.
func (t PaymentTransaction) Day() string {
	return t.Timestamp.Format("2006-01-02")
}
