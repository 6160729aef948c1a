// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a settlement is successfully
// recorded.  It carries enough information for downstream consumers
// to log or notify without reading the ledger.  A whole-match
// settlement has an empty PlayerID.
type PaymentRecordedEvent struct {
	TransactionID string  `json:"transaction_id"`
	MatchID       string  `json:"match_id"`
	PlayerID      string  `json:"player_id,omitempty"`
	PlayerName    string  `json:"player_name"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	CashReceived  float64 `json:"cash_received,omitempty"`
	Change        float64 `json:"change,omitempty"`
	RecordedAt    string  `json:"recorded_at"`
}
