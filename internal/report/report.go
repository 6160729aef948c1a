// Package report computes daily summaries over the match collection
// and the payment transaction log.  Reports are derived data: they
// read the ledger's state and never mutate it.
package report

import "github.com/danielfranchi555/padelAdministration/internal/model"

// Daily aggregates one calendar day of facility activity.
//
// Revenue counts money actually collected (the day's transactions),
// while FieldTotal/BarTotal count consumption charged on the day's
// matches whether or not it has been settled yet.  PendingAmount is
// the consumption still owed by named unpaid players.
type Daily struct {
	Date          string  `json:"date"`
	Matches       int     `json:"matches"`
	Players       int     `json:"players"`
	Revenue       float64 `json:"revenue"`
	FieldTotal    float64 `json:"field_total"`
	BarTotal      float64 `json:"bar_total"`
	PaidPlayers   int     `json:"paid_players"`
	PendingAmount float64 `json:"pending_amount"`
	CardPayments  int     `json:"card_payments"`
	CashPayments  int     `json:"cash_payments"`
}

// BuildDaily computes the summary for one day from the given matches
// and transactions.  Matches are expected to be pre-filtered neither
// by court nor by completion; the function itself selects by date.
// Empty roster slots never contribute to any figure.
func BuildDaily(date string, matches []model.Match, payments []model.PaymentTransaction) Daily {
	d := Daily{Date: date}
	for _, m := range matches {
		if m.Date != date {
			continue
		}
		d.Matches++
		for _, p := range m.Players {
			if !p.Named() {
				continue
			}
			d.Players++
			d.FieldTotal += p.TotalField
			d.BarTotal += p.TotalBar
			if p.IsPaid {
				d.PaidPlayers++
			} else {
				d.PendingAmount += p.TotalGeneral
			}
		}
	}
	for _, t := range payments {
		if t.Day() != date {
			continue
		}
		d.Revenue += t.Amount
		switch t.Method {
		case model.MethodCard:
			d.CardPayments++
		case model.MethodCash:
			d.CashPayments++
		}
	}
	return d
}
