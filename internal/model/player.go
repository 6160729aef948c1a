package model

import "strings"

// PaymentMethod identifies how a settlement was collected.
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card" // card terminal payment
	MethodCash PaymentMethod = "cash" // cash payment with change calculation
)

// Valid reports whether the method is one of the recognized values.
func (m PaymentMethod) Valid() bool {
	return m == MethodCard || m == MethodCash
}

// BarItem is one line of a player's bar consumption.  Price is a
// snapshot of the catalog unit price taken when the line was first
// added, so later catalog edits do not rewrite history.  Quantity is
// always >= 1; a line whose quantity drops to zero is removed rather
// than kept around.
type BarItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// FieldConsumption records what a player owes for court time and
// equipment.  CourtShare and TubeShare are divisors in {1,2,3,4}
// describing how many people split the respective cost; zero means
// the option has not been chosen yet.  The *Amount fields are derived
// by the billing calculator and must never be written by anything
// else.
type FieldConsumption struct {
	CourtShare  int     `json:"court_share"`
	CourtAmount float64 `json:"court_amount"`
	TubeShare   int     `json:"tube_share"`
	TubeAmount  float64 `json:"tube_amount"`
	Overgrip    float64 `json:"overgrip"`
}

// Player is one roster slot of a match.  A blank name means the slot
// is unfilled and the player is excluded from every aggregate
// (billing, settlement, reporting).
//
// Fields:
//  ID            – opaque unique identity.
//  Name          – display name; blank marks an empty slot.
//  IsOwner       – facility members pay a flat court rate instead of a share.
//  Field         – court/tube/equipment consumption record.
//  Bar           – ordered bar consumption lines.
//  TotalField    – derived: court + tube + overgrip amounts.
//  TotalBar      – derived: sum of price*quantity over Bar.
//  TotalGeneral  – derived: TotalField + TotalBar.
//  IsPaid        – settlement state.
//  PaymentMethod – method used once a payment has been recorded.
//  PendingAmount – unpaid remainder after a partial payment.  Purely
//                  informational bookkeeping: it never reduces
//                  TotalGeneral, which always reflects consumption.
type Player struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	IsOwner       bool             `json:"is_owner"`
	Field         FieldConsumption `json:"field_consumption"`
	Bar           []BarItem        `json:"bar_consumption"`
	TotalField    float64          `json:"total_field"`
	TotalBar      float64          `json:"total_bar"`
	TotalGeneral  float64          `json:"total_general"`
	IsPaid        bool             `json:"is_paid"`
	PaymentMethod PaymentMethod    `json:"payment_method,omitempty"`
	PendingAmount float64          `json:"pending_amount,omitempty"`
}

// Named reports whether the roster slot is actually occupied.
func (p Player) Named() bool {
	return strings.TrimSpace(p.Name) != ""
}

// Outstanding returns how much the player still owes.  After a
// partial payment the remainder lives in PendingAmount; before any
// payment the full charge is due.  Empty slots and settled players
// owe nothing.
func (p Player) Outstanding() float64 {
	if !p.Named() || p.IsPaid {
		return 0
	}
	if p.PendingAmount > 0 {
		return p.PendingAmount
	}
	return p.TotalGeneral
}
