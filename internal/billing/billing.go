// Package billing implements the pure billing calculator: the rules
// that turn a player's recorded consumption (cost-split shares and
// bar lines) into monetary totals.  Nothing here has side effects;
// the ledger is the only writer of player state and calls Recompute
// after every consumption mutation so that stored totals are never
// stale.
package billing

import "github.com/danielfranchi555/padelAdministration/internal/model"

// Calculator carries the fixed rates that are independent of the
// court being played: the ball-tube price, the flat member rate and
// the overgrip add-on.  The per-court base price is passed per call
// because it depends on the match's court.
type Calculator struct {
	TubePrice float64 // full price of one tube of balls
	OwnerRate float64 // flat court fee for facility members
}

// CourtAmount computes a player's court fee.  Members pay the flat
// owner rate regardless of the chosen split; everyone else pays the
// court's base price divided by the chosen share.  A zero share means
// the option has not been picked yet and charges nothing.
func (c Calculator) CourtAmount(courtPrice float64, share int, isOwner bool) float64 {
	if isOwner {
		return c.OwnerRate
	}
	if share <= 0 {
		return 0
	}
	return courtPrice / float64(share)
}

// TubeAmount computes a player's share of the ball tube.
func (c Calculator) TubeAmount(share int) float64 {
	if share <= 0 {
		return 0
	}
	return c.TubePrice / float64(share)
}

// BarTotal sums price*quantity over the bar consumption lines.
func BarTotal(items []model.BarItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Recompute derives every total on the player from the current
// consumption state and returns the updated copy.  It is a total
// function with no failure cases and must be invoked after every
// mutation to the court share, tube share, overgrip, owner flag or
// any bar line.
func (c Calculator) Recompute(p model.Player, courtPrice float64) model.Player {
	p.Field.CourtAmount = c.CourtAmount(courtPrice, p.Field.CourtShare, p.IsOwner)
	p.Field.TubeAmount = c.TubeAmount(p.Field.TubeShare)
	p.TotalField = p.Field.CourtAmount + p.Field.TubeAmount + p.Field.Overgrip
	p.TotalBar = BarTotal(p.Bar)
	p.TotalGeneral = p.TotalField + p.TotalBar
	return p
}
