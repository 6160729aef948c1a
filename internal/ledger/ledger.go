package ledger

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielfranchi555/padelAdministration/internal/billing"
	"github.com/danielfranchi555/padelAdministration/internal/config"
	"github.com/danielfranchi555/padelAdministration/internal/model"
	"github.com/danielfranchi555/padelAdministration/internal/schedule"
	"github.com/danielfranchi555/padelAdministration/internal/store"
)

// DefaultDuration is the booked length in minutes when the caller
// does not specify one.
const DefaultDuration = 90

// Ledger is the single owner of all mutable session state.  Matches
// keep their insertion order; the payment log is append-only.  Every
// mutation recomputes the touched player's totals through the billing
// calculator before the new state becomes visible, and hands a fresh
// snapshot to the store afterwards.  The mutex exists because the
// HTTP layer serves requests on multiple goroutines; logically the
// model is still a single actor running one operation at a time.
type Ledger struct {
	mu       sync.Mutex
	pricing  *config.Pricing
	calc     billing.Calculator
	store    store.Store
	matches  []model.Match
	payments []model.PaymentTransaction
}

// New constructs a Ledger over the given pricing table and snapshot
// store.  The store may be nil, in which case snapshots are skipped.
func New(pricing *config.Pricing, st store.Store) *Ledger {
	if pricing == nil {
		panic("nil pricing passed to ledger.New")
	}
	return &Ledger{
		pricing: pricing,
		calc: billing.Calculator{
			TubePrice: pricing.TubePrice,
			OwnerRate: pricing.OwnerRate,
		},
		store: st,
	}
}

// Restore seeds the ledger from a previously saved snapshot.  It is
// meant to be called once at session start, before any operation.
func (l *Ledger) Restore(snap store.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.matches = append([]model.Match(nil), snap.Matches...)
	l.payments = append([]model.PaymentTransaction(nil), snap.Payments...)
}

// persist hands the current state to the snapshot store.  Failures
// are logged and otherwise ignored: the in-memory model is the source
// of truth and its invariants hold regardless of whether the write
// succeeds.  Callers must hold l.mu.
func (l *Ledger) persist() {
	if l.store == nil {
		return
	}
	snap := store.Snapshot{
		Matches:  append([]model.Match(nil), l.matches...),
		Payments: append([]model.PaymentTransaction(nil), l.payments...),
		SavedAt:  time.Now(),
	}
	if err := l.store.Save(context.Background(), snap); err != nil {
		log.Printf("ledger: snapshot save failed: %v", err)
	}
}

// emptyPlayer builds an unfilled roster slot.
func emptyPlayer() model.Player {
	return model.Player{
		ID:  uuid.NewString(),
		Bar: []model.BarItem{},
	}
}

// CreateMatch validates and appends a new reservation.  The first
// roster slot is pre-filled with the responsible person's name; the
// remaining slots stay empty until staff populate them.  It fails
// with ErrValidation on a blank responsible name, unknown court or
// malformed date/time, and with ErrScheduleConflict when the slot
// collides with an existing booking.
func (l *Ledger) CreateMatch(courtID int, date, startTime string, duration int, responsible string) (model.Match, error) {
	if strings.TrimSpace(responsible) == "" {
		return model.Match{}, fmt.Errorf("%w: responsible name is required", ErrValidation)
	}
	if _, ok := l.pricing.CourtByID(courtID); !ok {
		return model.Match{}, fmt.Errorf("%w: unknown court %d", ErrValidation, courtID)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return model.Match{}, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	conflict, err := schedule.HasOverlap(l.matches, courtID, date, startTime, duration, "")
	if err != nil {
		return model.Match{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if conflict {
		return model.Match{}, fmt.Errorf("%w: court %d is booked on %s at %s", ErrScheduleConflict, courtID, date, startTime)
	}

	m := model.Match{
		ID:          uuid.NewString(),
		CourtID:     courtID,
		Responsible: responsible,
		Date:        date,
		StartTime:   startTime,
		Duration:    duration,
	}
	for i := range m.Players {
		m.Players[i] = emptyPlayer()
	}
	m.Players[0].Name = responsible

	l.matches = append(l.matches, m)
	l.persist()
	return m, nil
}

// Reschedule moves an existing match to a new court, date or time.
// The overlap check ignores the match itself so an unchanged booking
// always passes.  Validation failures leave the match untouched.
func (l *Ledger) Reschedule(id string, courtID int, date, startTime string, duration int) (model.Match, error) {
	if _, ok := l.pricing.CourtByID(courtID); !ok {
		return model.Match{}, fmt.Errorf("%w: unknown court %d", ErrValidation, courtID)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return model.Match{}, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.matches {
		if l.matches[i].ID != id {
			continue
		}
		conflict, err := schedule.HasOverlap(l.matches, courtID, date, startTime, duration, id)
		if err != nil {
			return model.Match{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		if conflict {
			return model.Match{}, fmt.Errorf("%w: court %d is booked on %s at %s", ErrScheduleConflict, courtID, date, startTime)
		}
		m := &l.matches[i]
		m.CourtID = courtID
		m.Date = date
		m.StartTime = startTime
		m.Duration = duration
		// The court may have changed, so every court fee is re-derived.
		for j := range m.Players {
			m.Players[j] = l.calc.Recompute(m.Players[j], l.courtPrice(m))
		}
		l.persist()
		return *m, nil
	}
	return model.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}

// UpdateMatch replaces the stored match carrying the same id.  The
// caller is responsible for having recomputed the totals of any
// touched player; the mutation helpers below do that automatically
// and are the preferred write path.
func (l *Ledger) UpdateMatch(m model.Match) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.matches {
		if l.matches[i].ID == m.ID {
			l.matches[i] = m
			l.persist()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMatchNotFound, m.ID)
}

// CompleteMatch marks a match as finished.  Completion is triggered
// outside the billing core, so the transition is idempotent: marking
// an already completed match is a no-op.
func (l *Ledger) CompleteMatch(id string) (model.Match, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.matches {
		if l.matches[i].ID != id {
			continue
		}
		if !l.matches[i].IsCompleted {
			l.matches[i].IsCompleted = true
			l.persist()
		}
		return l.matches[i], nil
	}
	return model.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}

// MatchByID returns a copy of the match with the given id.
func (l *Ledger) MatchByID(id string) (model.Match, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}

// Filter narrows the match listing.  Zero values mean "no
// constraint"; Status accepts "active" or "completed".
type Filter struct {
	Date    string
	CourtID int
	Status  string
}

// Matches returns the stored matches in insertion order, optionally
// filtered.
func (l *Ledger) Matches(f Filter) []model.Match {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Match, 0, len(l.matches))
	for _, m := range l.matches {
		if f.Date != "" && m.Date != f.Date {
			continue
		}
		if f.CourtID != 0 && m.CourtID != f.CourtID {
			continue
		}
		if f.Status == "active" && m.IsCompleted {
			continue
		}
		if f.Status == "completed" && !m.IsCompleted {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Slots builds the bookable start-time grid for a court and date by
// consulting the overlap validator against the current schedule.
func (l *Ledger) Slots(courtID int, date string) []schedule.Slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return schedule.AvailableSlots(l.matches, courtID, date, DefaultDuration)
}

// courtPrice resolves the base rental price of the match's court.
func (l *Ledger) courtPrice(m *model.Match) float64 {
	if c, ok := l.pricing.CourtByID(m.CourtID); ok {
		return c.Price
	}
	return 0
}

// mutatePlayer runs one consumption edit as a single logical unit:
// locate the match and player, apply the change, recompute the
// player's totals and write the result back.  No reader can observe
// the intermediate state, so stored totals are never stale relative
// to consumption.
func (l *Ledger) mutatePlayer(matchID, playerID string, change func(p *model.Player) error) (model.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.matches {
		if l.matches[i].ID != matchID {
			continue
		}
		m := &l.matches[i]
		for j := range m.Players {
			if m.Players[j].ID != playerID {
				continue
			}
			p := m.Players[j]
			if err := change(&p); err != nil {
				return model.Player{}, err
			}
			p = l.calc.Recompute(p, l.courtPrice(m))
			m.Players[j] = p
			l.persist()
			return p, nil
		}
		return model.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	return model.Player{}, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
}

// SetPlayerName fills or clears a roster slot.  A cleared slot drops
// out of every aggregate view.
func (l *Ledger) SetPlayerName(matchID, playerID, name string) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		p.Name = name
		return nil
	})
}

// SetOwner toggles the member flag; members pay the flat owner rate
// for the court regardless of the chosen split.
func (l *Ledger) SetOwner(matchID, playerID string, isOwner bool) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		p.IsOwner = isOwner
		return nil
	})
}

// SetCourtShare picks how many people split the court fee.  Zero
// clears the choice; any other value must be on the share menu.
func (l *Ledger) SetCourtShare(matchID, playerID string, share int) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		if share != 0 && !l.pricing.ValidShare(share) {
			return fmt.Errorf("%w: court share %d not offered", ErrValidation, share)
		}
		p.Field.CourtShare = share
		return nil
	})
}

// SetTubeShare picks how many people split the ball tube.
func (l *Ledger) SetTubeShare(matchID, playerID string, share int) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		if share != 0 && !l.pricing.ValidShare(share) {
			return fmt.Errorf("%w: tube share %d not offered", ErrValidation, share)
		}
		p.Field.TubeShare = share
		return nil
	})
}

// SetOvergrip adds or removes the flat equipment add-on.
func (l *Ledger) SetOvergrip(matchID, playerID string, selected bool) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		if selected {
			p.Field.Overgrip = l.pricing.OvergripPrice
		} else {
			p.Field.Overgrip = 0
		}
		return nil
	})
}

// AddBarItem records one unit of a catalog product on the player's
// bar consumption.  Adding a product that is already on the tab
// increments its quantity instead of creating a duplicate line.  The
// unit price is snapshotted from the catalog at first add.
func (l *Ledger) AddBarItem(matchID, playerID, productName string) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		product, ok := l.pricing.ProductByName(productName)
		if !ok {
			return fmt.Errorf("%w: %q", ErrProductNotFound, productName)
		}
		for i := range p.Bar {
			if p.Bar[i].Name == product.Name {
				p.Bar[i].Quantity++
				return nil
			}
		}
		p.Bar = append(p.Bar, model.BarItem{
			ID:       uuid.NewString(),
			Name:     product.Name,
			Price:    product.Price,
			Quantity: 1,
		})
		return nil
	})
}

// SetBarItemQuantity updates one bar line.  A quantity of zero or
// less removes the line entirely rather than keeping an empty entry.
func (l *Ledger) SetBarItemQuantity(matchID, playerID, itemID string, quantity int) (model.Player, error) {
	return l.mutatePlayer(matchID, playerID, func(p *model.Player) error {
		for i := range p.Bar {
			if p.Bar[i].ID != itemID {
				continue
			}
			if quantity <= 0 {
				p.Bar = append(p.Bar[:i], p.Bar[i+1:]...)
			} else {
				p.Bar[i].Quantity = quantity
			}
			return nil
		}
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	})
}
