// Package ledger owns the canonical in-memory collections of the
// session: the matches with their rosters and the append-only payment
// transaction log.  This file defines the sentinel errors shared by
// the ledger operations.  They let the HTTP layer distinguish failure
// modes without parsing messages; every one of them is a locally
// recoverable condition surfaced to the caller of the current action,
// never a fatal state.  The ledger is never left partially updated
// when one of these is returned: validation happens before any
// mutation.
package ledger

import "errors"

// ErrValidation is returned when a required input is missing or
// malformed, such as a blank responsible name or an unknown share
// divisor.  Handlers should translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrScheduleConflict is returned when a proposed booking overlaps an
// existing match on the same court and date.  Handlers should
// translate this into an HTTP 409 response.
var ErrScheduleConflict = errors.New("schedule conflict")

// ErrMatchNotFound is returned when a referenced match id does not
// exist in the ledger.
var ErrMatchNotFound = errors.New("match not found")

// ErrPlayerNotFound is returned when a referenced player id does not
// belong to the match's roster.
var ErrPlayerNotFound = errors.New("player not found")

// ErrProductNotFound is returned when a bar item is added for a
// product name that is not in the catalog.
var ErrProductNotFound = errors.New("bar product not found")

// ErrItemNotFound is returned when a bar line id does not exist on
// the player's consumption.
var ErrItemNotFound = errors.New("bar item not found")

// ErrInvalidAmount is returned when a payment amount is not a
// positive number.
var ErrInvalidAmount = errors.New("invalid payment amount")

// ErrInsufficientFunds is returned when the cash received is less
// than the amount due.
var ErrInsufficientFunds = errors.New("insufficient cash received")

// ErrNothingPending is returned when a whole-match settlement is
// attempted but no named player has an outstanding balance.
var ErrNothingPending = errors.New("nothing pending to settle")
