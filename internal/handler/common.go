package handler // handler defines http handlers

import (
	"errors"   // errors provides Is comparisons against ledger sentinels
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/danielfranchi555/padelAdministration/internal/ledger" // ledger holds the sentinel error values
)

// fail translates a ledger error into the matching HTTP response.
// Validation problems map to 400, missing references to 404 and state
// conflicts to 409; anything unrecognized becomes a 500 with a
// generic message so internals do not leak.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ledger.ErrValidation),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInsufficientFunds):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrMatchNotFound),
		errors.Is(err, ledger.ErrPlayerNotFound),
		errors.Is(err, ledger.ErrProductNotFound),
		errors.Is(err, ledger.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrScheduleConflict),
		errors.Is(err, ledger.ErrNothingPending):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
