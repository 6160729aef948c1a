// Package handler exposes the billing engine over HTTP.  This file
// defines the reservation and roster endpoints: creating matches,
// browsing the schedule and editing per-player consumption.  The
// handlers are a thin presentation layer; every rule lives in the
// ledger and its collaborators.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/danielfranchi555/padelAdministration/internal/config"
	"github.com/danielfranchi555/padelAdministration/internal/ledger"
	"github.com/danielfranchi555/padelAdministration/internal/model"
)

// MatchHandler bundles the ledger and pricing table for reservation
// and roster endpoints.
type MatchHandler struct {
	Ledger  *ledger.Ledger  // Ledger owns all mutable session state
	Pricing *config.Pricing // Pricing provides the static catalog for browsing
}

// NewMatchHandler constructs a MatchHandler and panics on nil
// dependencies.
func NewMatchHandler(l *ledger.Ledger, p *config.Pricing) *MatchHandler {
	if l == nil || p == nil {
		panic("nil dependency passed to NewMatchHandler")
	}
	return &MatchHandler{Ledger: l, Pricing: p}
}

// ListCourts handles GET /v1/courts and returns the static court
// catalog.
func (h *MatchHandler) ListCourts(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Pricing.Courts})
}

// ListProducts handles GET /v1/products and returns the bar catalog.
func (h *MatchHandler) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Pricing.BarProducts})
}

// ListSlots handles GET /v1/courts/:id/slots?date= and returns the
// bookable start-time grid for one court and day, with taken slots
// flagged.
func (h *MatchHandler) ListSlots(c echo.Context) error {
	courtID, err := strconv.Atoi(c.Param("id"))
	if err != nil || courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid court id"})
	}
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	if _, ok := h.Pricing.CourtByID(courtID); !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Ledger.Slots(courtID, date)})
}

// CreateMatch handles POST /v1/matches.  It validates the booking and
// creates a match with four roster slots, the first pre-filled with
// the responsible person's name.
func (h *MatchHandler) CreateMatch(c echo.Context) error {
	var body struct {
		CourtID     int    `json:"court_id"`    // court to reserve
		Date        string `json:"date"`        // calendar day "2006-01-02"
		Time        string `json:"time"`        // start time "15:04"
		Duration    int    `json:"duration"`    // optional minutes, defaults to 90
		Responsible string `json:"responsible"` // person booking the slot
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, err := h.Ledger.CreateMatch(body.CourtID, strings.TrimSpace(body.Date), strings.TrimSpace(body.Time), body.Duration, strings.TrimSpace(body.Responsible))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// ListMatches handles GET /v1/matches with optional date, court_id
// and status=active|completed query filters.
func (h *MatchHandler) ListMatches(c echo.Context) error {
	f := ledger.Filter{
		Date:   strings.TrimSpace(c.QueryParam("date")),
		Status: strings.TrimSpace(c.QueryParam("status")),
	}
	if raw := c.QueryParam("court_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid court_id"})
		}
		f.CourtID = id
	}
	if f.Status != "" && f.Status != "active" && f.Status != "completed" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be active or completed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Ledger.Matches(f)})
}

// GetMatch handles GET /v1/matches/:id.
func (h *MatchHandler) GetMatch(c echo.Context) error {
	m, err := h.Ledger.MatchByID(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// Reschedule handles PUT /v1/matches/:id/schedule and moves a
// booking to a different court, date or time.  The overlap check
// ignores the match being edited.
func (h *MatchHandler) Reschedule(c echo.Context) error {
	var body struct {
		CourtID  int    `json:"court_id"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Duration int    `json:"duration"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	m, err := h.Ledger.Reschedule(c.Param("id"), body.CourtID, strings.TrimSpace(body.Date), strings.TrimSpace(body.Time), body.Duration)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// CompleteMatch handles POST /v1/matches/:id/complete.  Completion is
// idempotent: completing an already finished match returns the same
// state with a 200.
func (h *MatchHandler) CompleteMatch(c echo.Context) error {
	m, err := h.Ledger.CompleteMatch(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdatePlayer handles PATCH /v1/matches/:id/players/:playerID.
// Every field is optional; each supplied one is applied as its own
// consumption edit and the player's totals are recomputed before the
// response is built, so the returned totals are never stale.
func (h *MatchHandler) UpdatePlayer(c echo.Context) error {
	matchID := c.Param("id")
	playerID := c.Param("playerID")
	var body struct {
		Name       *string `json:"name"`        // roster slot name, blank clears the slot
		IsOwner    *bool   `json:"is_owner"`    // member flag, switches to the flat court rate
		CourtShare *int    `json:"court_share"` // court cost divisor, 0 clears
		TubeShare  *int    `json:"tube_share"`  // tube cost divisor, 0 clears
		Overgrip   *bool   `json:"overgrip"`    // equipment add-on toggle
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == nil && body.IsOwner == nil && body.CourtShare == nil && body.TubeShare == nil && body.Overgrip == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
	}

	var (
		player model.Player
		err    error
	)
	if body.Name != nil {
		player, err = h.Ledger.SetPlayerName(matchID, playerID, *body.Name)
		if err != nil {
			return fail(c, err)
		}
	}
	if body.IsOwner != nil {
		player, err = h.Ledger.SetOwner(matchID, playerID, *body.IsOwner)
		if err != nil {
			return fail(c, err)
		}
	}
	if body.CourtShare != nil {
		player, err = h.Ledger.SetCourtShare(matchID, playerID, *body.CourtShare)
		if err != nil {
			return fail(c, err)
		}
	}
	if body.TubeShare != nil {
		player, err = h.Ledger.SetTubeShare(matchID, playerID, *body.TubeShare)
		if err != nil {
			return fail(c, err)
		}
	}
	if body.Overgrip != nil {
		player, err = h.Ledger.SetOvergrip(matchID, playerID, *body.Overgrip)
		if err != nil {
			return fail(c, err)
		}
	}
	return c.JSON(http.StatusOK, player)
}

// AddBarItem handles POST /v1/matches/:id/players/:playerID/bar.
// Adding a product already on the tab increments its quantity.
func (h *MatchHandler) AddBarItem(c echo.Context) error {
	var body struct {
		Product string `json:"product"` // catalog product name
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Product) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}
	player, err := h.Ledger.AddBarItem(c.Param("id"), c.Param("playerID"), body.Product)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, player)
}

// SetBarItemQuantity handles PUT /v1/matches/:id/players/:playerID/bar/:itemID.
// A quantity of zero removes the line.
func (h *MatchHandler) SetBarItemQuantity(c echo.Context) error {
	var body struct {
		Quantity int `json:"quantity"` // new quantity, <= 0 removes the line
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	player, err := h.Ledger.SetBarItemQuantity(c.Param("id"), c.Param("playerID"), c.Param("itemID"), body.Quantity)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, player)
}
