package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/danielfranchi555/padelAdministration/internal/handler" // import the handlers that implement the presentation layer
)

// RegisterRoutes registers every endpoint on the provided Echo
// instance.  There is no authentication layer: the service runs on a
// trusted facility network for a single staff session.
func RegisterRoutes(e *echo.Echo, m *handler.MatchHandler, p *handler.PaymentHandler, r *handler.ReportHandler) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1")

	// ---- Catalog ----
	g.GET("/courts", m.ListCourts)
	g.GET("/courts/:id/slots", m.ListSlots)
	g.GET("/products", m.ListProducts)

	// ---- Matches and rosters ----
	g.POST("/matches", m.CreateMatch)
	g.GET("/matches", m.ListMatches)
	g.GET("/matches/:id", m.GetMatch)
	g.PUT("/matches/:id/schedule", m.Reschedule)
	g.POST("/matches/:id/complete", m.CompleteMatch)
	g.PATCH("/matches/:id/players/:playerID", m.UpdatePlayer)
	g.POST("/matches/:id/players/:playerID/bar", m.AddBarItem)
	g.PUT("/matches/:id/players/:playerID/bar/:itemID", m.SetBarItemQuantity)

	// ---- Settlement ----
	g.POST("/payments/player", p.PayIndividual)
	g.POST("/payments/match", p.PayFullMatch)
	g.GET("/payments", p.ListPayments)
	g.GET("/payments/unpaid", p.ListUnpaid)

	// ---- Reporting ----
	g.GET("/reports/daily", r.Daily)
}
