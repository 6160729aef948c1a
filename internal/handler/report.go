package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/danielfranchi555/padelAdministration/internal/ledger"
	"github.com/danielfranchi555/padelAdministration/internal/report"
)

// ReportHandler serves daily summaries computed from the ledger and
// the transaction log.
type ReportHandler struct {
	Ledger *ledger.Ledger
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(l *ledger.Ledger) *ReportHandler {
	if l == nil {
		panic("nil ledger passed to NewReportHandler")
	}
	return &ReportHandler{Ledger: l}
}

// Daily handles GET /v1/reports/daily?date=.  When date is omitted
// the current day is reported.
func (h *ReportHandler) Daily(c echo.Context) error {
	date := strings.TrimSpace(c.QueryParam("date"))
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	daily := report.BuildDaily(date, h.Ledger.Matches(ledger.Filter{}), h.Ledger.Payments())
	return c.JSON(http.StatusOK, daily)
}
