package handler

import (
	"net/http"

	"geowatch/internal/delivery/http/response"
	"geowatch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// StatsHandler exposes the per-category notification counters for the
// daily stats posting.
type StatsHandler struct {
	counters service.Counters
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(counters service.Counters) *StatsHandler {
	return &StatsHandler{counters: counters}
}

// Snapshot returns the current counter totals.
func (h *StatsHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.counters.Snapshot(), "")
}

// Reset returns the totals and zeroes the counters, typically invoked
// once a day after the stats are posted.
func (h *StatsHandler) Reset(c echo.Context) error {
	snapshot := h.counters.Snapshot()
	h.counters.Reset()

	return response.Success(c, http.StatusOK, snapshot, "Counters reset")
}
