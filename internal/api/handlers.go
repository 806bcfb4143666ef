package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/mesafe/internal/distance"
	"github.com/UnknownOlympus/mesafe/internal/export"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PlacesResponse lists the reference table.
type PlacesResponse struct {
	Count  int                      `json:"count"`
	Places []models.PlaceCoordinate `json:"places"`
}

// DistanceResponse is returned for a resolved query.
type DistanceResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm int     `json:"distance_km"`
	ExactKm    float64 `json:"exact_km"`
	Display    string  `json:"display"`
}

// ErrorResponse is returned for failed requests. Unknown lists the names not found in the table.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Unknown []string `json:"unknown,omitempty"`
}

// Places handles GET /api/places.
func (h *Handler) Places(c *gin.Context) {
	entries := h.calc.Table().Places()
	if entries == nil {
		entries = []models.PlaceCoordinate{}
	}

	c.JSON(http.StatusOK, PlacesResponse{Count: len(entries), Places: entries})
}

// Distance handles GET /api/distance?from=&to=.
// Missing parameters are treated as empty names and reported as unknown.
func (h *Handler) Distance(c *gin.Context) {
	result := h.calc.Calculate(c.Query("from"), c.Query("to"))

	if result.Err != nil {
		resp := ErrorResponse{Error: result.Err.Error()}
		var unknown *distance.UnknownPlaceError
		if errors.As(result.Err, &unknown) {
			resp.Unknown = unknown.Names
		}
		c.JSON(http.StatusNotFound, resp)
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{
		From:       result.From,
		To:         result.To,
		DistanceKm: result.RoundedKm(),
		ExactKm:    result.Kilometers,
		Display:    result.String(),
	})
}

// MatrixWorkbook handles GET /api/distance/matrix.xlsx.
func (h *Handler) MatrixWorkbook(c *gin.Context) {
	matrix := h.calc.Matrix()

	var buf bytes.Buffer
	if err := export.WriteMatrix(&buf, matrix.Names, matrix.Km); err != nil {
		h.log.ErrorContext(c.Request.Context(), "Failed to build distance matrix workbook", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="mesafeler.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Health handles GET /healthz. It pings the database when one is configured.
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			h.log.WarnContext(c.Request.Context(), "Health check failed", "error", err)
			c.String(http.StatusServiceUnavailable, "DB ping failed")
			return
		}
	}

	c.String(http.StatusOK, "OK")
}
