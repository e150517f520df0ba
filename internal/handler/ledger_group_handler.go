package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ledger-service/internal/model"
	"ledger-service/pkg/database"
	"ledger-service/pkg/logger"
	"ledger-service/prometheus"
)

// ListLedgerGroups returns the ledger groups belonging to one company,
// ordered by name. An unknown company yields 404 so the client can
// tell "no groups configured" apart from an empty success.
func ListLedgerGroups(c echo.Context) error {
	log := logger.FromContext(c)

	compID, err := strconv.Atoi(c.Param("compId"))
	if err != nil {
		log.Warn("Invalid company ID", zap.String("value", c.Param("compId")))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid company ID provided"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var groups []model.LedgerGroup
	result := database.GetDB().
		Where("comp_id = ?", compID).
		Order("ledger_group").
		Find(&groups)
	if result.Error != nil {
		log.Error("Failed to fetch ledger groups", zap.Int("comp_id", compID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching ledger groups"})
	}

	if len(groups) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "No ledger groups found for this company"})
	}

	return c.JSON(http.StatusOK, groups)
}
