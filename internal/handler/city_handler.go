package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ledger-service/internal/model"
	"ledger-service/pkg/database"
	"ledger-service/pkg/logger"
	"ledger-service/prometheus"
)

// ListCities returns the active city reference data used to populate
// the city selection field.
func ListCities(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var cities []model.City
	result := database.GetDB().
		Where("is_active = ?", "Y").
		Order("city_id").
		Find(&cities)
	if result.Error != nil {
		log.Error("Failed to fetch cities", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching cities"})
	}

	return c.JSON(http.StatusOK, cities)
}
