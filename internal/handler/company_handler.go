package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ledger-service/internal/model"
	"ledger-service/pkg/database"
	"ledger-service/pkg/logger"
	"ledger-service/prometheus"
)

// CreateCompany registers a new company in the company store.
func CreateCompany(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	company := model.Company{}
	if result := database.GetDB().Create(&company); result.Error != nil {
		log.Error("Failed to create company", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating company"})
	}

	log.Info("Company created", zap.Int("company_id", company.CompanyID))
	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Company created successfully",
		"companyId": company.CompanyID,
	})
}

// ListCompanies returns every company in the store.
func ListCompanies(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var companies []model.Company
	if result := database.GetDB().Find(&companies); result.Error != nil {
		log.Error("Failed to fetch companies", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching companies"})
	}

	return c.JSON(http.StatusOK, companies)
}

// ActiveCompany returns the most recently created company, which the
// mobile client treats as the active one.
func ActiveCompany(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	var company model.Company
	result := database.GetDB().Order("company_id DESC").First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No active company found"})
		}
		log.Error("Failed to fetch active company", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching active company"})
	}

	return c.JSON(http.StatusOK, company)
}
