package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ledger-service/internal/middleware"
	"ledger-service/internal/model"
	"ledger-service/internal/repository"
	"ledger-service/pkg/database"
	"ledger-service/pkg/logger"
	"ledger-service/pkg/validator"
	"ledger-service/prometheus"
)

// SupplierRequest is the write payload for supplier creation/update.
// Field names match the legacy wire format. The client validates the
// form before submitting; the tags here are the server-side backstop.
type SupplierRequest struct {
	Supplier         string    `json:"Supplier" validate:"required"`
	PrintName        string    `json:"PrintName"`
	Add1             string    `json:"Add1"`
	Add2             string    `json:"Add2"`
	Add3             string    `json:"Add3"`
	City             int       `json:"City" validate:"required"`
	Phone            string    `json:"Phone"`
	Fax              string    `json:"Fax"`
	TNGSTNo          string    `json:"TNGST_No"`
	TINNo            string    `json:"TIN_No"`
	Mailid           string    `json:"Mailid"`
	ContactPerson    string    `json:"Contact_person"`
	MobileNo         string    `json:"Mobile_No" validate:"required,len=10,numeric"`
	SupplierCustomer string    `json:"Supplier_Customer"`
	Isactive         string    `json:"Isactive" validate:"omitempty,oneof=Y N"`
	CompID           int       `json:"CompId" validate:"required"`
	LedgerGroupID    int       `json:"LedgerGroupId" validate:"required"`
	SupCode          string    `json:"SupCode"`
	CreditDays       int       `json:"CreditDays"`
	VhNo             string    `json:"VhNo"`
	OpBalAmt         float64   `json:"OpBalAmt"`
	OpType           string    `json:"OpType" validate:"omitempty,oneof=Dr Cr"`
	OpDt             time.Time `json:"OpDt"`
}

func (r *SupplierRequest) toModel() model.Supplier {
	return model.Supplier{
		Supplier:         r.Supplier,
		PrintName:        r.PrintName,
		Add1:             r.Add1,
		Add2:             r.Add2,
		Add3:             r.Add3,
		City:             r.City,
		Phone:            r.Phone,
		Fax:              r.Fax,
		TNGSTNo:          r.TNGSTNo,
		TINNo:            r.TINNo,
		Mailid:           r.Mailid,
		ContactPerson:    r.ContactPerson,
		MobileNo:         r.MobileNo,
		SupplierCustomer: r.SupplierCustomer,
		Isactive:         r.Isactive,
		CompID:           r.CompID,
		LedgerGroupID:    r.LedgerGroupID,
		SupCode:          r.SupCode,
		CreditDays:       r.CreditDays,
		VhNo:             r.VhNo,
		OpBalAmt:         r.OpBalAmt,
		OpType:           r.OpType,
		OpDt:             r.OpDt,
	}
}

func supplierRepo() *repository.SupplierRepository {
	return repository.NewSupplierRepository(database.GetDB())
}

// ListSuppliers returns every supplier in the caller's company scope.
func ListSuppliers(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLedgerOperation("list")

	companyID := middleware.CompanyID(c)
	if companyID == 0 {
		log.Warn("Missing company scope on supplier list")
		prometheus.CompanyScopeMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Company ID is required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	suppliers, err := supplierRepo().List(c.Request().Context(), companyID)
	if err != nil {
		log.Error("Failed to retrieve suppliers", zap.Int("company_id", companyID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching suppliers"})
	}

	log.Info("Suppliers retrieved", zap.Int("count", len(suppliers)), zap.Int("company_id", companyID))
	return c.JSON(http.StatusOK, suppliers)
}

// GetSupplier retrieves a single supplier by ID.
func GetSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLedgerOperation("get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid supplier ID", zap.String("value", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid supplier ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	supplier, err := supplierRepo().GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Supplier not found"})
		}
		log.Error("Failed to fetch supplier", zap.Int("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching supplier"})
	}

	return c.JSON(http.StatusOK, supplier)
}

// CreateSupplier creates a new ledger account.
func CreateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLedgerOperation("create")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if errs := validator.ValidateStruct(&req); errs != nil {
		log.Warn("Supplier payload failed validation", zap.Int("violations", len(errs)))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid supplier data",
			"errors":  errs,
		})
	}

	supplier := req.toModel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	id, err := supplierRepo().Create(c.Request().Context(), &supplier)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownCity) {
			log.Warn("Create rejected: unknown city", zap.Int("city", req.City))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": fmt.Sprintf("Invalid city code: %d. Please select a valid city.", req.City),
			})
		}
		log.Error("Failed to create supplier", zap.String("name", req.Supplier), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating supplier"})
	}

	go updateSupplierCount(supplier.CompID)

	log.Info("Supplier created",
		zap.Int("supplier_id", id),
		zap.String("name", supplier.Supplier),
		zap.Int("company_id", supplier.CompID))
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Supplier created successfully",
		"supplierId": id,
	})
}

// UpdateSupplier overwrites an existing ledger account. The company
// scope comes from the company-id header and the record must belong to
// it; cross-company ids are reported as not found.
func UpdateSupplier(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordLedgerOperation("update")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid supplier ID", zap.String("value", c.Param("id")))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid supplier ID"})
	}

	companyID := middleware.CompanyID(c)
	if companyID == 0 {
		log.Warn("Missing company scope on supplier update", zap.Int("supplier_id", id))
		prometheus.CompanyScopeMissingCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Company ID is required in headers"})
	}

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Int("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	if errs := validator.ValidateStruct(&req); errs != nil {
		log.Warn("Supplier payload failed validation",
			zap.Int("supplier_id", id),
			zap.Int("violations", len(errs)))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid supplier data",
			"errors":  errs,
		})
	}

	supplier := req.toModel()

	defer prometheus.TrackDBOperation("update")(time.Now())
	err = supplierRepo().Update(c.Request().Context(), id, companyID, &supplier)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Warn("Update rejected: not found in company scope",
				zap.Int("supplier_id", id),
				zap.Int("company_id", companyID))
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "Supplier not found or does not belong to the company",
			})
		case errors.Is(err, repository.ErrUnknownCity):
			log.Warn("Update rejected: unknown city", zap.Int("city", req.City))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": fmt.Sprintf("Invalid city code: %d. Please select a valid city.", req.City),
			})
		}
		log.Error("Failed to update supplier", zap.Int("supplier_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error updating supplier"})
	}

	go updateSupplierCount(companyID)

	log.Info("Supplier updated", zap.Int("supplier_id", id), zap.Int("company_id", companyID))
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Supplier updated successfully",
		"supplierId": id,
	})
}

// updateSupplierCount refreshes the per-company account gauge.
func updateSupplierCount(companyID int) {
	var count int64
	database.GetDB().Model(&model.Supplier{}).
		Where("comp_id = ?", companyID).
		Count(&count)
	prometheus.UpdateSuppliersPerCompany(companyID, int(count))
}
