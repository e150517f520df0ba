package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ledger-service/internal/model"
)

// SupplierRepository is the storage surface for ledger accounts. Every
// read and write is scoped or checked so one company cannot touch
// another company's records.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// List returns every supplier belonging to the company. Ordering is
// left to the database; the client re-sorts by LastUpdate for display.
func (r *SupplierRepository) List(ctx context.Context, companyID int) ([]model.Supplier, error) {
	if companyID == 0 {
		return nil, ErrCompanyRequired
	}

	var suppliers []model.Supplier
	result := r.db.WithContext(ctx).Where("comp_id = ?", companyID).Find(&suppliers)
	if result.Error != nil {
		return nil, fmt.Errorf("listing suppliers: %w", result.Error)
	}
	return suppliers, nil
}

// GetByID fetches a single supplier by its identifier.
func (r *SupplierRepository) GetByID(ctx context.Context, id int) (*model.Supplier, error) {
	var supplier model.Supplier
	result := r.db.WithContext(ctx).First(&supplier, "supplier_id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching supplier %d: %w", id, result.Error)
	}
	return &supplier, nil
}

// Create persists a new supplier after checking the city reference,
// stamps LastUpdate with the server time and returns the generated id.
func (r *SupplierRepository) Create(ctx context.Context, supplier *model.Supplier) (int, error) {
	ok, err := r.cityExists(ctx, supplier.City)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownCity
	}

	supplier.SupplierID = 0
	supplier.LastUpdate = time.Now()
	if supplier.OpDt.IsZero() {
		supplier.OpDt = supplier.LastUpdate
	}

	if result := r.db.WithContext(ctx).Create(supplier); result.Error != nil {
		return 0, fmt.Errorf("creating supplier: %w", result.Error)
	}
	return supplier.SupplierID, nil
}

// Update overwrites the mutable fields of an existing supplier. The
// record must belong to the given company or the update is rejected as
// not found, which keeps cross-company ids unguessable. SupplierId and
// CompId are never written.
func (r *SupplierRepository) Update(ctx context.Context, id, companyID int, supplier *model.Supplier) error {
	if companyID == 0 {
		return ErrCompanyRequired
	}

	var count int64
	result := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("supplier_id = ? AND comp_id = ?", id, companyID).
		Count(&count)
	if result.Error != nil {
		return fmt.Errorf("checking supplier %d: %w", id, result.Error)
	}
	if count == 0 {
		return ErrNotFound
	}

	ok, err := r.cityExists(ctx, supplier.City)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownCity
	}

	updates := map[string]interface{}{
		"supplier":          supplier.Supplier,
		"print_name":        supplier.PrintName,
		"add1":              supplier.Add1,
		"add2":              supplier.Add2,
		"add3":              supplier.Add3,
		"city":              supplier.City,
		"phone":             supplier.Phone,
		"fax":               supplier.Fax,
		"tngst_no":          supplier.TNGSTNo,
		"tin_no":            supplier.TINNo,
		"mailid":            supplier.Mailid,
		"contact_person":    supplier.ContactPerson,
		"mobile_no":         supplier.MobileNo,
		"supplier_customer": supplier.SupplierCustomer,
		"isactive":          supplier.Isactive,
		"ledger_group_id":   supplier.LedgerGroupID,
		"sup_code":          supplier.SupCode,
		"credit_days":       supplier.CreditDays,
		"vh_no":             supplier.VhNo,
		"op_bal_amt":        supplier.OpBalAmt,
		"op_type":           supplier.OpType,
		"last_update":       time.Now(),
	}

	result = r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("supplier_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("updating supplier %d: %w", id, result.Error)
	}
	return nil
}

func (r *SupplierRepository) cityExists(ctx context.Context, cityID int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.City{}).
		Where("city_id = ? AND is_active = ?", cityID, "Y").
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("checking city %d: %w", cityID, result.Error)
	}
	return count > 0, nil
}
