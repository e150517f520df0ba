package model

import (
	"time"
)

// Supplier represents one ledger account row. Column names follow the
// legacy Ledger Master schema; JSON keys are the wire names the mobile
// client already speaks.
type Supplier struct {
	SupplierID       int       `json:"SupplierId" gorm:"column:supplier_id;primaryKey;autoIncrement"`
	Supplier         string    `json:"Supplier" gorm:"type:varchar(100);not null"`
	PrintName        string    `json:"PrintName" gorm:"type:varchar(100)"`
	Add1             string    `json:"Add1" gorm:"type:varchar(100)"`
	Add2             string    `json:"Add2" gorm:"type:varchar(100)"`
	Add3             string    `json:"Add3" gorm:"type:varchar(100)"`
	City             int       `json:"City" gorm:"index"`
	Phone            string    `json:"Phone" gorm:"type:varchar(20)"`
	Fax              string    `json:"Fax" gorm:"type:varchar(20)"`
	TNGSTNo          string    `json:"TNGST_No" gorm:"column:tngst_no;type:varchar(50)"`
	TINNo            string    `json:"TIN_No" gorm:"column:tin_no;type:varchar(50)"`
	Mailid           string    `json:"Mailid" gorm:"type:varchar(100)"`
	ContactPerson    string    `json:"Contact_person" gorm:"type:varchar(100)"`
	MobileNo         string    `json:"Mobile_No" gorm:"type:varchar(20)"`
	SupplierCustomer string    `json:"Supplier_Customer" gorm:"type:char(1)"`
	Isactive         string    `json:"Isactive" gorm:"type:char(1)"`
	CompID           int       `json:"CompId" gorm:"column:comp_id;index"`
	LedgerGroupID    int       `json:"LedgerGroupId" gorm:"column:ledger_group_id"`
	SupCode          string    `json:"SupCode" gorm:"type:varchar(10)"`
	CreditDays       int       `json:"CreditDays"`
	VhNo             string    `json:"VhNo" gorm:"type:varchar(50)"`
	OpBalAmt         float64   `json:"OpBalAmt" gorm:"type:decimal(18,2)"`
	OpType           string    `json:"OpType" gorm:"type:varchar(10)"`
	OpDt             time.Time `json:"OpDt"`
	LastUpdate       time.Time `json:"LastUpdate" gorm:"index"`
}
