package model

// LedgerGroup is company-scoped reference data used to classify ledger
// accounts.
type LedgerGroup struct {
	LedgerGroupID int    `json:"LedgerGroupId" gorm:"column:ledger_group_id;primaryKey;autoIncrement"`
	LedgerGroup   string `json:"LEDGERGROUP" gorm:"type:varchar(100)"`
	CompID        int    `json:"CompId" gorm:"column:comp_id;index"`
}
