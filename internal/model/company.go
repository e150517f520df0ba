package model

// Company is one row in the company store. The latest row is treated as
// the active company by the mobile client.
type Company struct {
	CompanyID int `json:"CompanyId" gorm:"column:company_id;primaryKey;autoIncrement"`
}

func (Company) TableName() string {
	return "company_store"
}
