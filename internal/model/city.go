package model

// City is read-only reference data. CityId values are the stable state
// codes the legacy data set uses, so the primary key is not generated.
type City struct {
	CityID   int    `json:"CityId" gorm:"column:city_id;primaryKey"`
	City     string `json:"CITY" gorm:"type:varchar(100)"`
	IsActive string `json:"IsActive" gorm:"type:char(1);default:Y"`
}
