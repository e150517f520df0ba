package model

// User represents an application login. RightsCompID is the company the
// user operates in; IsAllComp marks users that can see every company.
type User struct {
	UserID       int    `json:"UserId" gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName     string `json:"UserName" gorm:"type:varchar(50);uniqueIndex"`
	Pwd          string `json:"-" gorm:"type:varchar(100)"`
	IsActive     string `json:"IsActive" gorm:"type:char(1);default:Y"`
	IsAllComp    string `json:"IsAllComp" gorm:"type:char(1)"`
	RightsCompID int    `json:"RightsCompId" gorm:"column:rights_comp_id"`
}

// CheckPassword compares a candidate password against the stored one.
// The legacy user table stores passwords in the clear and login is a
// byte-for-byte equality check. Keeping the comparison behind this one
// method so the scheme can be swapped without touching callers.
func (u *User) CheckPassword(candidate string) bool {
	return u.Pwd == candidate
}
