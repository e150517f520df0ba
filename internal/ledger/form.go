package ledger

// LedgerForm is the display shape every entry screen works with: all
// values are text (or a plain bool) exactly as captured from the form
// controls. City and LedgerGroupID hold the selected reference ids as
// text because selection widgets hand back strings.
type LedgerForm struct {
	LedgerName       string
	PrintName        string
	LedgerGroupID    string
	Address1         string
	Address2         string
	Address3         string
	City             string
	GSTNumber        string
	TINNumber        string
	Contact          string
	MobileNumber     string
	PhoneNumber      string
	Email            string
	Fax              string
	SupCode          string
	CreditDays       string
	VehicleNo        string
	SupplierCustomer string
	OpeningBalance   string
	BalanceType      BalanceType
	IsActive         bool
}

// FormErrors carries the outcome of validating a LedgerForm: one slot
// per validated field, nil when the field passed. A fixed struct rather
// than a field-name-keyed map so callers cannot misspell a key.
type FormErrors struct {
	LedgerName     error
	MobileNumber   error
	Email          error
	OpeningBalance error
}

// OK reports whether the form passed every rule.
func (e FormErrors) OK() bool {
	return e.LedgerName == nil && e.MobileNumber == nil && e.Email == nil && e.OpeningBalance == nil
}
