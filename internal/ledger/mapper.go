package ledger

import (
	"strconv"
	"strings"

	"ledger-service/internal/model"
)

// FormToRecord maps the display shape onto the storage shape. Free-text
// fields are trimmed, the city and ledger group selections are parsed to
// their reference ids, the active flag collapses to "Y"/"N" and the
// opening balance goes through NormalizeBalance. Identity and scope
// fields (SupplierId, CompId) and the server-owned timestamps are left
// for the caller; the mapper never touches them.
func FormToRecord(form LedgerForm) (model.Supplier, error) {
	var record model.Supplier

	cityID, err := strconv.Atoi(strings.TrimSpace(form.City))
	if err != nil {
		return record, fieldErr("city", ErrInvalidReference)
	}

	groupID, err := strconv.Atoi(strings.TrimSpace(form.LedgerGroupID))
	if err != nil {
		return record, fieldErr("ledgerGroupId", ErrInvalidReference)
	}

	balanceType := form.BalanceType
	if balanceType == "" {
		balanceType = Debit
	}

	balance, err := NormalizeBalance(form.OpeningBalance, balanceType)
	if err != nil {
		return record, fieldErr("openingBalance", ErrNotANumber)
	}

	// Credit days are incidental legacy data; an unparseable value
	// falls back to zero rather than blocking the save.
	creditDays, _ := strconv.Atoi(strings.TrimSpace(form.CreditDays))

	record = model.Supplier{
		Supplier:         strings.TrimSpace(form.LedgerName),
		PrintName:        strings.TrimSpace(form.PrintName),
		Add1:             strings.TrimSpace(form.Address1),
		Add2:             strings.TrimSpace(form.Address2),
		Add3:             strings.TrimSpace(form.Address3),
		City:             cityID,
		Phone:            strings.TrimSpace(form.PhoneNumber),
		Fax:              strings.TrimSpace(form.Fax),
		TNGSTNo:          strings.TrimSpace(form.GSTNumber),
		TINNo:            strings.TrimSpace(form.TINNumber),
		Mailid:           strings.TrimSpace(form.Email),
		ContactPerson:    strings.TrimSpace(form.Contact),
		MobileNo:         strings.TrimSpace(form.MobileNumber),
		SupplierCustomer: strings.TrimSpace(form.SupplierCustomer),
		Isactive:         activeFlag(form.IsActive),
		LedgerGroupID:    groupID,
		SupCode:          strings.TrimSpace(form.SupCode),
		CreditDays:       creditDays,
		VhNo:             strings.TrimSpace(form.VehicleNo),
		OpBalAmt:         balance,
		OpType:           string(balanceType),
	}
	return record, nil
}

// RecordToForm maps a stored supplier back into the display shape with
// defensive defaulting: missing optional text stays an empty string,
// a zero city or ledger group becomes an empty selection, and any
// active flag other than exactly "Y" renders as inactive. The opening
// balance comes back as magnitude text plus the Dr/Cr toggle derived
// from the stored value's sign.
func RecordToForm(record model.Supplier) LedgerForm {
	magnitude, balanceType := DenormalizeBalance(record.OpBalAmt)

	return LedgerForm{
		LedgerName:       record.Supplier,
		PrintName:        record.PrintName,
		LedgerGroupID:    referenceText(record.LedgerGroupID),
		Address1:         record.Add1,
		Address2:         record.Add2,
		Address3:         record.Add3,
		City:             referenceText(record.City),
		GSTNumber:        record.TNGSTNo,
		TINNumber:        record.TINNo,
		Contact:          record.ContactPerson,
		MobileNumber:     record.MobileNo,
		PhoneNumber:      record.Phone,
		Email:            record.Mailid,
		Fax:              record.Fax,
		SupCode:          record.SupCode,
		CreditDays:       referenceText(record.CreditDays),
		VehicleNo:        record.VhNo,
		SupplierCustomer: record.SupplierCustomer,
		OpeningBalance:   magnitude,
		BalanceType:      balanceType,
		IsActive:         record.Isactive == "Y",
	}
}

func activeFlag(active bool) string {
	if active {
		return "Y"
	}
	return "N"
}

func referenceText(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}
