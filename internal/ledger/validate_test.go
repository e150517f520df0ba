package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() LedgerForm {
	return LedgerForm{
		LedgerName:     "ACME TRADERS",
		City:           "33",
		LedgerGroupID:  "1",
		MobileNumber:   "9876543210",
		Email:          "accounts@acme.com",
		OpeningBalance: "5000",
		BalanceType:    Debit,
		IsActive:       true,
	}
}

func TestValidateFormAcceptsValidForm(t *testing.T) {
	errs := ValidateForm(validForm())
	assert.True(t, errs.OK())
}

func TestValidateFormLedgerName(t *testing.T) {
	form := validForm()
	form.LedgerName = "   "
	errs := ValidateForm(form)
	assert.ErrorIs(t, errs.LedgerName, ErrRequiredField)
	assert.False(t, errs.OK())
}

func TestValidateFormMobileNumber(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   error
	}{
		{name: "empty is required", mobile: "", want: ErrRequiredField},
		{name: "too short", mobile: "12345", want: ErrInvalidFormat},
		{name: "too long", mobile: "98765432101", want: ErrInvalidFormat},
		{name: "non-digits", mobile: "98765x3210", want: ErrInvalidFormat},
		{name: "ten digits pass", mobile: "9876543210", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.MobileNumber = tt.mobile
			errs := ValidateForm(form)
			if tt.want == nil {
				assert.NoError(t, errs.MobileNumber)
			} else {
				assert.ErrorIs(t, errs.MobileNumber, tt.want)
			}
		})
	}
}

func TestValidateFormEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  error
	}{
		{name: "empty is allowed", email: "", want: nil},
		{name: "missing at-sign", email: "bad", want: ErrInvalidFormat},
		{name: "missing domain segment", email: "a@b", want: ErrInvalidFormat},
		{name: "plain address passes", email: "a@b.com", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email
			errs := ValidateForm(form)
			if tt.want == nil {
				assert.NoError(t, errs.Email)
			} else {
				assert.ErrorIs(t, errs.Email, tt.want)
			}
		})
	}
}

func TestValidateFormOpeningBalance(t *testing.T) {
	form := validForm()
	form.OpeningBalance = ""
	assert.NoError(t, ValidateForm(form).OpeningBalance)

	form.OpeningBalance = "12x"
	assert.ErrorIs(t, ValidateForm(form).OpeningBalance, ErrNotANumber)

	form.OpeningBalance = "-120.55"
	assert.NoError(t, ValidateForm(form).OpeningBalance)
}

func TestValidateFormReportsAllViolationsTogether(t *testing.T) {
	errs := ValidateForm(LedgerForm{MobileNumber: "123", Email: "bad", OpeningBalance: "x"})
	assert.ErrorIs(t, errs.LedgerName, ErrRequiredField)
	assert.ErrorIs(t, errs.MobileNumber, ErrInvalidFormat)
	assert.ErrorIs(t, errs.Email, ErrInvalidFormat)
	assert.ErrorIs(t, errs.OpeningBalance, ErrNotANumber)
}
