package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/model"
)

func TestFormToRecord(t *testing.T) {
	form := LedgerForm{
		LedgerName:     "  ACME TRADERS  ",
		PrintName:      "Acme",
		LedgerGroupID:  "2",
		Address1:       "12 Market Road",
		City:           "33",
		GSTNumber:      "33AAACA1234F",
		Contact:        "Ravi",
		MobileNumber:   "9876543210",
		PhoneNumber:    "044-2345678",
		Email:          "accounts@acme.com",
		CreditDays:     "30",
		OpeningBalance: "750.25",
		BalanceType:    Credit,
		IsActive:       true,
	}

	record, err := FormToRecord(form)
	require.NoError(t, err)

	assert.Equal(t, "ACME TRADERS", record.Supplier)
	assert.Equal(t, 33, record.City)
	assert.Equal(t, 2, record.LedgerGroupID)
	assert.Equal(t, "9876543210", record.MobileNo)
	assert.Equal(t, 30, record.CreditDays)
	assert.Equal(t, -750.25, record.OpBalAmt)
	assert.Equal(t, "Cr", record.OpType)
	assert.Equal(t, "Y", record.Isactive)

	// Identity and scope are never the mapper's business.
	assert.Zero(t, record.SupplierID)
	assert.Zero(t, record.CompID)
	assert.True(t, record.LastUpdate.IsZero())
}

func TestFormToRecordInvalidReferences(t *testing.T) {
	form := validForm()
	form.City = "not-a-city"
	_, err := FormToRecord(form)
	assert.ErrorIs(t, err, ErrInvalidReference)

	form = validForm()
	form.LedgerGroupID = ""
	_, err = FormToRecord(form)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestFormToRecordInactiveFlag(t *testing.T) {
	form := validForm()
	form.IsActive = false
	record, err := FormToRecord(form)
	require.NoError(t, err)
	assert.Equal(t, "N", record.Isactive)
}

func TestRecordToFormDefensiveDefaults(t *testing.T) {
	form := RecordToForm(model.Supplier{Isactive: "X"})

	assert.Equal(t, "", form.City, "missing city becomes empty selection")
	assert.Equal(t, "", form.LedgerGroupID)
	assert.False(t, form.IsActive, "anything other than Y is inactive")
	assert.Equal(t, "0.00", form.OpeningBalance)
	assert.Equal(t, Debit, form.BalanceType)
}

func TestRecordRoundTrip(t *testing.T) {
	stored := model.Supplier{
		SupplierID:    7,
		Supplier:      "ACME TRADERS",
		PrintName:     "Acme",
		Add1:          "12 Market Road",
		Add2:          "Old Town",
		City:          33,
		Phone:         "044-2345678",
		TNGSTNo:       "33AAACA1234F",
		Mailid:        "accounts@acme.com",
		ContactPerson: "Ravi",
		MobileNo:      "9876543210",
		Isactive:      "Y",
		CompID:        1,
		LedgerGroupID: 2,
		CreditDays:    45,
		OpBalAmt:      -750.25,
		OpType:        "Cr",
		LastUpdate:    time.Now(),
	}

	roundTripped, err := FormToRecord(RecordToForm(stored))
	require.NoError(t, err)

	// The mapper does not carry identity, scope or timestamps; everything
	// else must survive the trip.
	stored.SupplierID = 0
	stored.CompID = 0
	stored.OpDt = time.Time{}
	stored.LastUpdate = time.Time{}
	assert.Equal(t, stored, roundTripped)
}

func TestRecordRoundTripNormalizesInactiveFlag(t *testing.T) {
	stored := model.Supplier{
		Supplier:      "STALE FLAG",
		City:          7,
		LedgerGroupID: 1,
		MobileNo:      "9876543210",
		Isactive:      "n",
		OpType:        "Dr",
	}

	roundTripped, err := FormToRecord(RecordToForm(stored))
	require.NoError(t, err)
	assert.Equal(t, "N", roundTripped.Isactive)
}
