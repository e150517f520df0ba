package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/ledger"
)

func entryForm() ledger.LedgerForm {
	return ledger.LedgerForm{
		LedgerName:     "ACME TRADERS",
		LedgerGroupID:  "2",
		City:           "1",
		MobileNumber:   "9876543210",
		Email:          "acme@example.com",
		OpeningBalance: "1500.00",
		BalanceType:    ledger.Debit,
		IsActive:       true,
	}
}

func TestSubmitFormRejectsInvalidWithoutNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	form := entryForm()
	form.MobileNumber = "12345"

	lc := NewLedgerClient(server.URL)
	_, errs, err := lc.SubmitForm(context.Background(), form)

	require.NoError(t, err)
	assert.Error(t, errs.MobileNumber)
	assert.False(t, called)
}

func TestSubmitFormScopesRecordToClientCompany(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "Supplier created successfully", "supplierId": 11}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	lc.CompanyID = 3

	id, errs, err := lc.SubmitForm(context.Background(), entryForm())
	require.NoError(t, err)
	require.True(t, errs.OK())
	assert.Equal(t, 11, id)

	assert.Equal(t, float64(3), got["CompId"])
	assert.Equal(t, "ACME TRADERS", got["Supplier"])
	assert.Equal(t, float64(1500), got["OpBalAmt"])
	assert.Equal(t, "Dr", got["OpType"])
}

func TestLoadFormRoundTripsRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"SupplierId": 5,
			"Supplier": "BLUE METALS",
			"City": 7,
			"LedgerGroupId": 2,
			"Mobile_No": "9123456789",
			"Isactive": "Y",
			"OpBalAmt": -250.5,
			"OpType": "Cr"
		}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	form, err := lc.LoadForm(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "BLUE METALS", form.LedgerName)
	assert.Equal(t, "7", form.City)
	assert.Equal(t, "2", form.LedgerGroupID)
	assert.True(t, form.IsActive)
	assert.Equal(t, ledger.Credit, form.BalanceType)
	assert.Equal(t, "250.50", form.OpeningBalance)
}
