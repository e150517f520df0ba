package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/model"
)

func TestLoginStoresTokenAndScope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"message": "Login successful",
			"token": "test-token",
			"user": {"UserId": 7, "IsAllComp": "N", "RightsCompId": 2, "companyId": 2}
		}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	user, err := lc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, 7, user.UserID)
	assert.Equal(t, 2, user.RightsCompID)
	assert.Equal(t, "test-token", lc.Token)
	assert.Equal(t, 2, lc.CompanyID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Invalid password"}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	_, err := lc.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrServer)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid password", apiErr.Message)
}

func TestNetworkFailureIsSentinel(t *testing.T) {
	lc := NewLedgerClient("http://127.0.0.1:1")
	lc.HTTPClient.Timeout = 200 * time.Millisecond

	_, err := lc.Suppliers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestSuppliersSendsCompanyScope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.URL.Query().Get("companyId"))
		assert.Equal(t, "4", r.Header.Get("company-id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"SupplierId": 1, "Supplier": "ACME TRADERS"}]`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	lc.CompanyID = 4

	suppliers, err := lc.Suppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "ACME TRADERS", suppliers[0].Supplier)
}

func TestSupplierNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Supplier not found"}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	_, err := lc.Supplier(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSupplierReturnsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message": "Supplier created successfully", "supplierId": 42}`))
	}))
	defer server.Close()

	lc := NewLedgerClient(server.URL)
	id, err := lc.CreateSupplier(context.Background(), &model.Supplier{Supplier: "NEW TRADERS"})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestSortByLastUpdate(t *testing.T) {
	base := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	suppliers := []model.Supplier{
		{SupplierID: 1, LastUpdate: base},
		{SupplierID: 2},
		{SupplierID: 3, LastUpdate: base.Add(2 * time.Hour)},
		{SupplierID: 4, LastUpdate: base.Add(time.Hour)},
	}

	SortByLastUpdate(suppliers)

	var order []int
	for _, s := range suppliers {
		order = append(order, s.SupplierID)
	}
	assert.Equal(t, []int{3, 4, 1, 2}, order)
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := []model.Supplier{
		{SupplierID: 1, Supplier: "ACME TRADERS", MobileNo: "9876543210"},
		{SupplierID: 2, Supplier: "BLUE METALS", PrintName: "Blue Metals Ltd"},
		{SupplierID: 3, Supplier: "GREEN AGRO", MobileNo: "9123456789"},
	}

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query returns all", "", []int{1, 2, 3}},
		{"matches name case-insensitively", "acme", []int{1}},
		{"matches print name", "metals ltd", []int{2}},
		{"matches mobile number", "9123", []int{3}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := FilterSuppliers(suppliers, tt.query)
			var ids []int
			for _, s := range matched {
				ids = append(ids, s.SupplierID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
