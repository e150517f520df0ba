package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"ledger-service/internal/model"
)

// LedgerClient is the typed data-access layer over the ledger API. It
// is safe for sequential use; callers that share one across goroutines
// must not mutate Token or CompanyID concurrently.
type LedgerClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
	CompanyID  int
}

// NewLedgerClient builds a client for the given base URL, for example
// "http://localhost:3000".
func NewLedgerClient(baseURL string) *LedgerClient {
	return &LedgerClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// LoginResult is the identity payload returned on successful login.
type LoginResult struct {
	UserID       int    `json:"UserId"`
	IsAllComp    string `json:"IsAllComp"`
	RightsCompID int    `json:"RightsCompId"`
	CompanyID    int    `json:"companyId"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    LoginResult `json:"user"`
}

type writeResponse struct {
	Message    string `json:"message"`
	SupplierID int    `json:"supplierId"`
}

// Login authenticates and stores the returned token and company scope
// on the client for subsequent requests.
func (lc *LedgerClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := lc.do(ctx, http.MethodPost, "/api/login", body, &resp); err != nil {
		return nil, err
	}

	lc.Token = resp.Token
	lc.CompanyID = resp.User.CompanyID
	return &resp.User, nil
}

// Cities fetches the active city reference list.
func (lc *LedgerClient) Cities(ctx context.Context) ([]model.City, error) {
	var cities []model.City
	if err := lc.do(ctx, http.MethodGet, "/api/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// LedgerGroups fetches the ledger groups configured for a company.
func (lc *LedgerClient) LedgerGroups(ctx context.Context, compID int) ([]model.LedgerGroup, error) {
	var groups []model.LedgerGroup
	path := fmt.Sprintf("/api/ledger-groups/%d", compID)
	if err := lc.do(ctx, http.MethodGet, path, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Suppliers fetches every supplier in the client's company scope.
func (lc *LedgerClient) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := lc.do(ctx, http.MethodGet, "/api/suppliers", nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Supplier fetches a single supplier by ID.
func (lc *LedgerClient) Supplier(ctx context.Context, id int) (*model.Supplier, error) {
	var supplier model.Supplier
	path := fmt.Sprintf("/api/suppliers/%d", id)
	if err := lc.do(ctx, http.MethodGet, path, nil, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// CreateSupplier submits a new supplier record and returns its
// server-assigned ID.
func (lc *LedgerClient) CreateSupplier(ctx context.Context, s *model.Supplier) (int, error) {
	var resp writeResponse
	if err := lc.do(ctx, http.MethodPost, "/api/suppliers", s, &resp); err != nil {
		return 0, err
	}
	return resp.SupplierID, nil
}

// UpdateSupplier overwrites an existing supplier record.
func (lc *LedgerClient) UpdateSupplier(ctx context.Context, id int, s *model.Supplier) error {
	path := fmt.Sprintf("/api/suppliers/%d", id)
	return lc.do(ctx, http.MethodPut, path, s, &writeResponse{})
}

// ActiveCompany fetches the company the server considers active.
func (lc *LedgerClient) ActiveCompany(ctx context.Context) (*model.Company, error) {
	var company model.Company
	if err := lc.do(ctx, http.MethodGet, "/api/company-store/active", nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// do performs one API round trip. The company scope rides along as
// both a query parameter and a header because different endpoints read
// different ones.
func (lc *LedgerClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := lc.BaseURL + path
	if lc.CompanyID != 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		url += sep + "companyId=" + strconv.Itoa(lc.CompanyID)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if lc.CompanyID != 0 {
		req.Header.Set("company-id", strconv.Itoa(lc.CompanyID))
	}
	if lc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+lc.Token)
	}

	resp, err := lc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// SortByLastUpdate orders suppliers newest first. Records without a
// last-update timestamp sink to the end.
func SortByLastUpdate(suppliers []model.Supplier) {
	sort.SliceStable(suppliers, func(i, j int) bool {
		a, b := suppliers[i].LastUpdate, suppliers[j].LastUpdate
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}

// FilterSuppliers returns the suppliers whose name, print name or
// mobile number contains the query, case-insensitively. An empty query
// returns the input unchanged.
func FilterSuppliers(suppliers []model.Supplier, query string) []model.Supplier {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return suppliers
	}

	var matched []model.Supplier
	for _, s := range suppliers {
		if strings.Contains(strings.ToLower(s.Supplier), query) ||
			strings.Contains(strings.ToLower(s.PrintName), query) ||
			strings.Contains(s.MobileNo, query) {
			matched = append(matched, s)
		}
	}
	return matched
}
