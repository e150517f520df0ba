package client

import (
	"context"
	"fmt"

	"ledger-service/internal/ledger"
)

// SubmitForm validates a data-entry form, converts it to a supplier
// record scoped to the client's company, and creates it on the server.
// Validation failures are returned as FormErrors without touching the
// network.
func (lc *LedgerClient) SubmitForm(ctx context.Context, form ledger.LedgerForm) (int, ledger.FormErrors, error) {
	if errs := ledger.ValidateForm(form); !errs.OK() {
		return 0, errs, nil
	}

	record, err := ledger.FormToRecord(form)
	if err != nil {
		return 0, ledger.FormErrors{}, fmt.Errorf("map form: %w", err)
	}
	record.CompID = lc.CompanyID

	id, err := lc.CreateSupplier(ctx, &record)
	if err != nil {
		return 0, ledger.FormErrors{}, err
	}
	return id, ledger.FormErrors{}, nil
}

// UpdateForm validates an edited form and overwrites the identified
// supplier record.
func (lc *LedgerClient) UpdateForm(ctx context.Context, id int, form ledger.LedgerForm) (ledger.FormErrors, error) {
	if errs := ledger.ValidateForm(form); !errs.OK() {
		return errs, nil
	}

	record, err := ledger.FormToRecord(form)
	if err != nil {
		return ledger.FormErrors{}, fmt.Errorf("map form: %w", err)
	}
	record.CompID = lc.CompanyID

	if err := lc.UpdateSupplier(ctx, id, &record); err != nil {
		return ledger.FormErrors{}, err
	}
	return ledger.FormErrors{}, nil
}

// LoadForm fetches a supplier record and converts it to the editable
// form shape.
func (lc *LedgerClient) LoadForm(ctx context.Context, id int) (ledger.LedgerForm, error) {
	record, err := lc.Supplier(ctx, id)
	if err != nil {
		return ledger.LedgerForm{}, err
	}
	return ledger.RecordToForm(*record), nil
}
