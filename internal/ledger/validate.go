package ledger

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns carried over from the entry forms: mobile numbers are exactly
// ten digits, email only needs an "@" and a dotted domain segment.
var (
	mobileNumberPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern        = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// ValidateForm checks a ledger form against the submission rules and
// reports every violation at once; it never stops at the first failure.
// The same call backs the create form, the full edit form and the
// inline list edit. It has no side effects on the form.
func ValidateForm(form LedgerForm) FormErrors {
	var errs FormErrors

	if strings.TrimSpace(form.LedgerName) == "" {
		errs.LedgerName = fieldErr("ledgerName", ErrRequiredField)
	}

	mobile := strings.TrimSpace(form.MobileNumber)
	if mobile == "" {
		errs.MobileNumber = fieldErr("mobileNumber", ErrRequiredField)
	} else if !mobileNumberPattern.MatchString(form.MobileNumber) {
		errs.MobileNumber = fieldErr("mobileNumber", ErrInvalidFormat)
	}

	// Email is optional; only a non-empty value is checked.
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs.Email = fieldErr("email", ErrInvalidFormat)
	}

	// Opening balance is optional; only a non-empty value must parse.
	if form.OpeningBalance != "" {
		if _, err := strconv.ParseFloat(strings.TrimSpace(form.OpeningBalance), 64); err != nil {
			errs.OpeningBalance = fieldErr("openingBalance", ErrNotANumber)
		}
	}

	return errs
}
