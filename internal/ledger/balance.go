package ledger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BalanceType is the debit/credit indicator shown next to the opening
// balance field.
type BalanceType string

const (
	Debit  BalanceType = "Dr"
	Credit BalanceType = "Cr"
)

// NormalizeBalance converts the opening-balance text plus the Dr/Cr
// toggle into the single signed value the supplier record stores.
// The toggle wins over any sign typed into the text: "Dr" always yields
// a non-negative value and "Cr" always a non-positive one. Empty text
// is treated as a zero balance.
func NormalizeBalance(magnitude string, balanceType BalanceType) (float64, error) {
	text := strings.TrimSpace(magnitude)
	if text == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, magnitude)
	}

	value = math.Abs(value)
	if balanceType == Credit {
		return -value, nil
	}
	return value, nil
}

// DenormalizeBalance splits a stored signed balance back into the
// magnitude text and Dr/Cr toggle used for display. A zero balance
// denormalizes to "Dr", matching the form's default state.
func DenormalizeBalance(value float64) (string, BalanceType) {
	balanceType := Debit
	if value < 0 {
		balanceType = Credit
	}
	return strconv.FormatFloat(math.Abs(value), 'f', 2, 64), balanceType
}
