package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBalance(t *testing.T) {
	tests := []struct {
		name        string
		magnitude   string
		balanceType BalanceType
		expected    float64
		wantErr     bool
	}{
		{name: "debit stays positive", magnitude: "1500", balanceType: Debit, expected: 1500},
		{name: "credit is negated", magnitude: "1500", balanceType: Credit, expected: -1500},
		{name: "decimal magnitude", magnitude: "99.95", balanceType: Credit, expected: -99.95},
		{name: "toggle wins over typed sign for debit", magnitude: "-250", balanceType: Debit, expected: 250},
		{name: "toggle wins over typed sign for credit", magnitude: "-250", balanceType: Credit, expected: -250},
		{name: "empty text is zero", magnitude: "", balanceType: Credit, expected: 0},
		{name: "whitespace is zero", magnitude: "   ", balanceType: Debit, expected: 0},
		{name: "zero debit", magnitude: "0", balanceType: Debit, expected: 0},
		{name: "zero credit", magnitude: "0", balanceType: Credit, expected: 0},
		{name: "not a number", magnitude: "12a4", balanceType: Debit, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := NormalizeBalance(tt.magnitude, tt.balanceType)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestDenormalizeBalance(t *testing.T) {
	tests := []struct {
		value        float64
		magnitude    string
		balanceType  BalanceType
	}{
		{value: 1234.5, magnitude: "1234.50", balanceType: Debit},
		{value: -99, magnitude: "99.00", balanceType: Credit},
		{value: 0, magnitude: "0.00", balanceType: Debit},
		{value: -0.004, magnitude: "0.00", balanceType: Credit},
	}

	for _, tt := range tests {
		t.Run(tt.magnitude+" "+string(tt.balanceType), func(t *testing.T) {
			magnitude, balanceType := DenormalizeBalance(tt.value)
			assert.Equal(t, tt.magnitude, magnitude)
			assert.Equal(t, tt.balanceType, balanceType)
		})
	}
}

func TestBalanceRoundTrip(t *testing.T) {
	magnitudes := []string{"0", "1", "10.5", "999.99", "1234567.89", "0.01"}
	for _, magnitude := range magnitudes {
		for _, balanceType := range []BalanceType{Debit, Credit} {
			t.Run(fmt.Sprintf("%s %s", magnitude, balanceType), func(t *testing.T) {
				value, err := NormalizeBalance(magnitude, balanceType)
				require.NoError(t, err)

				gotMagnitude, gotType := DenormalizeBalance(value)
				if value == 0 {
					// Zero always renders as a debit balance.
					assert.Equal(t, Debit, gotType)
				} else {
					assert.Equal(t, balanceType, gotType)
				}

				// Re-normalizing the displayed magnitude reproduces the value.
				roundTripped, err := NormalizeBalance(gotMagnitude, balanceType)
				require.NoError(t, err)
				assert.InDelta(t, value, roundTripped, 0.005)
			})
		}
	}
}
