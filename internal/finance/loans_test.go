package finance

import (
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortize(t *testing.T) {
	res, ok := Amortize(models.LoanVariables{Principal: 10000, AnnualRate: 0.12, Months: 12})
	require.True(t, ok)
	require.Len(t, res.Rows, 12)

	assert.InDelta(t, 888.49, res.Payment, 0.01)
	assert.InDelta(t, 661.85, res.TotalInterest, 0.01)
	assert.InDelta(t, res.TotalPaid-res.TotalInterest, 10000, 1e-6)
	assert.Zero(t, res.Rows[11].Balance)

	var principal float64
	for _, row := range res.Rows {
		principal += row.Principal
	}
	assert.InDelta(t, 10000, principal, 1e-6)
	// Interest falls as the balance is repaid.
	assert.Greater(t, res.Rows[0].Interest, res.Rows[11].Interest)
}

func TestAmortizeZeroRate(t *testing.T) {
	res, ok := Amortize(models.LoanVariables{Principal: 12000, Months: 12})
	require.True(t, ok)
	assert.Equal(t, 1000.0, res.Payment)
	assert.Zero(t, res.TotalInterest)
	assert.Zero(t, res.Rows[11].Balance)
}

func TestAmortizeRejectsInvalid(t *testing.T) {
	_, ok := Amortize(models.LoanVariables{Principal: 0, AnnualRate: 0.1, Months: 12})
	assert.False(t, ok)
	_, ok = Amortize(models.LoanVariables{Principal: 1000, AnnualRate: 0.1})
	assert.False(t, ok)
}

func TestAmortizeTermLimit(t *testing.T) {
	res, ok := Amortize(models.LoanVariables{Principal: 1000, AnnualRate: 0.1, Months: MaxLoanMonths})
	require.True(t, ok)
	assert.Len(t, res.Rows, MaxLoanMonths)

	_, ok = Amortize(models.LoanVariables{Principal: 1000, AnnualRate: 0.1, Months: 2000000})
	assert.False(t, ok)
}
