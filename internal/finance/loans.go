package finance

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
)

// MaxLoanMonths bounds the schedules Amortize will build
const MaxLoanMonths = 600

// Payment returns the fixed installment of a loan of principal repaid over n
// periods at rate per period. A near-zero rate splits principal evenly.
func Payment(principal, rate float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if math.Abs(rate) < nearZeroRate {
		return principal / float64(n)
	}
	return principal * rate / (1 - math.Pow(1+rate, -float64(n)))
}

// Amortize builds a French method schedule for a loan with monthly
// installments. The last row absorbs rounding so the balance closes at zero.
// Terms beyond MaxLoanMonths are rejected.
func Amortize(v models.LoanVariables) (models.AmortizationResults, bool) {
	if v.Principal <= 0 || v.Months <= 0 || v.Months > MaxLoanMonths || v.AnnualRate < 0 {
		return models.AmortizationResults{}, false
	}

	rate := v.AnnualRate / 12
	payment := Payment(v.Principal, rate, v.Months)
	res := models.AmortizationResults{
		Payment: payment,
		Rows:    make([]models.AmortizationRow, 0, v.Months),
	}

	balance := v.Principal
	for t := 1; t <= v.Months; t++ {
		interest := balance * rate
		principal := payment - interest
		installment := payment
		if t == v.Months {
			principal = balance
			installment = principal + interest
		}
		balance -= principal
		if math.Abs(balance) < 1e-9 {
			balance = 0
		}

		res.TotalPaid += installment
		res.TotalInterest += interest
		res.Rows = append(res.Rows, models.AmortizationRow{
			Period:    t,
			Payment:   installment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return res, true
}
