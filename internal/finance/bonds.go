package finance

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
)

// cetesDayCount is the money-market day count convention for CETES
const cetesDayCount = 360.0

// MaxBondPeriods bounds the cash-flow tables BondPrice will build
const MaxBondPeriods = 1200

// BondPrice discounts every coupon and the face value at the per-period
// market rate. It returns false for bonds without periods or with more than
// MaxBondPeriods of them.
func BondPrice(v models.BondVariables) (models.BondResults, bool) {
	freq := v.Frequency
	if freq <= 0 {
		freq = 1
	}
	if v.Years <= 0 || v.Years > MaxBondPeriods || freq > MaxBondPeriods {
		return models.BondResults{}, false
	}
	n := v.Years * freq
	if n > MaxBondPeriods || v.FaceValue <= 0 {
		return models.BondResults{}, false
	}

	coupon := v.FaceValue * v.CouponRate / float64(freq)
	i := v.MarketRate / float64(freq)
	if i <= -1 {
		return models.BondResults{}, false
	}

	res := models.BondResults{
		CouponPayment: coupon,
		Periods:       n,
		CashFlows:     make([]models.BondCashFlow, 0, n),
	}

	var weighted float64
	for t := 1; t <= n; t++ {
		flow := coupon
		if t == n {
			flow += v.FaceValue
		}
		pv := flow / math.Pow(1+i, float64(t))
		res.Price += pv
		weighted += float64(t) * pv
		res.CashFlows = append(res.CashFlows, models.BondCashFlow{Period: t, Flow: flow, PresentValue: pv})
	}
	if res.Price > 0 {
		res.MacaulayDuration = weighted / res.Price / float64(freq)
	}
	return res, true
}

// CetesPrice prices a discount certificate of faceValue maturing in days at
// the annual simple yield.
func CetesPrice(faceValue, yield float64, days int) (models.CetesResults, bool) {
	if faceValue <= 0 || days <= 0 {
		return models.CetesResults{}, false
	}
	factor := 1 + yield*float64(days)/cetesDayCount
	if factor <= 0 {
		return models.CetesResults{}, false
	}
	price := faceValue / factor
	return cetesResults(faceValue, price, yield, days), true
}

// CetesYield recovers the annual simple yield implied by a purchase price
func CetesYield(faceValue, price float64, days int) (models.CetesResults, bool) {
	if faceValue <= 0 || price <= 0 || days <= 0 {
		return models.CetesResults{}, false
	}
	yield := (faceValue/price - 1) * cetesDayCount / float64(days)
	return cetesResults(faceValue, price, yield, days), true
}

func cetesResults(faceValue, price, yield float64, days int) models.CetesResults {
	return models.CetesResults{
		FaceValue:    faceValue,
		Days:         days,
		Price:        price,
		Yield:        yield,
		DiscountRate: (1 - price/faceValue) * cetesDayCount / float64(days),
		Gain:         faceValue - price,
	}
}
