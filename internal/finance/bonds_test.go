package finance

import (
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBondPrice(t *testing.T) {
	par, ok := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.05, MarketRate: 0.05, Years: 10, Frequency: 2})
	require.True(t, ok)
	assert.InDelta(t, 1000, par.Price, 1e-6)
	assert.Equal(t, 25.0, par.CouponPayment)
	assert.Equal(t, 20, par.Periods)
	require.Len(t, par.CashFlows, 20)
	assert.Equal(t, 1025.0, par.CashFlows[19].Flow)

	premium, _ := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.08, MarketRate: 0.05, Years: 10, Frequency: 2})
	assert.Greater(t, premium.Price, 1000.0)

	discount, _ := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.02, MarketRate: 0.05, Years: 10, Frequency: 2})
	assert.Less(t, discount.Price, 1000.0)
}

func TestBondDuration(t *testing.T) {
	zero, ok := BondPrice(models.BondVariables{FaceValue: 1000, MarketRate: 0.06, Years: 5, Frequency: 1})
	require.True(t, ok)
	assert.InDelta(t, 5, zero.MacaulayDuration, 1e-9)

	coupon, _ := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.06, MarketRate: 0.06, Years: 5, Frequency: 1})
	assert.Less(t, coupon.MacaulayDuration, 5.0)
}

func TestBondPricePeriodLimit(t *testing.T) {
	res, ok := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.05, MarketRate: 0.05, Years: 100, Frequency: 12})
	require.True(t, ok)
	assert.Len(t, res.CashFlows, MaxBondPeriods)

	_, ok = BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.05, MarketRate: 0.05, Years: 1000000, Frequency: 2})
	assert.False(t, ok)

	_, ok = BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.05, MarketRate: 0.05, Years: 2, Frequency: 1 << 40})
	assert.False(t, ok)
}

func TestBondPriceRejectsEmptyBond(t *testing.T) {
	_, ok := BondPrice(models.BondVariables{FaceValue: 1000, CouponRate: 0.05, MarketRate: 0.05})
	assert.False(t, ok)
}

func TestCetes(t *testing.T) {
	priced, ok := CetesPrice(10, 0.11, 28)
	require.True(t, ok)
	assert.InDelta(t, 9.91517, priced.Price, 1e-5)
	assert.InDelta(t, 10-priced.Price, priced.Gain, 1e-12)
	assert.Less(t, priced.DiscountRate, priced.Yield)

	back, ok := CetesYield(10, priced.Price, 28)
	require.True(t, ok)
	assert.InDelta(t, 0.11, back.Yield, 1e-12)

	_, ok = CetesPrice(10, 0.11, 0)
	assert.False(t, ok)
	_, ok = CetesYield(10, 0, 28)
	assert.False(t, ok)
}
