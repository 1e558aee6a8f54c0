package finance

import (
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolio(t *testing.T) {
	v := models.PortfolioVariables{WeightA: 0.5, ReturnA: 0.1, ReturnB: 0.2, VolatilityA: 0.1, VolatilityB: 0.2}

	res := Portfolio(v)
	assert.InDelta(t, 0.15, res.ExpectedReturn, 1e-12)
	assert.InDelta(t, 0.111803, res.Volatility, 1e-6)
	assert.Equal(t, 0.5, res.WeightB)

	v.Correlation = 1
	assert.InDelta(t, 0.15, Portfolio(v).Volatility, 1e-12)

	v.Correlation = 5
	assert.InDelta(t, 0.15, Portfolio(v).Volatility, 1e-12, "correlation is clamped")
}

func TestFrontier(t *testing.T) {
	v := models.PortfolioVariables{ReturnA: 0.1, ReturnB: 0.2, VolatilityA: 0.1, VolatilityB: 0.2, Correlation: -0.5}

	frontier := Frontier(v, 5)
	require.Len(t, frontier, 5)
	assert.InDelta(t, 0.2, frontier[0].ExpectedReturn, 1e-12)
	assert.InDelta(t, 0.1, frontier[4].ExpectedReturn, 1e-12)
	// Diversification with negative correlation beats holding either asset alone.
	assert.Less(t, frontier[2].Volatility, 0.1)
}
