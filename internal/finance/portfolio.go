package finance

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

// Portfolio combines two assets with weight WeightA in the first and the rest
// in the second. Correlation is clamped to [-1, 1].
func Portfolio(v models.PortfolioVariables) models.PortfolioResults {
	wa := v.WeightA
	wb := 1 - wa
	rho := utils.Clamp(v.Correlation, -1, 1)

	variance := wa*wa*v.VolatilityA*v.VolatilityA +
		wb*wb*v.VolatilityB*v.VolatilityB +
		2*wa*wb*rho*v.VolatilityA*v.VolatilityB

	return models.PortfolioResults{
		WeightA:        wa,
		WeightB:        wb,
		ExpectedReturn: wa*v.ReturnA + wb*v.ReturnB,
		Volatility:     math.Sqrt(math.Max(variance, 0)),
	}
}

// Frontier sweeps the weight of the first asset from 0 to 1
func Frontier(v models.PortfolioVariables, steps int) []models.PortfolioResults {
	weights := utils.Linspace(0, 1, steps)
	out := make([]models.PortfolioResults, 0, len(weights))
	for _, w := range weights {
		v.WeightA = w
		out = append(out, Portfolio(v))
	}
	return out
}
