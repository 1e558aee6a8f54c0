package micro

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

var guidance = map[models.ElasticityClass]struct {
	interpretation string
	revenue        string
}{
	models.Elastic: {
		"La cantidad demandada responde más que proporcionalmente a los cambios de precio.",
		"Subir el precio reduce el ingreso total; bajarlo lo aumenta.",
	},
	models.Inelastic: {
		"La cantidad demandada responde menos que proporcionalmente a los cambios de precio.",
		"Subir el precio aumenta el ingreso total; bajarlo lo reduce.",
	},
	models.Unitary: {
		"La cantidad demandada cambia en la misma proporción que el precio.",
		"El ingreso total no cambia ante variaciones de precio.",
	},
}

// Classify labels an elasticity by its magnitude relative to one, after
// rounding to two decimals.
func Classify(elasticity float64) models.ElasticityClass {
	abs := utils.Round2(math.Abs(elasticity))
	switch {
	case abs == 1:
		return models.Unitary
	case abs > 1:
		return models.Elastic
	default:
		return models.Inelastic
	}
}

// ArcElasticity computes the midpoint elasticity between two observations.
// It returns false when the price does not change or the averages are zero.
func ArcElasticity(v models.ElasticityVariables) (models.ElasticityResults, bool) {
	avgP := (v.Price1 + v.Price2) / 2
	avgQ := (v.Quantity1 + v.Quantity2) / 2
	if v.Price1 == v.Price2 || avgP == 0 || avgQ == 0 {
		return models.ElasticityResults{}, false
	}

	pctQ := (v.Quantity2 - v.Quantity1) / avgQ
	pctP := (v.Price2 - v.Price1) / avgP
	e := pctQ / pctP

	class := Classify(e)
	g := guidance[class]
	return models.ElasticityResults{
		Elasticity:     utils.Round2(e),
		Class:          class,
		Interpretation: g.interpretation,
		RevenueEffect:  g.revenue,
	}, true
}
