// Package micro implements linear partial-equilibrium market models.
package micro

import (
	"math"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/Dan9191/econosfera/internal/utils"
)

const minSlope = 0.01

func slopes(v models.MarketVariables) (b, d float64) {
	return math.Max(v.DemandSlope, minSlope), math.Max(v.SupplySlope, minSlope)
}

// intersect returns the unrounded intersection of demand and supply
func intersect(a, b, c, d float64) (q, p float64, ok bool) {
	if a <= c {
		return 0, 0, false
	}
	q = (a - c) / (b + d)
	p = a - b*q
	if q <= 0 || p <= 0 {
		return 0, 0, false
	}
	return q, p, true
}

// Equilibrium intersects demand P = a - bQ with supply P = c + dQ.
// It returns false when no positive price and quantity clear the market.
func Equilibrium(v models.MarketVariables) (models.MarketResults, bool) {
	a, c := v.DemandIntercept, v.SupplyIntercept
	b, d := slopes(v)

	q, p, ok := intersect(a, b, c, d)
	if !ok {
		return models.MarketResults{}, false
	}

	cs := 0.5 * (a - p) * q
	ps := 0.5 * (p - c) * q

	return models.MarketResults{
		Quantity:         utils.Round2(q),
		Price:            utils.Round2(p),
		ConsumerSurplus:  utils.Round2(cs),
		ProducerSurplus:  utils.Round2(ps),
		TotalSurplus:     utils.Round2(cs + ps),
		DemandElasticity: utils.Round2(-(1 / b) * (p / q)),
		SupplyElasticity: utils.Round2((1 / d) * (p / q)),
	}, true
}

// ApplyTax shifts supply up by a per-unit tax collected from sellers and
// reports who bears it. Negative taxes are rejected.
func ApplyTax(v models.MarketVariables, tax float64) (models.TaxIncidence, bool) {
	if tax < 0 {
		return models.TaxIncidence{}, false
	}
	a, c := v.DemandIntercept, v.SupplyIntercept
	b, d := slopes(v)

	q0, p0, ok := intersect(a, b, c, d)
	if !ok {
		return models.TaxIncidence{}, false
	}
	q1, buyer, ok := intersect(a, b, c+tax, d)
	if !ok {
		return models.TaxIncidence{}, false
	}

	res := models.TaxIncidence{
		Tax:            utils.Round2(tax),
		Quantity:       utils.Round2(q1),
		BuyerPrice:     utils.Round2(buyer),
		SellerPrice:    utils.Round2(buyer - tax),
		TaxRevenue:     utils.Round2(tax * q1),
		DeadweightLoss: utils.Round2(0.5 * tax * (q0 - q1)),
	}
	if tax > 0 {
		res.BuyerShare = utils.Round2((buyer - p0) / tax)
	}
	return res, true
}

// ControlPrice evaluates a regulated price. A ceiling binds below the
// equilibrium price and causes a shortage; a floor binds above it and causes
// a surplus. Non-binding controls leave the market at equilibrium.
func ControlPrice(v models.MarketVariables, kind models.PriceControlKind, price float64) (models.PriceControl, bool) {
	if kind != models.PriceCeiling && kind != models.PriceFloor {
		return models.PriceControl{}, false
	}
	a, c := v.DemandIntercept, v.SupplyIntercept
	b, d := slopes(v)

	q, p, ok := intersect(a, b, c, d)
	if !ok {
		return models.PriceControl{}, false
	}

	res := models.PriceControl{Kind: kind, ControlPrice: utils.Round2(price)}
	binding := (kind == models.PriceCeiling && price < p) || (kind == models.PriceFloor && price > p)
	if !binding {
		res.QuantityDemanded = utils.Round2(q)
		res.QuantitySupplied = utils.Round2(q)
		return res, true
	}

	qd := math.Max((a-price)/b, 0)
	qs := math.Max((price-c)/d, 0)
	res.Binding = true
	res.QuantityDemanded = utils.Round2(qd)
	res.QuantitySupplied = utils.Round2(qs)
	if kind == models.PriceCeiling {
		res.Shortage = utils.Round2(qd - qs)
	} else {
		res.Surplus = utils.Round2(qs - qd)
	}
	return res, true
}

// DemandCurve samples demand (X = quantity, Y = price) from zero up to maxQuantity,
// stopping where the price would turn negative.
func DemandCurve(v models.MarketVariables, maxQuantity float64, steps int) []models.Point {
	b, _ := slopes(v)
	points := make([]models.Point, 0, steps)
	for _, q := range utils.Linspace(0, maxQuantity, steps) {
		p := v.DemandIntercept - b*q
		if p < 0 {
			break
		}
		points = append(points, models.Point{X: utils.Round2(q), Y: utils.Round2(p)})
	}
	return points
}

// SupplyCurve samples supply (X = quantity, Y = price) from zero up to maxQuantity
func SupplyCurve(v models.MarketVariables, maxQuantity float64, steps int) []models.Point {
	_, d := slopes(v)
	points := make([]models.Point, 0, steps)
	for _, q := range utils.Linspace(0, maxQuantity, steps) {
		points = append(points, models.Point{X: utils.Round2(q), Y: utils.Round2(v.SupplyIntercept + d*q)})
	}
	return points
}
