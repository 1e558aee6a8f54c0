package report

import (
	"strconv"

	"github.com/Dan9191/econosfera/internal/models"
)

// Macro describes a Keynesian multiplier run
func Macro(v models.MacroVariables, res models.MacroResults) Report {
	return Report{
		Title: "Modelo keynesiano del multiplicador",
		Tables: []Table{
			kv("Supuestos",
				"Consumo autónomo", money(v.AutonomousConsumption),
				"Propensión marginal a consumir", number(v.MPC),
				"Inversión", money(v.Investment),
				"Gasto público", money(v.GovernmentSpending),
				"Impuestos", money(v.Taxes),
			),
			kv("Resultados",
				"Gasto autónomo", money(res.AutonomousSpending),
				"Multiplicador del gasto", number(res.SpendingMultiplier),
				"Multiplicador de impuestos", number(res.TaxMultiplier),
				"Multiplicador de presupuesto equilibrado", number(res.BalancedBudgetMultiplier),
				"Ingreso de equilibrio", money(res.EquilibriumIncome),
				"Consumo", money(res.Consumption),
				"Ahorro privado", money(res.PrivateSaving),
				"Ahorro público", money(res.PublicSaving),
				"Ahorro nacional", money(res.NationalSaving),
			),
		},
	}
}

// ISLM describes an IS-LM run; infeasible runs get a note instead of results
func ISLM(v models.ISLMVariables, res models.ISLMResults, ok bool) Report {
	r := Report{
		Title: "Modelo IS-LM",
		Tables: []Table{kv("Supuestos",
			"Consumo autónomo", money(v.AutonomousConsumption),
			"Propensión marginal a consumir", number(v.MPC),
			"Inversión autónoma", money(v.Investment),
			"Gasto público", money(v.GovernmentSpending),
			"Impuestos", money(v.Taxes),
			"Sensibilidad de la inversión (b)", number(v.InvestmentSensitivity),
			"Sensibilidad de la demanda de dinero al ingreso (k)", number(v.MoneyIncomeSensitivity),
			"Sensibilidad de la demanda de dinero a la tasa (h)", number(v.MoneyRateSensitivity),
			"Oferta monetaria real", money(v.RealMoneySupply),
		)},
	}
	if !ok {
		r.Tables = append(r.Tables, kv("Resultados", "Equilibrio", "Sin equilibrio factible; ajuste los parámetros"))
		return r
	}
	r.Tables = append(r.Tables, kv("Resultados",
		"Ingreso de equilibrio", money(res.Income),
		"Tasa de interés", number(res.InterestRate),
		"Consumo", money(res.Consumption),
		"Inversión", money(res.Investment),
		"Demanda de dinero", money(res.MoneyDemand),
		"Multiplicador", number(res.Multiplier),
	))
	return r
}

// Market describes a market equilibrium run
func Market(v models.MarketVariables, res models.MarketResults, ok bool) Report {
	r := Report{
		Title: "Equilibrio de mercado",
		Tables: []Table{kv("Supuestos",
			"Intercepto de la demanda", money(v.DemandIntercept),
			"Pendiente de la demanda", number(v.DemandSlope),
			"Intercepto de la oferta", money(v.SupplyIntercept),
			"Pendiente de la oferta", number(v.SupplySlope),
		)},
	}
	if !ok {
		r.Tables = append(r.Tables, kv("Resultados", "Equilibrio", "Sin equilibrio con cantidad positiva"))
		return r
	}
	r.Tables = append(r.Tables, kv("Resultados",
		"Cantidad de equilibrio", number(res.Quantity),
		"Precio de equilibrio", money(res.Price),
		"Excedente del consumidor", money(res.ConsumerSurplus),
		"Excedente del productor", money(res.ProducerSurplus),
		"Excedente total", money(res.TotalSurplus),
		"Elasticidad de la demanda", number(res.DemandElasticity),
		"Elasticidad de la oferta", number(res.SupplyElasticity),
	))
	return r
}

// Elasticity describes an arc elasticity reading
func Elasticity(v models.ElasticityVariables, res models.ElasticityResults, ok bool) Report {
	r := Report{
		Title: "Elasticidad arco",
		Tables: []Table{kv("Observaciones",
			"Precio inicial", money(v.Price1),
			"Cantidad inicial", number(v.Quantity1),
			"Precio final", money(v.Price2),
			"Cantidad final", number(v.Quantity2),
		)},
	}
	if !ok {
		r.Tables = append(r.Tables, kv("Resultados", "Elasticidad", "Indefinida para estas observaciones"))
		return r
	}
	r.Tables = append(r.Tables, kv("Resultados",
		"Elasticidad", number(res.Elasticity),
		"Clasificación", string(res.Class),
		"Interpretación", res.Interpretation,
		"Efecto en el ingreso", res.RevenueEffect,
	))
	return r
}

// Bond describes a bond valuation with its discounted cash flows
func Bond(v models.BondVariables, res models.BondResults) Report {
	flows := Table{Title: "Flujos", Header: []string{"Periodo", "Flujo", "Valor presente"}}
	for _, cf := range res.CashFlows {
		flows.Rows = append(flows.Rows, []string{strconv.Itoa(cf.Period), money(cf.Flow), money(cf.PresentValue)})
	}
	return Report{
		Title: "Valuación de bono",
		Tables: []Table{
			kv("Supuestos",
				"Valor nominal", money(v.FaceValue),
				"Tasa cupón", percent(v.CouponRate),
				"Tasa de mercado", percent(v.MarketRate),
				"Plazo (años)", strconv.Itoa(v.Years),
				"Pagos por año", strconv.Itoa(v.Frequency),
			),
			kv("Resultados",
				"Precio", money(res.Price),
				"Cupón por periodo", money(res.CouponPayment),
				"Duración de Macaulay (años)", number(res.MacaulayDuration),
			),
			flows,
		},
	}
}

// Cetes describes a CETES valuation
func Cetes(res models.CetesResults) Report {
	return Report{
		Title: "CETES",
		Tables: []Table{kv("Resultados",
			"Valor nominal", money(res.FaceValue),
			"Plazo (días)", strconv.Itoa(res.Days),
			"Precio", number(res.Price),
			"Rendimiento anual", percent(res.Yield),
			"Tasa de descuento", percent(res.DiscountRate),
			"Ganancia", number(res.Gain),
		)},
	}
}

// Amortization describes a loan schedule
func Amortization(v models.LoanVariables, res models.AmortizationResults) Report {
	schedule := Table{Title: "Tabla de amortización", Header: []string{"Mes", "Pago", "Interés", "Capital", "Saldo"}}
	for _, row := range res.Rows {
		schedule.Rows = append(schedule.Rows, []string{
			strconv.Itoa(row.Period), money(row.Payment), money(row.Interest), money(row.Principal), money(row.Balance),
		})
	}
	return Report{
		Title: "Crédito a pagos fijos",
		Tables: []Table{
			kv("Supuestos",
				"Monto", money(v.Principal),
				"Tasa anual", percent(v.AnnualRate),
				"Plazo (meses)", strconv.Itoa(v.Months),
			),
			kv("Resultados",
				"Pago mensual", money(res.Payment),
				"Total pagado", money(res.TotalPaid),
				"Intereses totales", money(res.TotalInterest),
			),
			schedule,
		},
	}
}

// Portfolio describes a two-asset portfolio
func Portfolio(v models.PortfolioVariables, res models.PortfolioResults) Report {
	return Report{
		Title: "Portafolio de dos activos",
		Tables: []Table{
			kv("Supuestos",
				"Rendimiento A", percent(v.ReturnA),
				"Rendimiento B", percent(v.ReturnB),
				"Volatilidad A", percent(v.VolatilityA),
				"Volatilidad B", percent(v.VolatilityB),
				"Correlación", number(v.Correlation),
			),
			kv("Resultados",
				"Peso A", percent(res.WeightA),
				"Peso B", percent(res.WeightB),
				"Rendimiento esperado", percent(res.ExpectedReturn),
				"Volatilidad", percent(res.Volatility),
			),
		},
	}
}

// Cashflows describes an investment project evaluated by NPV and IRR
func Cashflows(rate float64, flows []float64, npv, irr float64, irrOK bool) Report {
	table := Table{Title: "Flujos", Header: []string{"Periodo", "Flujo"}}
	for t, cf := range flows {
		table.Rows = append(table.Rows, []string{strconv.Itoa(t), money(cf)})
	}
	irrText := "No converge"
	if irrOK {
		irrText = percent(irr)
	}
	return Report{
		Title: "Evaluación de proyecto",
		Tables: []Table{
			kv("Resultados",
				"Tasa de descuento", percent(rate),
				"VPN", money(npv),
				"TIR", irrText,
			),
			table,
		},
	}
}
