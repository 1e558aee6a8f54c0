// Package catalog holds the reference tables shown next to the simulators:
// the formulas each simulator evaluates and the schools of economic thought.
package catalog

import "strings"

// Category groups formulas by simulator
type Category string

const (
	Macro   Category = "macro"
	Micro   Category = "micro"
	Finance Category = "finanzas"
)

// Formula is a reference entry for one expression
type Formula struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Expression  string   `json:"expression"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Theory is a school of economic thought
type Theory struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Period    string   `json:"period"`
	Authors   []string `json:"authors"`
	KeyIdeas  []string `json:"key_ideas"`
	Relevance string   `json:"relevance"`
}

var formulas = []Formula{
	{"multiplicador-gasto", "Multiplicador del gasto", "k = 1 / (1 - PMC)", "Cambio en el ingreso de equilibrio por cada unidad adicional de gasto autónomo.", Macro},
	{"multiplicador-impuestos", "Multiplicador de impuestos", "kT = -PMC / (1 - PMC)", "Cambio en el ingreso por cada unidad adicional de impuestos.", Macro},
	{"ingreso-equilibrio", "Ingreso de equilibrio", "Y = k (C0 - PMC·T + I + G)", "Nivel de producción en que el gasto planeado iguala al ingreso.", Macro},
	{"curva-is", "Curva IS", "Y = k (A - b·r)", "Combinaciones de ingreso y tasa que equilibran el mercado de bienes.", Macro},
	{"curva-lm", "Curva LM", "M/P = k·Y - h·r", "Combinaciones de ingreso y tasa que equilibran el mercado de dinero.", Macro},
	{"equilibrio-mercado", "Equilibrio de mercado", "Q* = (a - c) / (b + d)", "Cantidad en que la demanda P = a - bQ corta a la oferta P = c + dQ.", Micro},
	{"excedente-consumidor", "Excedente del consumidor", "EC = ½ (a - P*) Q*", "Diferencia entre lo que los consumidores están dispuestos a pagar y lo que pagan.", Micro},
	{"excedente-productor", "Excedente del productor", "EP = ½ (P* - c) Q*", "Diferencia entre el precio recibido y el costo marginal de producir.", Micro},
	{"elasticidad-arco", "Elasticidad arco", "E = (ΔQ / Q̄) / (ΔP / P̄)", "Sensibilidad de la cantidad ante cambios de precio usando promedios.", Micro},
	{"valor-futuro", "Valor futuro", "VF = VP (1 + i)^n", "Valor de un capital tras n periodos de interés compuesto.", Finance},
	{"valor-presente", "Valor presente", "VP = VF / (1 + i)^n", "Valor hoy de un monto futuro descontado.", Finance},
	{"precio-bono", "Precio de un bono", "P = Σ C / (1 + i)^t + VN / (1 + i)^n", "Suma de cupones y valor nominal descontados a la tasa de mercado.", Finance},
	{"precio-cetes", "Precio de CETES", "P = VN / (1 + r·t / 360)", "Precio de un certificado cupón cero a tasa de rendimiento simple.", Finance},
	{"anualidad", "Valor futuro de una anualidad", "VF = A ((1 + i)^n - 1) / i", "Acumulación de aportaciones periódicas iguales.", Finance},
	{"pago-fijo", "Pago de un crédito", "A = P·i / (1 - (1 + i)^-n)", "Cuota constante del sistema francés de amortización.", Finance},
	{"vpn", "Valor presente neto", "VPN = Σ Ft / (1 + i)^t", "Valor de un proyecto descontando todos sus flujos.", Finance},
	{"tir", "Tasa interna de retorno", "Σ Ft / (1 + TIR)^t = 0", "Tasa que hace cero el VPN del proyecto.", Finance},
	{"wacc", "Costo promedio ponderado de capital", "WACC = E/V·Re + D/V·Rd (1 - t)", "Costo de financiamiento de la empresa ponderado por su estructura de capital.", Finance},
	{"precio-forward", "Precio forward", "F = S e^{(r - q) T}", "Precio de entrega pactado hoy para una fecha futura.", Finance},
	{"punto-equilibrio", "Punto de equilibrio", "Q = CF / (P - CV)", "Unidades necesarias para cubrir los costos fijos.", Finance},
	{"portafolio", "Riesgo de un portafolio", "σp = √(w1²σ1² + w2²σ2² + 2w1w2ρσ1σ2)", "Volatilidad de una combinación de dos activos.", Finance},
}

var theories = []Theory{
	{
		ID: "clasica", Name: "Escuela clásica", Period: "1776–1870",
		Authors:   []string{"Adam Smith", "David Ricardo", "John Stuart Mill"},
		KeyIdeas:  []string{"Mano invisible", "Ventaja comparativa", "Teoría del valor trabajo"},
		Relevance: "Fundamentos del libre mercado y del comercio internacional.",
	},
	{
		ID: "marxista", Name: "Economía marxista", Period: "1867–",
		Authors:   []string{"Karl Marx", "Friedrich Engels"},
		KeyIdeas:  []string{"Plusvalía", "Lucha de clases", "Acumulación de capital"},
		Relevance: "Crítica de la distribución del ingreso bajo el capitalismo.",
	},
	{
		ID: "neoclasica", Name: "Escuela neoclásica", Period: "1870–",
		Authors:   []string{"Alfred Marshall", "Léon Walras", "Vilfredo Pareto"},
		KeyIdeas:  []string{"Análisis marginal", "Equilibrio general", "Eficiencia de Pareto"},
		Relevance: "Base de la microeconomía moderna de oferta y demanda.",
	},
	{
		ID: "keynesiana", Name: "Economía keynesiana", Period: "1936–",
		Authors:   []string{"John Maynard Keynes", "John Hicks", "Alvin Hansen"},
		KeyIdeas:  []string{"Demanda agregada", "Multiplicador", "Modelo IS-LM"},
		Relevance: "Justificación de la política fiscal contracíclica.",
	},
	{
		ID: "austriaca", Name: "Escuela austriaca", Period: "1871–",
		Authors:   []string{"Carl Menger", "Ludwig von Mises", "Friedrich Hayek"},
		KeyIdeas:  []string{"Valor subjetivo", "Ciclo económico austriaco", "Problema del conocimiento"},
		Relevance: "Crítica de la planificación central y de la expansión crediticia.",
	},
	{
		ID: "monetarista", Name: "Monetarismo", Period: "1956–",
		Authors:   []string{"Milton Friedman", "Anna Schwartz"},
		KeyIdeas:  []string{"Teoría cuantitativa del dinero", "Regla monetaria", "Tasa natural de desempleo"},
		Relevance: "La inflación como fenómeno monetario; bancos centrales con metas.",
	},
	{
		ID: "nuevo-clasica", Name: "Nueva macroeconomía clásica", Period: "1970–",
		Authors:   []string{"Robert Lucas", "Thomas Sargent", "Edward Prescott"},
		KeyIdeas:  []string{"Expectativas racionales", "Crítica de Lucas", "Ciclos reales"},
		Relevance: "Microfundamentos de los modelos macroeconómicos.",
	},
	{
		ID: "conductual", Name: "Economía conductual", Period: "1979–",
		Authors:   []string{"Daniel Kahneman", "Amos Tversky", "Richard Thaler"},
		KeyIdeas:  []string{"Teoría prospectiva", "Racionalidad limitada", "Arquitectura de decisiones"},
		Relevance: "Sesgos sistemáticos en decisiones financieras y de consumo.",
	},
}

// Formulas returns the formula table, filtered by category when one is given
func Formulas(category Category) []Formula {
	if category == "" {
		return append([]Formula(nil), formulas...)
	}
	var out []Formula
	for _, f := range formulas {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// FormulaByID looks up a single formula
func FormulaByID(id string) (Formula, bool) {
	for _, f := range formulas {
		if strings.EqualFold(f.ID, id) {
			return f, true
		}
	}
	return Formula{}, false
}

// Theories returns the schools of thought in chronological order
func Theories() []Theory {
	return append([]Theory(nil), theories...)
}
