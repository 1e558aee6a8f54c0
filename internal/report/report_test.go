package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/Dan9191/econosfera/internal/finance"
	"github.com/Dan9191/econosfera/internal/macro"
	"github.com/Dan9191/econosfera/internal/micro"
	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatting(t *testing.T) {
	assert.Equal(t, "2,400.00", money(2400))
	assert.Equal(t, "-75.00", money(-75))
	assert.Equal(t, "0.7500", number(0.75))
	assert.Equal(t, "9.44%", percent(0.0944))
}

func TestMacroReportText(t *testing.T) {
	v := models.MacroVariables{AutonomousConsumption: 200, MPC: 0.75, Investment: 300, GovernmentSpending: 175, Taxes: 100}
	r := Macro(v, macro.Equilibrium(v))

	text := r.Text()
	assert.True(t, strings.HasPrefix(text, "Modelo keynesiano del multiplicador\n"))
	assert.Contains(t, text, "Ingreso de equilibrio")
	assert.Contains(t, text, "2,400.00")
}

func TestInfeasibleReports(t *testing.T) {
	r := Market(models.MarketVariables{DemandIntercept: 10, SupplyIntercept: 20}, models.MarketResults{}, false)
	require.Len(t, r.Tables, 2)
	assert.Equal(t, []string{"Equilibrio", "Sin equilibrio con cantidad positiva"}, r.Tables[1].Rows[0])

	r = ISLM(models.ISLMVariables{}, models.ISLMResults{}, false)
	assert.Contains(t, r.Text(), "Sin equilibrio factible")
}

func TestElasticityReport(t *testing.T) {
	v := models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 12, Quantity2: 80}
	res, ok := micro.ArcElasticity(v)
	r := Elasticity(v, res, ok)
	assert.Contains(t, r.Text(), "elastica")
}

func TestAmortizationCSV(t *testing.T) {
	v := models.LoanVariables{Principal: 12000, Months: 12}
	res, ok := finance.Amortize(v)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, Amortization(v, res).WriteCSV(&buf))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// The reader skips the blank lines between tables.
	assert.Equal(t, []string{"Supuestos"}, records[0])
	last := records[len(records)-1]
	assert.Equal(t, []string{"12", "1,000.00", "0.00", "1,000.00", "0.00"}, last)
}

func TestCashflowsReport(t *testing.T) {
	flows := []float64{-1000, 1100}
	irr, ok := finance.IRR(flows)
	r := Cashflows(0.05, flows, finance.NPV(0.05, flows), irr, ok)
	assert.Contains(t, r.Text(), "10.00%")

	r = Cashflows(0.05, []float64{1, 1}, 2, 0, false)
	assert.Contains(t, r.Text(), "No converge")
}

func TestCetesReport(t *testing.T) {
	res, ok := finance.CetesPrice(10, 0.1, 28)
	require.True(t, ok)

	r := Cetes(res)
	require.Len(t, r.Tables, 1)
	text := r.Text()
	assert.Contains(t, text, "Plazo (días)")
	assert.Contains(t, text, "10.00%")
}
