package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulas(t *testing.T) {
	all := Formulas("")
	macro := Formulas(Macro)
	micro := Formulas(Micro)
	finance := Formulas(Finance)

	assert.Len(t, all, len(macro)+len(micro)+len(finance))
	for _, f := range finance {
		assert.Equal(t, Finance, f.Category)
	}

	seen := map[string]bool{}
	for _, f := range all {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestFormulasReturnsCopy(t *testing.T) {
	all := Formulas("")
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", Formulas("")[0].Name)
}

func TestFormulaByID(t *testing.T) {
	f, ok := FormulaByID("TIR")
	require.True(t, ok)
	assert.Equal(t, "Tasa interna de retorno", f.Name)

	_, ok = FormulaByID("missing")
	assert.False(t, ok)
}

func TestTheories(t *testing.T) {
	theories := Theories()
	require.NotEmpty(t, theories)
	for _, th := range theories {
		assert.NotEmpty(t, th.Authors, th.ID)
		assert.NotEmpty(t, th.KeyIdeas, th.ID)
	}
}
