package micro

import (
	"testing"

	"github.com/Dan9191/econosfera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcElasticity(t *testing.T) {
	tests := []struct {
		name  string
		in    models.ElasticityVariables
		want  float64
		class models.ElasticityClass
	}{
		{"elastic", models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 12, Quantity2: 80}, -1.22, models.Elastic},
		{"inelastic", models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 12, Quantity2: 95}, -0.28, models.Inelastic},
		{"unitary", models.ElasticityVariables{Price1: 10, Quantity1: 12, Price2: 12, Quantity2: 10}, -1, models.Unitary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := ArcElasticity(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, res.Elasticity)
			assert.Equal(t, tt.class, res.Class)
			assert.NotEmpty(t, res.Interpretation)
			assert.NotEmpty(t, res.RevenueEffect)
		})
	}
}

func TestArcElasticityUsesAverages(t *testing.T) {
	v := models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 12, Quantity2: 80}
	res, ok := ArcElasticity(v)
	require.True(t, ok)

	t.Run("midpoint on both axes", func(t *testing.T) {
		assert.Equal(t, -1.22, res.Elasticity)
	})

	t.Run("initial price base gives -1.11 with the same class", func(t *testing.T) {
		mixed := ((v.Quantity2 - v.Quantity1) / 90) / ((v.Price2 - v.Price1) / v.Price1)
		assert.InDelta(t, -1.11, mixed, 0.005)
		assert.NotEqual(t, mixed, res.Elasticity)
		assert.Equal(t, res.Class, Classify(mixed))
	})
}

func TestArcElasticitySymmetric(t *testing.T) {
	up, _ := ArcElasticity(models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 12, Quantity2: 80})
	down, _ := ArcElasticity(models.ElasticityVariables{Price1: 12, Quantity1: 80, Price2: 10, Quantity2: 100})
	assert.Equal(t, up.Elasticity, down.Elasticity)
}

func TestArcElasticityUndefined(t *testing.T) {
	_, ok := ArcElasticity(models.ElasticityVariables{Price1: 10, Quantity1: 100, Price2: 10, Quantity2: 80})
	assert.False(t, ok, "no price change")

	_, ok = ArcElasticity(models.ElasticityVariables{Price1: 10, Quantity1: 0, Price2: 12, Quantity2: 0})
	assert.False(t, ok, "zero quantities")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.Unitary, Classify(-1.004))
	assert.Equal(t, models.Elastic, Classify(-1.02))
	assert.Equal(t, models.Inelastic, Classify(0.5))
}
