package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {

	projects := []Project{
		{Supply: 1000, Retired: 400, PriceUSD: 5},
		{Supply: 3000, Retired: 600, PriceUSD: 2},
	}

	totals := Total(projects)

	assert.Equal(t, 2, totals.Count)
	assert.Equal(t, 4000.0, totals.Supply)
	assert.Equal(t, 1000.0, totals.Retired)
	assert.Equal(t, 0.25, totals.RetiredRatio)
	assert.Equal(t, 11000.0, totals.ValueUSD)
}

func TestTotalEmpty(t *testing.T) {

	totals := Total(nil)

	assert.Equal(t, 0, totals.Count)
	assert.Equal(t, 0.0, totals.RetiredRatio)
}

func TestPredicateNeutral(t *testing.T) {

	preds := Predicates()
	prj := Project{Name: "Prairie Wind", Type: "wind", Registry: "acr"}

	assert.True(t, preds["type"](prj, ""))
	assert.True(t, preds["type"](prj, "all"))
	assert.True(t, preds["type"](prj, "ALL"))
	assert.True(t, preds["registry"](prj, Neutral))
	assert.True(t, preds["search"](prj, ""))
}

func TestPredicateMatching(t *testing.T) {

	preds := Predicates()
	prj := Project{Name: "Prairie Wind", Location: "USA", Methodology: "ACM0002", Type: "wind", Registry: "acr"}

	assert.True(t, preds["type"](prj, "wind"))
	assert.True(t, preds["type"](prj, "Wind"))
	assert.False(t, preds["type"](prj, "solar"))

	assert.True(t, preds["search"](prj, "prairie"))
	assert.True(t, preds["search"](prj, "usa"))
	assert.True(t, preds["search"](prj, "acm"))
	assert.False(t, preds["search"](prj, "kenya"))
}

func TestCriteriaClone(t *testing.T) {

	crit := Criteria{"type": "wind"}
	clone := crit.Clone()

	clone["type"] = "solar"
	assert.Equal(t, "wind", crit["type"])
}
