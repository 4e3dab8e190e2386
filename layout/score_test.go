package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScoreLayout_PerfectFit covers the ideal case: one slot filling
// the whole container. Every sub-score is exactly 1.
func TestScoreLayout_PerfectFit(t *testing.T) {
	container := Size{Width: 200, Height: 200}
	root := Rect{X: 0, Y: 0, Width: 200, Height: 200}
	regions := []Rect{root}
	images := []Size{{Width: 100, Height: 100}}

	l := scoreLayout(root, regions, images, container)

	assert.Equal(t, 1.0, l.ScoreOfCoverage)
	assert.Equal(t, 1.0, l.ScoreOfScaleAccordance)
	assert.Equal(t, 1.0, l.ScoreOfAreaAccordance)
	assert.Equal(t, 1.0, l.Score)
}

// TestScoreLayout_PartialCoverage pins the coverage arithmetic for two
// equal slots covering two thirds of the container: uniform scale and
// area leave only sqrt(2/3).
func TestScoreLayout_PartialCoverage(t *testing.T) {
	container := Size{Width: 300, Height: 100}
	root := Rect{X: 50, Y: 0, Width: 200, Height: 100}
	regions := []Rect{
		{X: 50, Y: 0, Width: 100, Height: 100},
		{X: 150, Y: 0, Width: 100, Height: 100},
	}
	images := []Size{{Width: 100, Height: 100}, {Width: 100, Height: 100}}

	l := scoreLayout(root, regions, images, container)

	assert.InDelta(t, math.Sqrt(2.0/3.0), l.ScoreOfCoverage, 1e-12)
	assert.InDelta(t, 1, l.ScoreOfScaleAccordance, 1e-12)
	assert.InDelta(t, 1, l.ScoreOfAreaAccordance, 1e-12)
	assert.InDelta(t, l.ScoreOfCoverage, l.Score, 1e-12)
}

// TestScoreLayout_ScaleSpread checks the scale-accordance penalty when
// one image is shown at twice the scale of the other. With slot widths
// 100 and 200 for equal 100-wide images, the log scale factors are
// {0, −ln 2}; the dampened spread is ln2 / (2·√2).
func TestScoreLayout_ScaleSpread(t *testing.T) {
	container := Size{Width: 300, Height: 300}
	root := Rect{X: 0, Y: 0, Width: 300, Height: 300}
	regions := []Rect{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 100, Y: 0, Width: 200, Height: 200},
	}
	images := []Size{{Width: 100, Height: 100}, {Width: 100, Height: 100}}

	l := scoreLayout(root, regions, images, container)

	wantStd := math.Ln2 / (2 * math.Sqrt2)
	assert.InDelta(t, math.Exp2(-wantStd), l.ScoreOfScaleAccordance, 1e-12)
	assert.Less(t, l.ScoreOfScaleAccordance, 1.0)
	assert.Greater(t, l.ScoreOfScaleAccordance, 0.0)
}

// TestScoreLayout_ProductLaw verifies Score is always the product of
// the three sub-scores.
func TestScoreLayout_ProductLaw(t *testing.T) {
	container := Size{Width: 500, Height: 400}
	root := Rect{X: 10, Y: 0, Width: 480, Height: 400}
	regions := []Rect{
		{X: 10, Y: 0, Width: 180, Height: 400},
		{X: 190, Y: 0, Width: 300, Height: 400},
	}
	images := []Size{{Width: 90, Height: 200}, {Width: 600, Height: 800}}

	l := scoreLayout(root, regions, images, container)

	assert.InDelta(t, l.ScoreOfCoverage*l.ScoreOfScaleAccordance*l.ScoreOfAreaAccordance, l.Score, 1e-12)
	for _, s := range []float64{l.ScoreOfCoverage, l.ScoreOfScaleAccordance, l.ScoreOfAreaAccordance, l.Score} {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

// TestDampenedSpread_DivisorN pins the intentional /N divisor: for
// {0, 2} the population deviation is 1, but the dampened spread is
// sqrt(2)/2.
func TestDampenedSpread_DivisorN(t *testing.T) {
	assert.InDelta(t, math.Sqrt2/2, dampenedSpread([]float64{0, 2}), 1e-12)
	assert.Zero(t, dampenedSpread([]float64{3, 3, 3}))
}
