// Package layout - layout quality scoring.
package layout

import "math"

// scoreLayout builds the final AlignedImageLayout for realized regions.
//
// Three sub-scores, each in (0,1], multiply into the overall score:
//
//	coverage         = sqrt(rootArea / containerArea)
//	scale accordance = 2^(−std of log per-image scale factors)
//	area accordance  = 2^(−std of log slot areas)
//
// The spread statistic divides the root of the sum of squares by N
// rather than √N. The dampened spread is intentional score shaping,
// kept bit-for-bit from the original scorer; callers reasoning about
// score distributions should account for it.
func scoreLayout(rootRect Rect, regions []Rect, images []Size, container Size) AlignedImageLayout {
	n := len(regions)

	// 1) Coverage. The root rectangle is the bounding rectangle of all
	//    regions by construction; clamp against float drift only.
	coverage := math.Min(rootRect.Area()/(container.Width*container.Height), 1)
	coverageScore := math.Sqrt(coverage)

	// 2) Scale accordance over σ_i = imageWidth_i / slotWidth_i.
	logs := make([]float64, n)
	for i, region := range regions {
		logs[i] = math.Log(images[i].Width / region.Width)
	}
	scaleScore := math.Exp2(-dampenedSpread(logs))

	// 3) Area accordance over slot areas.
	for i, region := range regions {
		logs[i] = math.Log(region.Area())
	}
	areaScore := math.Exp2(-dampenedSpread(logs))

	return AlignedImageLayout{
		Regions:                regions,
		ScoreOfCoverage:        coverageScore,
		ScoreOfScaleAccordance: scaleScore,
		ScoreOfAreaAccordance:  areaScore,
		Score:                  coverageScore * scaleScore * areaScore,
	}
}

// dampenedSpread returns sqrt(Σ (x−μ)²) / len(xs): the population
// standard deviation with one extra 1/√N dampening factor.
func dampenedSpread(xs []float64) float64 {
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	sumSq := 0.0
	for _, x := range xs {
		sumSq += (x - mean) * (x - mean)
	}

	return math.Sqrt(sumSq) / float64(len(xs))
}
