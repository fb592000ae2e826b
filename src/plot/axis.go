package plot

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// yAxisTicks generates up to n ticks inside the fixed range [min,max] using a 1,2,2.5,5 step pattern.
// Both bounds are always present so the configured range reads off the axis. Ranges whose span
// is not finite get only the two bounds.
func yAxisTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	bounds := []chart.Tick{{Value: min, Label: formatTick(min)}, {Value: max, Label: formatTick(max)}}
	span := max - min
	if math.IsInf(span, 0) {
		return bounds
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Floor(span/step+1e-9) + 1
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	if !(bestStep > 0) || math.IsInf(bestStep, 0) {
		return bounds
	}

	ticks := []chart.Tick{bounds[0]}
	first := math.Ceil(min / bestStep)
	// Indexing by k keeps every tick an exact multiple of the step; the cap bounds the loop
	// even when min+step rounds back to min.
	for k := 0; k <= n+1; k++ {
		v := roundToStep((first+float64(k))*bestStep, bestStep)
		if v >= max-bestStep*1e-6 {
			break
		}
		if v <= ticks[len(ticks)-1].Value {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return append(ticks, bounds[1])
}

// roundToStep drops float noise below one tenth of step, e.g. 3*0.2 = 0.6000000000000001.
// Values too large to scale without losing precision are returned unchanged.
func roundToStep(v, step float64) float64 {
	d := -math.Floor(math.Log10(step)) + 1
	if d <= 0 {
		return v
	}
	p := math.Pow(10, d)
	if math.Abs(v)*p >= 1e15 {
		return v
	}
	return math.Round(v*p) / p
}

// formatTick prints whole numbers without decimals and keeps the shortest form otherwise.
func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
