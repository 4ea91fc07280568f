package chart

import (
	"fmt"
	"math"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// maxLabelTicks bounds label-index ticks so long sheets stay readable.
const maxLabelTicks = 20

// niceAxisBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		pad := math.Abs(min) * 0.05
		if pad == 0 {
			pad = 0.5
		}
		return min - pad, max + pad
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates about n tick marks within [min, max] using 1, 2, 2.5, 5, 10 steps.
func niceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	ticks := []gochart.Tick{}
	start := math.Ceil(min/bestStep) * bestStep
	for v := start; v <= max+bestStep*1e-9; v += bestStep {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}

// timeSteps are the candidate spacings for time ticks, smallest first.
var timeSteps = []time.Duration{
	time.Second, 2 * time.Second, 5 * time.Second, 10 * time.Second, 15 * time.Second, 30 * time.Second,
	time.Minute, 2 * time.Minute, 5 * time.Minute, 10 * time.Minute, 15 * time.Minute, 30 * time.Minute,
	time.Hour, 2 * time.Hour, 3 * time.Hour, 6 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 2 * 24 * time.Hour, 7 * 24 * time.Hour, 14 * 24 * time.Hour,
	30 * 24 * time.Hour, 90 * 24 * time.Hour, 180 * 24 * time.Hour, 365 * 24 * time.Hour,
}

// pickTimeStep selects the smallest step that yields at most n intervals over span.
func pickTimeStep(span time.Duration, n int) time.Duration {
	if n < 1 {
		n = 1
	}
	for _, st := range timeSteps {
		if span/st <= time.Duration(n) {
			return st
		}
	}
	year := 365 * 24 * time.Hour
	k := span/(year*time.Duration(n)) + 1
	return k * year
}

// makeTimeTicks returns step-aligned ticks between lo and hi (UnixNano
// values) labelled with layout in UTC. Spans under a second get the two
// window edges.
func makeTimeTicks(lo, hi float64, n int, layout string) []gochart.Tick {
	if hi <= lo {
		return nil
	}
	minT := gochart.TimeFromFloat64(lo).UTC()
	maxT := gochart.TimeFromFloat64(hi).UTC()
	span := maxT.Sub(minT)
	if span < time.Second {
		return []gochart.Tick{
			{Value: lo, Label: minT.Format(layout)},
			{Value: hi, Label: maxT.Format(layout)},
		}
	}
	step := pickTimeStep(span, n)
	st := int64(step / time.Second)
	s := minT.Unix()
	aligned := time.Unix((s/st)*st, 0).UTC()
	if aligned.Before(minT) {
		aligned = aligned.Add(step)
	}
	ticks := []gochart.Tick{}
	for t := aligned; !t.After(maxT); t = t.Add(step) {
		ticks = append(ticks, gochart.Tick{Value: gochart.TimeToFloat64(t), Label: t.Format(layout)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// labelTicks places one tick per label position inside [lo, hi], thinned
// to at most maxLabelTicks.
func labelTicks(labels []string, lo, hi float64) []gochart.Tick {
	first := int(math.Ceil(lo))
	if first < 1 {
		first = 1
	}
	last := int(math.Floor(hi))
	if last > len(labels) {
		last = len(labels)
	}
	if last < first {
		return nil
	}
	stride := (last-first)/maxLabelTicks + 1
	ticks := []gochart.Tick{}
	for p := first; p <= last; p += stride {
		ticks = append(ticks, gochart.Tick{Value: float64(p), Label: labels[p-1]})
	}
	return ticks
}

// timeFormatter formats UnixNano axis values in UTC.
func timeFormatter(layout string) gochart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return gochart.TimeFromFloat64(f).UTC().Format(layout)
		}
		return ""
	}
}
