// Package analysis weighs census output to surface scheduling bottlenecks:
// slots where candidate demand crowds staff supply.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/glintclean/weekplan/core/census"
	"github.com/glintclean/weekplan/core/model"
)

// SlotPressure relates candidate-client demand to staff supply for one slot.
type SlotPressure struct {
	Day    model.Weekday
	Hour   int
	Demand int
	Supply int
	Ratio  float64
}

// Summary describes the pressure distribution across all built slots and
// ranks the most contended ones.
type Summary struct {
	Mean        float64
	StdDev      float64
	Median      float64
	P90         float64
	Bottlenecks []SlotPressure
}

// Pressure computes demand/supply ratios over the census output. Bottlenecks
// holds up to topN slots with the highest ratio; ties keep day/hour order.
func Pressure(slots census.SlotTable, topN int) Summary {
	ordered := slots.Ordered()
	if len(ordered) == 0 {
		return Summary{}
	}

	pressures := make([]SlotPressure, 0, len(ordered))
	ratios := make([]float64, 0, len(ordered))
	for _, slot := range ordered {
		p := SlotPressure{
			Day:    slot.Day,
			Hour:   slot.Hour,
			Demand: len(slot.Clients),
			Supply: slot.Available,
		}
		if p.Supply > 0 {
			p.Ratio = float64(p.Demand) / float64(p.Supply)
		}
		pressures = append(pressures, p)
		ratios = append(ratios, p.Ratio)
	}

	summary := Summary{Mean: stat.Mean(ratios, nil)}
	if len(ratios) > 1 {
		summary.StdDev = stat.StdDev(ratios, nil)
	}
	sorted := append([]float64(nil), ratios...)
	sort.Float64s(sorted)
	summary.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	summary.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	sort.SliceStable(pressures, func(i, j int) bool { return pressures[i].Ratio > pressures[j].Ratio })
	if topN > 0 && len(pressures) > topN {
		pressures = pressures[:topN]
	}
	summary.Bottlenecks = pressures
	return summary
}
