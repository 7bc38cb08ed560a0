package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ObservedMean computes the average of the non-NaN entries of x and how many there were.
func ObservedMean(x []float64) (mean float64, n int) {
	obs := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			obs = append(obs, v)
		}
	}
	if len(obs) == 0 {
		return 0, 0
	}
	return stat.Mean(obs, nil), len(obs)
}

// PopMeanStd returns the mean and population standard deviation (divisor n).
func PopMeanStd(x []float64) (mean, std float64) {
	if len(x) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(x, nil)
}

// MostFrequent returns the most common value in x, ignoring entries for which
// skip returns true. Ties go to the value encountered first.
func MostFrequent(x []string, skip func(string) bool) (mode string, ok bool) {
	counts := make(map[string]int)
	first := make(map[string]int)
	maxCount := 0
	for i, v := range x {
		if skip != nil && skip(v) {
			continue
		}
		counts[v]++
		if _, seen := first[v]; !seen {
			first[v] = i
		}
		c := counts[v]
		if c > maxCount || (c == maxCount && first[v] < first[mode]) {
			maxCount = c
			mode = v
		}
	}
	return mode, maxCount > 0
}
