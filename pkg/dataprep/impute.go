package dataprep

import "math"

// IsMissing reports whether a text value is one of the missing markers.
func IsMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// FillNaN returns a copy of col with NaN entries replaced by fill.
func FillNaN(col []float64, fill float64) []float64 {
	out := make([]float64, len(col))
	for i, v := range col {
		if math.IsNaN(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}

// FillMissing returns a copy of col with missing markers replaced by fill.
func FillMissing(col []string, fill string) []string {
	out := make([]string, len(col))
	for i, v := range col {
		if IsMissing(v) {
			out[i] = fill
		} else {
			out[i] = v
		}
	}
	return out
}
