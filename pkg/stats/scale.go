package stats

// Standardize maps v to (v - mean) / std. A zero std yields 0 so constant
// columns collapse to zero instead of NaN or Inf.
func Standardize(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (v - mean) / std
}

// StandardizeColumn returns a standardized copy of col.
func StandardizeColumn(col []float64, mean, std float64) []float64 {
	out := make([]float64, len(col))
	for i, v := range col {
		out[i] = Standardize(v, mean, std)
	}
	return out
}
