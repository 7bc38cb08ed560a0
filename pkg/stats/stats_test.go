package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservedMeanSkipsNaN(t *testing.T) {
	mean, n := ObservedMean([]float64{100, math.NaN(), 300})
	assert.Equal(t, 200.0, mean)
	assert.Equal(t, 2, n)

	_, n = ObservedMean([]float64{math.NaN()})
	assert.Equal(t, 0, n)
}

func TestPopMeanStdUsesPopulationDivisor(t *testing.T) {
	mean, std := PopMeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 2.0, std, 1e-12)

	mean, std = PopMeanStd(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestMostFrequent(t *testing.T) {
	missing := func(s string) bool { return s == "" }

	tests := []struct {
		name string
		in   []string
		want string
		ok   bool
	}{
		{"majority", []string{"1", "", "1"}, "1", true},
		{"tie goes to first seen", []string{"2", "1", "1", "2"}, "2", true},
		{"later majority wins", []string{"2", "1", "1"}, "1", true},
		{"all missing", []string{"", ""}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostFrequent(tt.in, missing)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStandardizeZeroStd(t *testing.T) {
	assert.Equal(t, 0.0, Standardize(42, 7, 0))
	assert.Equal(t, []float64{-1, 1}, StandardizeColumn([]float64{1, 3}, 2, 1))
}
