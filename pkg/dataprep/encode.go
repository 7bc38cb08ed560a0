package dataprep

import "fmt"

// UnknownValueError reports a value that is not in the encoding vocabulary.
type UnknownValueError struct {
	Value string
	Row   int
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("value %q at row %d is not in the vocabulary", e.Value, e.Row)
}

// OneHot expands a text column into one indicator column per vocabulary
// entry, in vocabulary order. Any value outside the vocabulary is an error.
func OneHot(data []string, vocabulary []string) ([][]float64, error) {
	index := make(map[string]int, len(vocabulary))
	for i, v := range vocabulary {
		index[v] = i
	}
	out := make([][]float64, len(vocabulary))
	for k := range out {
		out[k] = make([]float64, len(data))
	}
	for i, v := range data {
		k, ok := index[v]
		if !ok {
			return nil, &UnknownValueError{Value: v, Row: i}
		}
		out[k][i] = 1
	}
	return out, nil
}
