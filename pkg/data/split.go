package data

import (
	"errors"
	"math/rand"
)

// TrainTestSplit shuffles the rows with a seeded source and splits them into
// train and test sets by ratio. The same seed always yields the same split.
func TrainTestSplit(d *Dataset, testRatio float64, seed int64) (train, test *Dataset, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, errors.New("test ratio must be in (0, 1)")
	}
	n := d.Rows()
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)
	return d.Take(indices[nTest:]), d.Take(indices[:nTest]), nil
}
