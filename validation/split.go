package validation

import (
	"math"
	"math/rand/v2"

	"github.com/marcosvppfernandes/ds-model-validation/dataset"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

// TrainTestSplit shuffles the rows of ds with the given seed and
// splits them into a training and a test partition. testFraction is
// the share of rows held out, rounded to the nearest row; both
// partitions must end up non-empty. The same seed and inputs always
// produce the same split.
func TrainTestSplit(ds *dataset.Dataset, testFraction float64, seed uint64) (train, test *dataset.Dataset, err error) {
	const operation = "TrainTestSplit"

	n := ds.NumRows()
	if n == 0 {
		return nil, nil, errors.NewEmptyDatasetError(operation)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.NewValueError(operation, "test fraction must be in (0, 1)")
	}

	nTest := int(math.Round(float64(n) * testFraction))
	if nTest == 0 || nTest == n {
		return nil, nil, errors.NewValueError(operation, "test fraction leaves an empty partition")
	}

	r := rand.New(rand.NewPCG(seed, seed))
	perm := r.Perm(n)

	test, err = ds.Subset(perm[:nTest])
	if err != nil {
		return nil, nil, err
	}
	train, err = ds.Subset(perm[nTest:])
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
