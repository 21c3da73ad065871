package validation

import (
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/marcosvppfernandes/ds-model-validation/core/parallel"
	"github.com/marcosvppfernandes/ds-model-validation/dataset"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/log"
)

// FoldScore is the pair of scores produced by one fold: the fitted
// model scored on its training rows and on the held-out rows.
type FoldScore struct {
	TrainScore      float64
	ValidationScore float64
}

// FoldSummary aggregates one CrossValidate call. Folds is ordered by
// fold index, not completion order.
type FoldSummary struct {
	Folds []FoldScore

	MeanTrainScore      float64
	MeanValidationScore float64
}

// KFoldValidator estimates out-of-sample performance by rotating which
// slice of the data is held out. With Shuffle off, folds are
// contiguous blocks in original row order; with Shuffle on, the row
// order is permuted once with Seed before partitioning, reproducibly.
type KFoldValidator struct {
	// K is the number of folds, in [2, row count].
	K int
	// Shuffle permutes row order before partitioning.
	Shuffle bool
	// Seed drives the permutation when Shuffle is on.
	Seed uint64
}

// NewKFoldValidator creates a validator with contiguous folds.
func NewKFoldValidator(k int) *KFoldValidator {
	return &KFoldValidator{K: k}
}

// NewShuffledKFoldValidator creates a validator that permutes rows
// with the given seed before partitioning.
func NewShuffledKFoldValidator(k int, seed uint64) *KFoldValidator {
	return &KFoldValidator{K: k, Shuffle: true, Seed: seed}
}

// Split partitions the row indices 0..n-1 into K groups. The groups
// are disjoint, cover every index exactly once, and differ in size by
// at most one row: the first n mod K groups carry the extra row. This
// tie-break is fixed; callers may rely on exact fold boundaries.
func (v *KFoldValidator) Split(n int) ([][]int, error) {
	const operation = "KFoldValidator.Split"

	if n == 0 {
		return nil, errors.NewEmptyDatasetError(operation)
	}
	if v.K < 2 || v.K > n {
		return nil, errors.NewInvalidKError(operation, v.K, n)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if v.Shuffle {
		r := rand.New(rand.NewPCG(v.Seed, v.Seed))
		r.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([][]int, v.K)
	foldSize := n / v.K
	remainder := n % v.K

	current := 0
	for i := 0; i < v.K; i++ {
		size := foldSize
		if i < remainder {
			size++
		}
		folds[i] = append([]int(nil), indices[current:current+size]...)
		current += size
	}
	return folds, nil
}

// CrossValidate iterates the folds of ds: for each fold index, a fresh
// model from factory is fit on the union of the other folds, then
// scored on the training rows and the held-out rows. A model failure
// in any fold aborts the whole run; no partial summary is returned.
func (v *KFoldValidator) CrossValidate(ds *dataset.Dataset, factory ModelFactory) (*FoldSummary, error) {
	const operation = "KFoldValidator.CrossValidate"

	n := ds.NumRows()
	if n == 0 {
		return nil, errors.NewEmptyDatasetError(operation)
	}
	if factory == nil {
		return nil, errors.NewValueError(operation, "model factory must not be nil")
	}

	if v.K < 2 || v.K > n {
		return nil, errors.NewInvalidKError(operation, v.K, n)
	}

	folds, err := v.Split(n)
	if err != nil {
		return nil, err
	}

	scores := make([]FoldScore, v.K)
	errs := make([]error, v.K)

	parallel.ParallelizeIndexed(v.K, func(i int) {
		held := folds[i]

		// Training set: all other folds' rows, in fold order.
		train := make([]int, 0, n-len(held))
		for j, fold := range folds {
			if j == i {
				continue
			}
			train = append(train, fold...)
		}

		trainSet, err := ds.Subset(train)
		if err != nil {
			errs[i] = err
			return
		}
		heldSet, err := ds.Subset(held)
		if err != nil {
			errs[i] = err
			return
		}

		m := factory()
		if err := m.Fit(trainSet.Features(), trainSet.Target()); err != nil {
			errs[i] = errors.NewModelFailureError(operation, "fit", i, err)
			return
		}

		trainScore, err := m.Score(trainSet.Features(), trainSet.Target())
		if err != nil {
			errs[i] = errors.NewModelFailureError(operation, "score", i, err)
			return
		}
		validationScore, err := m.Score(heldSet.Features(), heldSet.Target())
		if err != nil {
			errs[i] = errors.NewModelFailureError(operation, "score", i, err)
			return
		}

		scores[i] = FoldScore{TrainScore: trainScore, ValidationScore: validationScore}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	trainScores := make([]float64, v.K)
	validationScores := make([]float64, v.K)
	for i, s := range scores {
		trainScores[i] = s.TrainScore
		validationScores[i] = s.ValidationScore
	}

	summary := &FoldSummary{
		Folds:               scores,
		MeanTrainScore:      stat.Mean(trainScores, nil),
		MeanValidationScore: stat.Mean(validationScores, nil),
	}

	slog.Debug("cross-validation complete",
		log.ComponentKey, "validation",
		log.OperationKey, "cross_validate",
		log.SamplesKey, n,
		log.FoldsKey, v.K,
		log.SeedKey, v.Seed,
		log.ScoreMeanKey, summary.MeanValidationScore,
	)
	return summary, nil
}
