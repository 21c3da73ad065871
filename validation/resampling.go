package validation

import (
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/marcosvppfernandes/ds-model-validation/core/parallel"
	"github.com/marcosvppfernandes/ds-model-validation/dataset"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/log"
)

// EvaluationRecord is one repetition's outcome: the in-sample score of
// the fitted model and its prediction at the query point. Immutable
// once recorded.
type EvaluationRecord struct {
	Score      float64
	Prediction float64
}

// EvaluationSummary aggregates the repetitions of one Evaluate call.
// PredictionVariance is the empirical proxy for model variance: the
// tighter the spread of predictions at the query point, the less
// sensitive the model family is to the particular sample drawn.
type EvaluationSummary struct {
	// Records holds one entry per repetition, in repetition order.
	Records []EvaluationRecord

	ScoreMean     float64
	ScoreVariance float64

	PredictionMean     float64
	PredictionVariance float64
}

// ResamplingEvaluator characterizes a model family's variance and
// average fit quality by repeated randomized resampling. Each
// repetition draws a fresh sample, fits a fresh model and records the
// in-sample score plus the prediction at a fixed query point.
//
// Repetitions run in parallel. Each repetition seeds its own RNG from
// (Seed, repetition index), so results are bit-identical regardless of
// scheduling.
type ResamplingEvaluator struct {
	// SampleSize is the number of rows drawn per repetition.
	SampleSize int
	// Repetitions is the number of independent draw/fit cycles.
	Repetitions int
	// WithReplacement selects bootstrap draws. When false, SampleSize
	// must not exceed the dataset row count.
	WithReplacement bool
	// Seed drives all sampling. The same seed and inputs always
	// reproduce the same summary.
	Seed uint64
}

// NewResamplingEvaluator creates an evaluator drawing bootstrap
// samples (with replacement).
func NewResamplingEvaluator(sampleSize, repetitions int, seed uint64) *ResamplingEvaluator {
	return &ResamplingEvaluator{
		SampleSize:      sampleSize,
		Repetitions:     repetitions,
		WithReplacement: true,
		Seed:            seed,
	}
}

// Evaluate runs the repetitions against ds and returns the aggregated
// summary. queryPoint is a single feature row, disjoint in use from
// training, at which prediction spread is measured. The dataset is
// never mutated; a model failure in any repetition aborts the whole
// call.
func (e *ResamplingEvaluator) Evaluate(ds *dataset.Dataset, factory ModelFactory, queryPoint []float64) (*EvaluationSummary, error) {
	const operation = "ResamplingEvaluator.Evaluate"

	n := ds.NumRows()
	if n == 0 {
		return nil, errors.NewEmptyDatasetError(operation)
	}
	if e.SampleSize <= 0 || (!e.WithReplacement && e.SampleSize > n) {
		return nil, errors.NewInvalidSampleSizeError(operation, e.SampleSize, n, e.WithReplacement)
	}
	if e.Repetitions < 1 {
		return nil, errors.NewValueError(operation, "repetitions must be at least 1")
	}
	if factory == nil {
		return nil, errors.NewValueError(operation, "model factory must not be nil")
	}
	if len(queryPoint) != ds.NumFeatures() {
		return nil, errors.NewDimensionError(operation, ds.NumFeatures(), len(queryPoint), 1)
	}

	query := mat.NewDense(1, len(queryPoint), append([]float64(nil), queryPoint...))

	records := make([]EvaluationRecord, e.Repetitions)
	errs := make([]error, e.Repetitions)

	parallel.ParallelizeIndexed(e.Repetitions, func(i int) {
		// Independent stream per repetition, derived from the run seed.
		r := rand.New(rand.NewPCG(e.Seed, uint64(i)))

		sample, err := ds.Subset(e.drawSample(r, n))
		if err != nil {
			errs[i] = err
			return
		}

		m := factory()
		if err := m.Fit(sample.Features(), sample.Target()); err != nil {
			errs[i] = errors.NewModelFailureError(operation, "fit", i, err)
			return
		}

		score, err := m.Score(sample.Features(), sample.Target())
		if err != nil {
			errs[i] = errors.NewModelFailureError(operation, "score", i, err)
			return
		}

		pred, err := m.Predict(query)
		if err != nil {
			errs[i] = errors.NewModelFailureError(operation, "predict", i, err)
			return
		}

		records[i] = EvaluationRecord{Score: score, Prediction: pred.At(0, 0)}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	scores := make([]float64, e.Repetitions)
	preds := make([]float64, e.Repetitions)
	for i, rec := range records {
		scores[i] = rec.Score
		preds[i] = rec.Prediction
	}

	summary := &EvaluationSummary{
		Records:            records,
		ScoreMean:          stat.Mean(scores, nil),
		ScoreVariance:      stat.PopVariance(scores, nil),
		PredictionMean:     stat.Mean(preds, nil),
		PredictionVariance: stat.PopVariance(preds, nil),
	}

	slog.Debug("resampling evaluation complete",
		log.ComponentKey, "validation",
		log.OperationKey, "evaluate",
		log.SamplesKey, n,
		log.SampleSizeKey, e.SampleSize,
		log.RepetitionsKey, e.Repetitions,
		log.SeedKey, e.Seed,
		log.ScoreMeanKey, summary.ScoreMean,
		log.PredictionVarianceKey, summary.PredictionVariance,
	)
	return summary, nil
}

// drawSample returns the row indices of one sample. With replacement,
// rows may repeat (a bootstrap sample); without, the sample is a
// prefix of a fresh permutation.
func (e *ResamplingEvaluator) drawSample(r *rand.Rand, n int) []int {
	if e.WithReplacement {
		indices := make([]int, e.SampleSize)
		for i := range indices {
			indices[i] = r.IntN(n)
		}
		return indices
	}
	return r.Perm(n)[:e.SampleSize]
}
