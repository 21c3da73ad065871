// Package log defines the logging setup and the standard attribute keys
// used by the evaluation harness. The keys follow a hierarchical naming
// convention (e.g. "data.samples", "run.folds") so evaluation runs can
// be filtered and compared in structured log output.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model under evaluation.
	// Examples: "LinearRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score", "evaluate", "cross_validate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package performs the operation.
	// Examples: "validation", "linear", "preprocessing"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns in the dataset.
	FeaturesKey = "data.features"
)

// Evaluation run parameters and results.
const (
	// RepetitionsKey is the number of resampling repetitions in a run.
	RepetitionsKey = "run.repetitions"

	// SampleSizeKey is the per-repetition sample size of a resampling run.
	SampleSizeKey = "run.sample_size"

	// FoldsKey is the number of folds in a cross-validation run.
	FoldsKey = "run.folds"

	// SeedKey is the random seed driving a run.
	SeedKey = "run.seed"

	// ScoreMeanKey is the mean score across repetitions or folds.
	ScoreMeanKey = "result.score_mean"

	// PredictionVarianceKey is the variance of the query-point
	// predictions across repetitions.
	PredictionVarianceKey = "result.prediction_variance"
)
