// Package model defines the capability interfaces the evaluation
// harness consumes. Any regression implementation that can fit,
// predict and score is usable; the harness never depends on a concrete
// model type.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on features X and target y (n×1).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for X as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a scalar metric.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the capabilities the evaluation harness needs
// from a model: fit, predict and score.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}
