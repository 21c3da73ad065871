package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for stateless or fitted feature
// transforms. Fit must only ever see the training partition; Transform
// applies the fitted statistics elsewhere without refitting.
type Transformer interface {
	// Fit learns transform statistics from X.
	Fit(X mat.Matrix) error

	// Transform applies the fitted transform to X.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and transforms it in one call.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
