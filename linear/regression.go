// Package linear provides an ordinary least squares regression model.
// It exists as the reference model capability for the evaluation
// harness; the solver itself is gonum's QR-based least squares.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/marcosvppfernandes/ds-model-validation/core/model"
	"github.com/marcosvppfernandes/ds-model-validation/metrics"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

// LinearRegression is an ordinary least squares model. The zero value
// is not usable; construct with NewLinearRegression.
type LinearRegression struct {
	model.BaseEstimator

	// Weights holds the fitted coefficients, one per feature.
	Weights *mat.VecDense
	// Intercept is the fitted bias term; zero when fitIntercept is off.
	Intercept float64
	// NFeatures is the feature count seen during Fit.
	NFeatures int

	fitIntercept bool
}

// NewLinearRegression creates an unfit ordinary least squares model.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit estimates the coefficients by least squares on X and y (n×1).
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LinearRegression.Fit")
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector (n×1 matrix)")
	}

	lr.NFeatures = c

	design := X
	if lr.fitIntercept {
		// Prepend a ones column for the bias term.
		augmented := mat.NewDense(r, c+1, nil)
		for i := 0; i < r; i++ {
			augmented.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				augmented.Set(i, j+1, X.At(i, j))
			}
		}
		design = augmented
	}

	var beta mat.Dense
	if err := beta.Solve(design, y); err != nil {
		return errors.Wrap(errors.ErrSingularMatrix, "LinearRegression.Fit")
	}

	if lr.fitIntercept {
		lr.Intercept = beta.At(0, 0)
		lr.Weights = mat.NewVecDense(c, nil)
		for j := 0; j < c; j++ {
			lr.Weights.SetVec(j, beta.At(j+1, 0))
		}
	} else {
		lr.Intercept = 0
		lr.Weights = mat.NewVecDense(c, nil)
		for j := 0; j < c; j++ {
			lr.Weights.SetVec(j, beta.At(j, 0))
		}
	}

	lr.SetFitted()
	return nil
}

// Predict returns the fitted line's predictions for X as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// Score returns the coefficient of determination R² on X and y.
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	yTrueVec, err := metrics.ColumnVec(y)
	if err != nil {
		return 0, err
	}
	yPredVec, err := metrics.ColumnVec(yPred)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yTrueVec, yPredVec)
}

// Coefficients returns a copy of the fitted weights, nil before Fit.
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.Weights == nil {
		return nil
	}
	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}
