// Package validation implements the resampling-based model evaluation
// harness: repeated randomized fitting to observe a model family's
// variance, k-fold cross-validation, and a single train/test split.
// All components are stateless request/response operations over an
// immutable Dataset; randomness always comes from an explicit seed.
package validation

import (
	"github.com/marcosvppfernandes/ds-model-validation/core/model"
)

// ModelFactory produces a fresh, unfit model. Every repetition and
// every fold calls the factory once; reusing a fitted model across
// repetitions would couple draws that must stay independent.
type ModelFactory func() model.Regressor
