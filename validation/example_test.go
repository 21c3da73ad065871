package validation_test

import (
	"fmt"

	"github.com/marcosvppfernandes/ds-model-validation/core/model"
	"github.com/marcosvppfernandes/ds-model-validation/dataset"
	"github.com/marcosvppfernandes/ds-model-validation/linear"
	"github.com/marcosvppfernandes/ds-model-validation/validation"
)

// ExampleKFoldValidator_CrossValidate cross-validates an ordinary
// least squares model on perfectly linear data.
func ExampleKFoldValidator_CrossValidate() {
	ds, err := dataset.New(
		[]string{"sqft"}, "price",
		[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[]float64{3, 5, 7, 9, 11, 13, 15, 17, 19, 21},
	)
	if err != nil {
		return
	}

	kf := validation.NewKFoldValidator(5)
	summary, err := kf.CrossValidate(ds, func() model.Regressor {
		return linear.NewLinearRegression()
	})
	if err != nil {
		return
	}

	fmt.Printf("folds: %d\n", len(summary.Folds))
	fmt.Printf("mean validation R²: %.2f\n", summary.MeanValidationScore)

	// Output: folds: 5
	// mean validation R²: 1.00
}
