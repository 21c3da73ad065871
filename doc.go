// Package modelvalidation provides a resampling-based model evaluation
// harness for Go: repeated randomized fitting to estimate a model
// family's bias and variance, k-fold cross-validation, and the
// supporting dataset, metrics and preprocessing packages.
//
// # Components
//
//   - validation: ResamplingEvaluator, KFoldValidator, TrainTestSplit
//   - dataset: schema-checked tabular data with named columns
//   - linear: ordinary least squares reference model
//   - metrics: MSE, RMSE, MAE, R²
//   - preprocessing: StandardScaler, PolynomialFeatures
//
// # Quick start
//
//	ds, err := dataset.New(
//	    []string{"sqft"}, "price",
//	    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
//	    []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kf := validation.NewKFoldValidator(5)
//	summary, err := kf.CrossValidate(ds, func() model.Regressor {
//	    return linear.NewLinearRegression()
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.MeanValidationScore)
//
// Both evaluation components accept any model implementing the
// core/model Regressor interface and draw all randomness from explicit
// seeds, so runs are reproducible and safely parallel.
package modelvalidation
