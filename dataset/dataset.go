// Package dataset provides the schema-checked tabular data abstraction
// consumed by the evaluation harness. A Dataset binds named numeric
// feature columns to a single named target column; the schema is fixed
// at construction and the data is read-only afterwards.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

// Dataset is an ordered collection of rows with a fixed set of named
// numeric feature columns and one numeric target column. It is owned
// by the caller and never mutated by the evaluation components.
type Dataset struct {
	featureNames []string
	targetName   string
	features     *mat.Dense
	target       *mat.Dense // n×1
}

// New builds a Dataset from row-major feature values and a target
// column. The schema is validated: feature and target row counts must
// match, column names must be unique and non-empty, and the target
// name must not collide with a feature name. Rows may be empty (an
// empty Dataset is constructible; the evaluation components reject it
// at call time).
func New(featureNames []string, targetName string, features []float64, target []float64) (*Dataset, error) {
	nFeatures := len(featureNames)
	if nFeatures == 0 {
		return nil, errors.NewValueError("dataset.New", "at least one feature column is required")
	}
	if targetName == "" {
		return nil, errors.NewValueError("dataset.New", "target column name must not be empty")
	}

	seen := make(map[string]bool, nFeatures+1)
	for _, name := range featureNames {
		if name == "" {
			return nil, errors.NewValueError("dataset.New", "feature column names must not be empty")
		}
		if seen[name] {
			return nil, errors.NewValueError("dataset.New", "duplicate feature column name: "+name)
		}
		seen[name] = true
	}
	if seen[targetName] {
		return nil, errors.NewValueError("dataset.New", "target column name collides with feature column: "+targetName)
	}

	if len(features)%nFeatures != 0 {
		return nil, errors.NewDimensionError("dataset.New", nFeatures, len(features)%nFeatures, 1)
	}
	nRows := len(features) / nFeatures
	if len(target) != nRows {
		return nil, errors.NewDimensionError("dataset.New", nRows, len(target), 0)
	}

	ds := &Dataset{
		featureNames: append([]string(nil), featureNames...),
		targetName:   targetName,
	}
	if nRows > 0 {
		ds.features = mat.NewDense(nRows, nFeatures, append([]float64(nil), features...))
		ds.target = mat.NewDense(nRows, 1, append([]float64(nil), target...))
	}
	return ds, nil
}

// FromMatrix builds a Dataset from an existing feature matrix and
// target column vector. The data is copied; the caller keeps ownership
// of the inputs.
func FromMatrix(featureNames []string, targetName string, X mat.Matrix, y mat.Matrix) (*Dataset, error) {
	r, c := X.Dims()
	if c != len(featureNames) {
		return nil, errors.NewDimensionError("dataset.FromMatrix", len(featureNames), c, 1)
	}
	ry, cy := y.Dims()
	if cy != 1 {
		return nil, errors.NewValueError("dataset.FromMatrix", "target must be a column vector (n×1 matrix)")
	}
	if ry != r {
		return nil, errors.NewDimensionError("dataset.FromMatrix", r, ry, 0)
	}

	features := make([]float64, 0, r*c)
	target := make([]float64, 0, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			features = append(features, X.At(i, j))
		}
		target = append(target, y.At(i, 0))
	}
	return New(featureNames, targetName, features, target)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	if d.features == nil {
		return 0
	}
	r, _ := d.features.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (d *Dataset) NumFeatures() int {
	return len(d.featureNames)
}

// FeatureNames returns a copy of the feature column names in order.
func (d *Dataset) FeatureNames() []string {
	return append([]string(nil), d.featureNames...)
}

// TargetName returns the target column name.
func (d *Dataset) TargetName() string {
	return d.targetName
}

// Features returns the n×d feature matrix. The returned matrix shares
// storage with the Dataset and must not be mutated.
func (d *Dataset) Features() mat.Matrix {
	return d.features
}

// Target returns the n×1 target matrix. The returned matrix shares
// storage with the Dataset and must not be mutated.
func (d *Dataset) Target() mat.Matrix {
	return d.target
}

// Row returns a copy of the feature values of row i.
func (d *Dataset) Row(i int) []float64 {
	row := make([]float64, d.NumFeatures())
	mat.Row(row, i, d.features)
	return row
}

// Subset materializes a new Dataset containing the given rows in the
// given order. Indices may repeat, which is how bootstrap samples are
// built. The receiver is left untouched.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	n := d.NumRows()
	c := d.NumFeatures()

	features := make([]float64, 0, len(indices)*c)
	target := make([]float64, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.NewValueError("dataset.Subset", "row index out of range")
		}
		for j := 0; j < c; j++ {
			features = append(features, d.features.At(idx, j))
		}
		target = append(target, d.target.At(idx, 0))
	}
	return New(d.featureNames, d.targetName, features, target)
}
