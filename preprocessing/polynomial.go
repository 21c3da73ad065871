package preprocessing

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/marcosvppfernandes/ds-model-validation/core/model"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

// PolynomialFeatures expands a feature matrix with all polynomial
// combinations of the input columns up to Degree. Output column order
// is degree-major, lexicographic within a degree, matching the usual
// combinations-with-replacement enumeration.
type PolynomialFeatures struct {
	model.BaseEstimator

	// Degree is the maximum polynomial degree, at least 1.
	Degree int
	// InteractionOnly drops pure powers (x², x³, ...) and keeps only
	// products of distinct features.
	InteractionOnly bool
	// NFeaturesIn is the input feature count seen during Fit.
	NFeaturesIn int

	// combos holds one multiset of input column indices per output
	// column, in output order.
	combos [][]int
}

// NewPolynomialFeatures creates an expansion of the given degree.
func NewPolynomialFeatures(degree int) *PolynomialFeatures {
	return &PolynomialFeatures{Degree: degree}
}

// NewInteractionFeatures creates an interaction-only expansion of the
// given degree.
func NewInteractionFeatures(degree int) *PolynomialFeatures {
	return &PolynomialFeatures{Degree: degree, InteractionOnly: true}
}

// Fit records the input width and enumerates the output combinations.
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "PolynomialFeatures.Fit")
	}
	if p.Degree < 1 {
		return errors.NewValueError("PolynomialFeatures.Fit", "degree must be at least 1")
	}

	p.NFeaturesIn = c
	p.combos = p.combos[:0]
	for deg := 1; deg <= p.Degree; deg++ {
		p.combos = append(p.combos, enumerate(c, deg, p.InteractionOnly)...)
	}
	if len(p.combos) == 0 {
		return errors.NewValueError("PolynomialFeatures.Fit", "expansion produces no output columns")
	}

	p.SetFitted()
	return nil
}

// Transform expands X into the fitted polynomial columns.
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "Transform")
	}

	r, c := X.Dims()
	if c != p.NFeaturesIn {
		return nil, errors.NewDimensionError("PolynomialFeatures.Transform", p.NFeaturesIn, c, 1)
	}

	out := mat.NewDense(r, len(p.combos), nil)
	for i := 0; i < r; i++ {
		for col, combo := range p.combos {
			v := 1.0
			for _, j := range combo {
				v *= X.At(i, j)
			}
			out.Set(i, col, v)
		}
	}
	return out, nil
}

// FitTransform fits the expansion on X and returns the expanded X.
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// NumOutputFeatures returns the expanded column count, 0 before Fit.
func (p *PolynomialFeatures) NumOutputFeatures() int {
	return len(p.combos)
}

// FeatureNames derives output column names from the input column
// names, e.g. "rooms", "rooms age", "rooms^2". Used to rebuild a named
// Dataset from the expanded matrix.
func (p *PolynomialFeatures) FeatureNames(inputNames []string) ([]string, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "FeatureNames")
	}
	if len(inputNames) != p.NFeaturesIn {
		return nil, errors.NewDimensionError("PolynomialFeatures.FeatureNames", p.NFeaturesIn, len(inputNames), 1)
	}

	names := make([]string, len(p.combos))
	for col, combo := range p.combos {
		var parts []string
		for i := 0; i < len(combo); {
			j := combo[i]
			power := 1
			for i+power < len(combo) && combo[i+power] == j {
				power++
			}
			if power == 1 {
				parts = append(parts, inputNames[j])
			} else {
				parts = append(parts, inputNames[j]+"^"+strconv.Itoa(power))
			}
			i += power
		}
		names[col] = strings.Join(parts, " ")
	}
	return names, nil
}

// enumerate lists the sorted index multisets of the given length. With
// interactionOnly, indices must be strictly increasing instead of
// non-decreasing.
func enumerate(nFeatures, length int, interactionOnly bool) [][]int {
	var out [][]int
	combo := make([]int, length)

	var walk func(pos, start int)
	walk = func(pos, start int) {
		if pos == length {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for j := start; j < nFeatures; j++ {
			combo[pos] = j
			next := j
			if interactionOnly {
				next = j + 1
			}
			walk(pos+1, next)
		}
	}
	walk(0, 0)
	return out
}
