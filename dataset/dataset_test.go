package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

func TestNew_Basic(t *testing.T) {
	ds, err := New(
		[]string{"sqft", "age"}, "price",
		[]float64{
			1000, 10,
			1500, 5,
			2000, 1,
		},
		[]float64{100, 200, 300},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if ds.NumRows() != 3 {
		t.Errorf("expected 3 rows, got %d", ds.NumRows())
	}
	if ds.NumFeatures() != 2 {
		t.Errorf("expected 2 features, got %d", ds.NumFeatures())
	}
	if ds.TargetName() != "price" {
		t.Errorf("expected target name price, got %s", ds.TargetName())
	}

	names := ds.FeatureNames()
	if names[0] != "sqft" || names[1] != "age" {
		t.Errorf("unexpected feature names: %v", names)
	}

	if got := ds.Features().At(1, 0); got != 1500 {
		t.Errorf("features[1][0] = %v, want 1500", got)
	}
	if got := ds.Target().At(2, 0); got != 300 {
		t.Errorf("target[2] = %v, want 300", got)
	}

	row := ds.Row(1)
	if row[0] != 1500 || row[1] != 5 {
		t.Errorf("Row(1) = %v, want [1500 5]", row)
	}
}

func TestNew_EmptyDatasetIsConstructible(t *testing.T) {
	ds, err := New([]string{"x"}, "y", nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ds.NumRows() != 0 {
		t.Errorf("expected 0 rows, got %d", ds.NumRows())
	}
}

func TestNew_SchemaValidation(t *testing.T) {
	cases := []struct {
		name         string
		featureNames []string
		targetName   string
		features     []float64
		target       []float64
	}{
		{"no features", nil, "y", nil, nil},
		{"empty target name", []string{"x"}, "", []float64{1}, []float64{1}},
		{"empty feature name", []string{"x", ""}, "y", []float64{1, 2}, []float64{1}},
		{"duplicate feature names", []string{"x", "x"}, "y", []float64{1, 2}, []float64{1}},
		{"target collides with feature", []string{"x", "y"}, "y", []float64{1, 2}, []float64{1}},
		{"features not divisible by columns", []string{"a", "b"}, "y", []float64{1, 2, 3}, []float64{1}},
		{"target length mismatch", []string{"x"}, "y", []float64{1, 2, 3}, []float64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.featureNames, tc.targetName, tc.features, tc.target); err == nil {
				t.Error("New should fail")
			}
		})
	}
}

func TestFeatureNames_ReturnsCopy(t *testing.T) {
	ds, err := New([]string{"a", "b"}, "y", []float64{1, 2}, []float64{3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	names := ds.FeatureNames()
	names[0] = "mutated"
	if ds.FeatureNames()[0] != "a" {
		t.Error("FeatureNames must return a copy")
	}
}

func TestSubset_WithRepeats(t *testing.T) {
	ds, err := New([]string{"x"}, "y",
		[]float64{10, 20, 30},
		[]float64{1, 2, 3},
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	sub, err := ds.Subset([]int{2, 0, 2})
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}

	if sub.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", sub.NumRows())
	}
	wantX := []float64{30, 10, 30}
	wantY := []float64{3, 1, 3}
	for i := range wantX {
		if sub.Features().At(i, 0) != wantX[i] {
			t.Errorf("features[%d] = %v, want %v", i, sub.Features().At(i, 0), wantX[i])
		}
		if sub.Target().At(i, 0) != wantY[i] {
			t.Errorf("target[%d] = %v, want %v", i, sub.Target().At(i, 0), wantY[i])
		}
	}

	// Source rows are untouched.
	if ds.Features().At(0, 0) != 10 {
		t.Error("Subset must not mutate the source dataset")
	}
}

func TestSubset_IndexOutOfRange(t *testing.T) {
	ds, err := New([]string{"x"}, "y", []float64{1, 2}, []float64{1, 2})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, indices := range [][]int{{-1}, {2}, {0, 5}} {
		if _, err := ds.Subset(indices); err == nil {
			t.Errorf("Subset(%v) should fail", indices)
		} else {
			var valueErr *errors.ValueError
			if !errors.As(err, &valueErr) {
				t.Errorf("expected ValueError, got %v", err)
			}
		}
	}
}

func TestFromMatrix(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	y := mat.NewDense(2, 1, []float64{10, 20})

	ds, err := FromMatrix([]string{"a", "b"}, "y", X, y)
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}
	if ds.NumRows() != 2 || ds.NumFeatures() != 2 {
		t.Fatalf("unexpected shape %dx%d", ds.NumRows(), ds.NumFeatures())
	}
	if ds.Features().At(1, 1) != 4 {
		t.Errorf("features[1][1] = %v, want 4", ds.Features().At(1, 1))
	}

	// The dataset holds a copy.
	X.Set(0, 0, 99)
	if ds.Features().At(0, 0) != 1 {
		t.Error("FromMatrix must copy the input matrix")
	}
}

func TestFromMatrix_ShapeChecks(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	if _, err := FromMatrix([]string{"a"}, "y", X, mat.NewDense(2, 1, nil)); err == nil {
		t.Error("mismatched feature names should fail")
	}
	if _, err := FromMatrix([]string{"a", "b"}, "y", X, mat.NewDense(3, 1, nil)); err == nil {
		t.Error("mismatched target rows should fail")
	}
	if _, err := FromMatrix([]string{"a", "b"}, "y", X, mat.NewDense(2, 2, nil)); err == nil {
		t.Error("non-column target should fail")
	}
}
