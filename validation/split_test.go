package validation

import (
	"sort"
	"testing"

	"github.com/marcosvppfernandes/ds-model-validation/dataset"
	"github.com/marcosvppfernandes/ds-model-validation/pkg/errors"
)

func targetValues(ds *dataset.Dataset) []float64 {
	out := make([]float64, ds.NumRows())
	for i := range out {
		out[i] = ds.Target().At(i, 0)
	}
	return out
}

func TestTrainTestSplit_Sizes(t *testing.T) {
	ds := linearDataset(t, 10)

	train, test, err := TrainTestSplit(ds, 0.3, 1)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}
	if test.NumRows() != 3 {
		t.Errorf("test partition has %d rows, want 3", test.NumRows())
	}
	if train.NumRows() != 7 {
		t.Errorf("train partition has %d rows, want 7", train.NumRows())
	}
}

func TestTrainTestSplit_CoversAllRows(t *testing.T) {
	ds := linearDataset(t, 20)

	train, test, err := TrainTestSplit(ds, 0.25, 9)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	combined := append(targetValues(train), targetValues(test)...)
	sort.Float64s(combined)

	original := targetValues(ds)
	sort.Float64s(original)

	if len(combined) != len(original) {
		t.Fatalf("partitions hold %d rows, want %d", len(combined), len(original))
	}
	for i := range original {
		if combined[i] != original[i] {
			t.Fatalf("partitions do not cover the original rows")
		}
	}
}

func TestTrainTestSplit_Reproducible(t *testing.T) {
	ds := noisyDataset(t, 30, 2)

	trainA, testA, err := TrainTestSplit(ds, 0.2, 55)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}
	trainB, testB, err := TrainTestSplit(ds, 0.2, 55)
	if err != nil {
		t.Fatalf("TrainTestSplit failed: %v", err)
	}

	for i, v := range targetValues(trainA) {
		if targetValues(trainB)[i] != v {
			t.Fatal("same seed produced different training partitions")
		}
	}
	for i, v := range targetValues(testA) {
		if targetValues(testB)[i] != v {
			t.Fatal("same seed produced different test partitions")
		}
	}
}

func TestTrainTestSplit_InvalidFraction(t *testing.T) {
	ds := linearDataset(t, 10)

	for _, fraction := range []float64{0, 1, -0.5, 1.5, 0.01} {
		if _, _, err := TrainTestSplit(ds, fraction, 1); err == nil {
			t.Errorf("fraction %v should be rejected", fraction)
		}
	}
}

func TestTrainTestSplit_EmptyDataset(t *testing.T) {
	empty, err := dataset.New([]string{"x"}, "y", nil, nil)
	if err != nil {
		t.Fatalf("failed to build empty dataset: %v", err)
	}

	if _, _, err := TrainTestSplit(empty, 0.3, 1); err == nil {
		t.Fatal("TrainTestSplit on empty dataset should fail")
	} else {
		var emptyErr *errors.EmptyDatasetError
		if !errors.As(err, &emptyErr) {
			t.Errorf("expected EmptyDatasetError, got %v", err)
		}
	}
}
