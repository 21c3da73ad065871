// Package errors provides structured error handling for the evaluation
// harness. Error types carry the parameters that caused the failure so
// callers can branch on them with As, and every constructor attaches a
// cockroachdb stack trace.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Input-validation error types
//
// ===========================================================================

// EmptyDatasetError is returned when an operation receives a dataset
// with zero rows. Detected before any model is constructed.
type EmptyDatasetError struct {
	Op string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("modelvalidation: %s: dataset has no rows", e.Op)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EmptyDatasetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "EmptyDatasetError")
}

// NewEmptyDatasetError creates an EmptyDatasetError with a stack trace.
func NewEmptyDatasetError(op string) error {
	err := &EmptyDatasetError{Op: op}
	return errors.WithStack(err)
}

// InvalidSampleSizeError is returned when a resampling sample size is
// non-positive, or exceeds the dataset size when drawing without
// replacement.
type InvalidSampleSizeError struct {
	Op              string
	SampleSize      int
	NumRows         int
	WithReplacement bool
}

func (e *InvalidSampleSizeError) Error() string {
	if !e.WithReplacement && e.SampleSize > e.NumRows {
		return fmt.Sprintf("modelvalidation: %s: sample size %d exceeds dataset size %d when drawing without replacement",
			e.Op, e.SampleSize, e.NumRows)
	}
	return fmt.Sprintf("modelvalidation: %s: sample size must be positive, got %d", e.Op, e.SampleSize)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InvalidSampleSizeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("sample_size", e.SampleSize).
		Int("num_rows", e.NumRows).
		Bool("with_replacement", e.WithReplacement).
		Str("type", "InvalidSampleSizeError")
}

// NewInvalidSampleSizeError creates an InvalidSampleSizeError with a stack trace.
func NewInvalidSampleSizeError(op string, sampleSize, numRows int, withReplacement bool) error {
	err := &InvalidSampleSizeError{
		Op:              op,
		SampleSize:      sampleSize,
		NumRows:         numRows,
		WithReplacement: withReplacement,
	}
	return errors.WithStack(err)
}

// InvalidKError is returned when the number of cross-validation folds
// is below 2 or above the dataset row count.
type InvalidKError struct {
	Op      string
	K       int
	NumRows int
}

func (e *InvalidKError) Error() string {
	return fmt.Sprintf("modelvalidation: %s: k must be in [2, %d], got %d", e.Op, e.NumRows, e.K)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InvalidKError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("k", e.K).
		Int("num_rows", e.NumRows).
		Str("type", "InvalidKError")
}

// NewInvalidKError creates an InvalidKError with a stack trace.
func NewInvalidKError(op string, k, numRows int) error {
	err := &InvalidKError{Op: op, K: k, NumRows: numRows}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Model capability failures
//
// ===========================================================================

// ModelFailureError wraps a failure raised by the external model
// capability during fit, predict or score. Index identifies the
// repetition or fold that failed; the harness never retries, so a
// single failure aborts the whole run.
type ModelFailureError struct {
	Op    string
	Stage string // "fit", "predict" or "score"
	Index int    // repetition or fold index
	Err   error
}

func (e *ModelFailureError) Error() string {
	return fmt.Sprintf("modelvalidation: %s: model %s failed at index %d: %v", e.Op, e.Stage, e.Index, e.Err)
}

func (e *ModelFailureError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ModelFailureError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("stage", e.Stage).
		Int("index", e.Index).
		AnErr("cause", e.Err).
		Str("type", "ModelFailureError")
}

// NewModelFailureError creates a ModelFailureError with a stack trace.
func NewModelFailureError(op, stage string, index int, err error) error {
	modelErr := &ModelFailureError{Op: op, Stage: stage, Index: index, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	Shared estimator error types
//
// ===========================================================================

// NotFittedError is returned when Predict, Transform or Score is called
// on an estimator before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("modelvalidation: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data dimensions do not match
// expectations.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("modelvalidation: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is malformed or out of
// range in a way not covered by the more specific types above.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("modelvalidation: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData is the sentinel for empty input data.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is the sentinel for a singular design matrix.
	ErrSingularMatrix = New("singular matrix")
)
