package apigw

import (
	"fmt"
)

// Callback receives the outcome of an asynchronous run. Exactly one of its
// methods is called per run.
type Callback[T any] interface {
	OnResult(value T)
	OnError(err error)
}

// CallbackFuncs adapts a pair of functions to Callback. A nil function is
// skipped.
type CallbackFuncs[T any] struct {
	Result func(value T)
	Error  func(err error)
}

// OnResult implements Callback.
func (c CallbackFuncs[T]) OnResult(value T) {
	if c.Result != nil {
		c.Result(value)
	}
}

// OnError implements Callback.
func (c CallbackFuncs[T]) OnError(err error) {
	if c.Error != nil {
		c.Error(err)
	}
}

// OperationError wraps a failure from an asynchronous run with the
// description of the operation that failed.
type OperationError struct {
	Description string
	Err         error
}

// Error returns the operation description.
func (e *OperationError) Error() string {
	return e.Description
}

// Unwrap returns the original failure.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panic in asynchronous work.
type PanicError struct {
	Value interface{}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// ReturningRunnable wraps a unit of work that produces a value or fails, and
// lets the caller run it inline or on its own goroutine. Every call runs the
// work again; results are not memoized.
type ReturningRunnable[T any] struct {
	fn          func() (T, error)
	description string
}

// NewReturningRunnable creates a runnable for fn. An empty description means
// asynchronous failures are delivered unchanged.
func NewReturningRunnable[T any](description string, fn func() (T, error)) *ReturningRunnable[T] {
	return &ReturningRunnable[T]{
		fn:          fn,
		description: description,
	}
}

// Description returns the operation description, if any.
func (r *ReturningRunnable[T]) Description() string {
	return r.description
}

// Run executes the work on the calling goroutine. A failure is returned
// exactly as the work produced it.
func (r *ReturningRunnable[T]) Run() (T, error) {
	return r.fn()
}

// RunAsync executes the work on a new goroutine and reports the outcome to
// callback. When a description is set, a failure is wrapped in an
// OperationError carrying it. RunAsync does not wait for the work to finish.
func (r *ReturningRunnable[T]) RunAsync(callback Callback[T]) {
	go r.runAndReport(callback)
}

func (r *ReturningRunnable[T]) runAndReport(callback Callback[T]) {
	value, err := r.runRecovering()
	if err != nil {
		if r.description != "" {
			err = &OperationError{Description: r.description, Err: err}
		}

		callback.OnError(err)

		return
	}

	callback.OnResult(value)
}

func (r *ReturningRunnable[T]) runRecovering() (value T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero T

			value = zero
			err = &PanicError{Value: recovered}
		}
	}()

	return r.fn()
}
