// Package results defines the envelope every mutating service operation
// returns. Construction goes through Success, OK or Failure only, so a
// result can never claim success while carrying no payload or message.
package results

type OperationResult[T any] struct {
	success bool
	data    *T
	message string
	detail  string
}

// Success wraps a payload with a message.
func Success[T any](data T, message string) OperationResult[T] {
	return OperationResult[T]{success: true, data: &data, message: message}
}

// OK builds a payload-less success. The boolean payload is only a marker.
func OK(message string) OperationResult[bool] {
	return Success(true, message)
}

// Failure carries the user-facing message plus optional diagnostic detail,
// such as the text of an underlying persistence fault.
func Failure[T any](message string, detail ...string) OperationResult[T] {
	r := OperationResult[T]{message: message}
	if len(detail) > 0 {
		r.detail = detail[0]
	}
	return r
}

func (r OperationResult[T]) IsSuccess() bool {
	return r.success
}

// Data returns the payload and whether one is present. Failures never carry
// a payload.
func (r OperationResult[T]) Data() (T, bool) {
	if r.data == nil {
		var zero T
		return zero, false
	}
	return *r.data, true
}

func (r OperationResult[T]) Message() string {
	return r.message
}

// Detail is empty unless the failure wrapped an underlying fault.
func (r OperationResult[T]) Detail() string {
	return r.detail
}
