package simulador

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidParameter matches every ValidationError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInternal reports a broken post-condition in the engine: a coding
	// defect, never a user mistake.
	ErrInternal = errors.New("internal error")
)

// ValidationError reports a single parameter outside of its domain.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidParameter }

// ValidationErrors collects all the ValidationError found in a parameter set.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (errs ValidationErrors) Unwrap() []error {
	res := make([]error, len(errs))
	for i, e := range errs {
		res[i] = e
	}
	return res
}

// ByField indexes the validation messages by field key. It returns nil if
// err does not contain any ValidationError.
func ByField(err error) map[string]string {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		m := make(map[string]string, len(errs))
		for _, e := range errs {
			m[e.Field] = e.Reason
		}
		return m
	}
	var e *ValidationError
	if errors.As(err, &e) {
		return map[string]string{e.Field: e.Reason}
	}
	return nil
}
