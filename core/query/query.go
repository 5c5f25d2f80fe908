// Package query models one run of the program: the integer read from the
// console, the decision taken on it and the computed factorial.
package query

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/faktorial/math"
)

var (
	// ErrParse is reported when the console line is not an integer.
	ErrParse = errors.New("input is not an integer")
	// ErrDomain is reported for negative input.
	ErrDomain = errors.New("factorial is not defined for negative numbers")
)

// Input is the optional integer obtained from the user.
type Input struct {
	value   int64
	present bool
	cause   error
}

// Some returns a present input.
func Some(v int64) Input {
	return Input{value: v, present: true}
}

// None returns an absent input. cause may be nil.
func None(cause error) Input {
	return Input{cause: cause}
}

// Get returns the value and whether it is present.
func (i Input) Get() (int64, bool) {
	return i.value, i.present
}

// Cause explains why the input is absent.
func (i Input) Cause() error {
	return i.cause
}

// Query is a single end-to-end execution.
type Query struct {
	Input Input

	result    int64
	hasResult bool
	state     State
	err       error
}

// Resolve decides the outcome for in and computes the factorial when
// the input allows it.
func Resolve(in Input) *Query {
	q := &Query{Input: in}

	v, ok := in.Get()
	switch {
	case !ok:
		q.state = ParseFailed
		q.err = ErrParse
		if cause := in.Cause(); cause != nil {
			q.err = fmt.Errorf("%w: %w", ErrParse, cause)
		}
	case v < 0:
		q.state = InputNegative
		q.err = ErrDomain
	default:
		q.state = ComputingResult
		q.result = math.Factorial(v)
		q.hasResult = true
	}

	return q
}

// Result returns the factorial if one was computed.
func (q *Query) Result() (int64, bool) {
	return q.result, q.hasResult
}

// State returns the current state.
func (q *Query) State() State {
	return q.state
}

// Err returns ErrParse or ErrDomain (possibly wrapped) for failed queries.
func (q *Query) Err() error {
	return q.err
}

// MarkPrinted records that the result line was written.
func (q *Query) MarkPrinted() error {
	if q.state != ComputingResult {
		return errors.Errorf("cannot mark %s query as printed", q.state)
	}
	q.state = ResultPrinted
	return nil
}
