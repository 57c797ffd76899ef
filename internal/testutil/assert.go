// Package testutil provides shared test utilities for the checkers-go project.
package testutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// T is the part of *testing.T the assertions use.
type T interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// moveOrder sorts moves by notation for order-insensitive comparison.
var moveOrder = cmpopts.SortSlices(func(a, b checkers.Move) bool { return a.String() < b.String() })

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, msgAndArgs, "error = %v, want %v", err, target)
	}
}

// AssertMoves compares two move lists in order. A nil list equals an empty one.
func AssertMoves(t T, got, want []checkers.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		fail(t, msgAndArgs, "moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameMoves compares two move lists ignoring order.
func AssertSameMoves(t T, got, want []checkers.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty(), moveOrder); diff != "" {
		fail(t, msgAndArgs, "moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t T, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// fail reports a failure, prefixed by the caller's optional message.
func fail(t T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: "+format, append([]interface{}{msg}, args...)...)
		return
	}
	t.Errorf(format, args...)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
