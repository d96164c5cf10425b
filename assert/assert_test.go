package assert

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestAssertions(t *testing.T) {
	tassert.NotPanics(t, func() { Assert(true, "unreachable") })
	tassert.PanicsWithValue(t, "boom", func() { Assert(false, "boom") })

	tassert.NotPanics(t, func() { AssertNotEmpty("x") })
	tassert.Panics(t, func() { AssertNotEmpty("") })

	tassert.NotPanics(t, func() { AssertNotNil(1) })
	tassert.Panics(t, func() { AssertNotNil(nil) })
}

func TestAssertInRange(t *testing.T) {
	tassert.NotPanics(t, func() { AssertInRange(3, 1, 6) })
	tassert.NotPanics(t, func() { AssertInRange(0.5, 0, 1) })
	tassert.PanicsWithValue(t, "expected value in [1, 6], got 7", func() { AssertInRange(7, 1, 6) })
	tassert.Panics(t, func() { AssertInRange(uint32(0), 1, 2) })
}
