package assert

import "fmt"

func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

func AssertNotEmpty(s string) {
	if s == "" {
		panic("expected non-empty string")
	}
}

func AssertNotNil(a any) {
	if a == nil {
		panic("expect non-nil value")
	}
}

// AssertInRange panics unless lo <= v <= hi.
func AssertInRange[T int | uint32 | float64](v, lo, hi T) {
	if v < lo || v > hi {
		panic(fmt.Sprintf("expected value in [%v, %v], got %v", lo, hi, v))
	}
}
