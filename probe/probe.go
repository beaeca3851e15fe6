// Package probe checks that a linked library returns the values its
// header promises for a fixed set of inputs.
package probe

import "fmt"

// Library is the set of functions exported by abi_check.h.
type Library interface {
	AddOne(x int32) int32
	AddTwo(x int32) int32
}

// MismatchError reports a check whose function returned something other
// than the expected constant.
type MismatchError struct {
	Expr string
	Want int32
	Got  int32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s != %d", e.Expr, e.Got)
}

// Check is a single (input, expected output) pair for one library function.
type Check struct {
	Expr  string
	Input int32
	Want  int32
	Call  func(Library, int32) int32
}

// Checks are evaluated in order. The literals are the library's documented
// results for input 2 and must not be derived from each other.
var Checks = []Check{
	{
		Expr:  "2 + 1",
		Input: 2,
		Want:  3,
		Call:  Library.AddOne,
	},
	{
		Expr:  "2 + 2",
		Input: 2,
		Want:  4,
		Call:  Library.AddTwo,
	},
}

// Run evaluates Checks against lib.
func Run(lib Library) error {
	return RunChecks(lib, Checks)
}

// RunChecks calls each check's function once and stops at the first
// mismatch, returning it as a *MismatchError.
func RunChecks(lib Library, checks []Check) error {
	for _, c := range checks {
		got := c.Call(lib, c.Input)
		if got != c.Want {
			return &MismatchError{Expr: c.Expr, Want: c.Want, Got: got}
		}
	}
	return nil
}
