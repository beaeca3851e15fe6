//go:build cgo

package native

import "github.com/analogrelay/abi-check/probe"

// Library calls straight into the linked C functions. It holds no native
// resources, so unlike handle-based bindings it needs no Close.
type Library struct{}

// Load returns the linked library.
func Load() (probe.Library, error) {
	return Library{}, nil
}

// AddOne calls addone.
func (Library) AddOne(x int32) int32 {
	return addOne(x)
}

// AddTwo calls addtwo.
func (Library) AddTwo(x int32) int32 {
	return addTwo(x)
}
