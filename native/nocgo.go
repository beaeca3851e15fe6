//go:build !cgo

package native

import "github.com/analogrelay/abi-check/probe"

func Load() (probe.Library, error) {
	return nil, ErrUnavailable
}
