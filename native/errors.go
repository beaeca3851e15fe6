// Package native binds the abi_check library through cgo.
//
// By default the header and library are located with pkg-config
// (package name abi_check). Building with the abicheck_reference tag links a
// small inline C implementation instead, which is what the package tests use.
package native

import "errors"

// ErrUnavailable is returned by Load when the binary was built without cgo
// and therefore has no library linked in.
var ErrUnavailable = errors.New("native library unavailable: built without cgo")
