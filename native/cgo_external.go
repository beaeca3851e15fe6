//go:build cgo && !abicheck_reference

package native

/*
#cgo pkg-config: abi_check
#include "abi_check.h"
*/
// #cgo nocallback addone
// #cgo noescape addone
// #cgo nocallback addtwo
// #cgo noescape addtwo
import "C"

func addOne(x int32) int32 {
	return int32(C.addone(C.int(x)))
}

func addTwo(x int32) int32 {
	return int32(C.addtwo(C.int(x)))
}
