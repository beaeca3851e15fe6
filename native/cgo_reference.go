//go:build cgo && abicheck_reference

package native

/*
static inline int addone(int x) {
    return x + 1;
}

static inline int addtwo(int x) {
    return x + 2;
}
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
