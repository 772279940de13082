package utils

import (
	"unsafe"
)

// PointerToBytes exposes the memory behind val as a byte slice of the given
// length. The type must not contain pointers or slices.
func PointerToBytes[T any](val *T, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), length)
}

// BytesToPointer reinterprets the start of b as a value of type T. The slice
// must be at least unsafe.Sizeof(T) bytes long and stay alive as long as the
// returned pointer is used.
func BytesToPointer[T any](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}
