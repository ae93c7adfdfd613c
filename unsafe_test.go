package fasthash_test

import "unsafe"

func unsafePointer(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
