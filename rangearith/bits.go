package rangearith

import "math/bits"

// IsPow2 reports whether size is an exact power of two. Adapted from the
// node-store MMR's power-of-two check; used by tests asserting peak
// collapse happens exactly at a power-of-two boundary.
func IsPow2(size uint64) bool {
	return size != 0 && bits.OnesCount64(size) == 1
}
