// Package hash contains hash functions for building structural hashes of
// values.
package hash

import "unsafe"

// DJBInit is the initial accumulator of the DJB hash.
const DJBInit uint32 = 5381

// DJBCombine folds one more hash code into a DJB accumulator.
func DJBCombine(acc, h uint32) uint32 {
	return acc<<5 + acc + h
}

// DJB combines the given hash codes with the DJB algorithm.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

// UInt64 hashes a 64-bit integer into 32 bits.
func UInt64(u uint64) uint32 {
	return DJBCombine(uint32(u>>32), uint32(u&0xffffffff))
}

// UIntPtr hashes a uintptr.
func UIntPtr(p uintptr) uint32 {
	if unsafe.Sizeof(p) == 4 {
		return uint32(p)
	}
	return UInt64(uint64(p))
}

// String hashes a string.
func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}
