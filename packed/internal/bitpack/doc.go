// Package bitpack implements 2-bit group arithmetic over a byte buffer.
//
// Each byte holds four 2-bit slots. Slot k of a byte occupies bits 2k..2k+1
// (little-endian within the byte), so for global slot i:
//
//	byte  = i >> 2
//	shift = (i & 3) << 1
//
// This package is internal to the packed container.
package bitpack
