// Package packed provides the 2-bit packed nucleotide sequence container.
//
// A Sequence stores an ordered run of bases from the nuc package at two bits
// per base, four bases per byte. It tracks its logical length separately from
// its buffer size, so the final byte may be partially occupied; unused
// trailing bit pairs are always zero.
//
// # Key Types
//
//	Sequence  - Immutable packed container
//
// # Construction
//
//	s, err := packed.FromString("ACGT")       // fallible, fail-fast text path
//	s := packed.Collect(producer)             // infallible, typed iterator path
//	s := packed.Of(nuc.A, nuc.C, nuc.G)       // infallible, variadic path
//
// # Access
//
//	base, err := s.At(2)    // O(1) random access
//	for i, b := range s.All() { ... }
//	text := s.String()      // uppercase round-trip of the input
//
// A Sequence is never mutated after construction. It may be shared freely
// across goroutines for concurrent reads without synchronization.
//
// # Serialization
//
// MarshalBinary frames a sequence as a 4-byte big-endian length followed by
// the packed buffer; the length is authoritative and disambiguates the
// padding bits of the final byte. UnmarshalBinary is a package-level
// function returning a fresh Sequence, keeping built instances immutable.
package packed
