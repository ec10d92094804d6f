// Package dnacodec provides a validated 2-bit codec for nucleotide
// sequences.
//
// A sequence over the four-base DNA alphabet is stored at two bits per base
// instead of a byte per base, with lossless O(1) random-access decode and
// fail-fast validation of text input.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	dnacodec/       Root package with public type aliases
//	├── nuc/        The four-valued base alphabet and its parsers
//	├── packed/     The packed sequence container and binary framing
//	├── errors/     Structured error types for debugging
//	└── cmd/dnapack Command line packer and interactive inspector
//
// # Quick Start
//
// Parse text and read it back:
//
//	seq, err := packed.FromString("gattaca")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	base, _ := seq.At(0)
//	fmt.Println(base)         // "G"
//	fmt.Println(seq.String()) // "GATTACA"
//	fmt.Println(seq.Len())    // 7
//
// Typed callers skip the fallible text path entirely:
//
//	seq := packed.Of(nuc.G, nuc.A, nuc.T)
//
// # Encoding
//
// Each byte of the packed buffer holds four bases:
//
//	Base   Code
//	────────────
//	A      0b00
//	C      0b01
//	G      0b10
//	T      0b11
//
// The logical length is tracked separately from the buffer, and unused bit
// pairs in the final byte are always zero, so equality over two sequences
// of the same length is plain buffer equality.
package dnacodec
