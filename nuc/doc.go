// Package nuc defines the four-letter nucleotide alphabet and its text
// parsing rules.
//
// A Nuc is one of the four bases (A, C, G, T) with a fixed 2-bit code:
//
//	Base        Code
//	─────────────────
//	A (Adenine)    0
//	C (Cytosine)   1
//	G (Guanine)    2
//	T (Thymine)    3
//
// The mapping is total and bijective: Code and FromCode are exact inverses
// over 0..3, and no fifth value exists. Parsing is case-insensitive and
// fails with a structured error carrying the offending input unit.
package nuc
