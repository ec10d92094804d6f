package nuc

import (
	"strings"

	"github.com/wippyai/dna-codec/errors"
)

// Nuc is a single nucleotide base. The numeric value of each constant is
// its 2-bit packing code.
type Nuc uint8

const (
	A Nuc = iota // Adenine
	C            // Cytosine
	G            // Guanine
	T            // Thymine
)

// MaxCode is the largest valid packing code.
const MaxCode uint8 = 3

var nucNames = [...]string{
	A: "A",
	C: "C",
	G: "G",
	T: "T",
}

func (n Nuc) String() string {
	if int(n) < len(nucNames) {
		return nucNames[n]
	}
	return "unknown"
}

// Code returns the 2-bit packing code of the base.
func (n Nuc) Code() uint8 {
	return uint8(n)
}

// Valid reports whether n is one of the four defined bases.
func (n Nuc) Valid() bool {
	return uint8(n) <= MaxCode
}

// FromCode is the exact inverse of Code. Codes above MaxCode are rejected;
// they never decode to a base.
func FromCode(code uint8) (Nuc, error) {
	if code > MaxCode {
		return 0, errors.InvalidCode(errors.PhaseDecode, code, MaxCode)
	}
	return Nuc(code), nil
}

// ParseChar parses a single character, case-insensitively. The returned
// error identifies the offending character.
func ParseChar(r rune) (Nuc, error) {
	switch r {
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'T', 't':
		return T, nil
	}
	return 0, errors.InvalidSymbol(errors.PhaseParse, nil, r)
}

// Parse parses a single-base string token, case-insensitively. The returned
// error carries the offending token normalized to uppercase.
func Parse(s string) (Nuc, error) {
	upper := strings.ToUpper(s)
	switch upper {
	case "A":
		return A, nil
	case "C":
		return C, nil
	case "G":
		return G, nil
	case "T":
		return T, nil
	}
	return 0, errors.InvalidSymbol(errors.PhaseParse, nil, upper)
}
