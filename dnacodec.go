package dnacodec

import (
	"github.com/wippyai/dna-codec/nuc"
	"github.com/wippyai/dna-codec/packed"
)

// Nuc is a single nucleotide base.
type Nuc = nuc.Nuc

const (
	A = nuc.A
	C = nuc.C
	G = nuc.G
	T = nuc.T
)

// Sequence is the 2-bit packed sequence container.
type Sequence = packed.Sequence

// FromString parses case-insensitive text into a packed sequence.
var FromString = packed.FromString

// Collect builds a packed sequence from a typed iterator of bases.
var Collect = packed.Collect

// Of builds a packed sequence from the given bases.
var Of = packed.Of
