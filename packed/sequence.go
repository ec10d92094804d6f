package packed

import (
	"bytes"
	"iter"
	"strconv"
	"strings"

	"github.com/wippyai/dna-codec/errors"
	"github.com/wippyai/dna-codec/nuc"
	"github.com/wippyai/dna-codec/packed/internal/bitpack"
)

// Sequence is an immutable run of nucleotide bases stored at 2 bits each.
// The zero value is an empty sequence.
type Sequence struct {
	buf []byte
	n   int
}

// FromString parses text into a packed sequence, case-insensitively.
// Scanning is left to right and stops at the first invalid character; the
// returned error names that character and its position, and no later
// characters are examined. Empty input yields an empty sequence, not an
// error.
func FromString(s string) (*Sequence, error) {
	buf := make([]byte, bitpack.Size(len(s)))
	slot := 0
	for _, r := range s {
		base, err := nuc.ParseChar(r)
		if err != nil {
			return nil, errors.InvalidSymbol(errors.PhaseParse, []string{"input[" + strconv.Itoa(slot) + "]"}, r)
		}
		bitpack.Put(buf, slot, base.Code())
		slot++
	}
	// Valid characters are all ASCII, so slot == len(s) here and the buffer
	// is exactly ceil(n/4) bytes.
	return &Sequence{buf: buf, n: slot}, nil
}

// Collect builds a sequence from a typed iterator of bases. The iterator is
// consumed fully before Collect returns. Because every Nuc is valid by
// construction, this path cannot fail.
func Collect(seq iter.Seq[nuc.Nuc]) *Sequence {
	var buf []byte
	n := 0
	for base := range seq {
		if n&3 == 0 {
			buf = append(buf, 0)
		}
		bitpack.Put(buf, n, base.Code())
		n++
	}
	return &Sequence{buf: buf, n: n}
}

// Of builds a sequence from the given bases.
func Of(bases ...nuc.Nuc) *Sequence {
	buf := make([]byte, bitpack.Size(len(bases)))
	for i, base := range bases {
		bitpack.Put(buf, i, base.Code())
	}
	return &Sequence{buf: buf, n: len(bases)}
}

// Len returns the logical length: the number of bases stored.
func (s *Sequence) Len() int {
	return s.n
}

// PackedSize returns the size in bytes of the packed buffer, always
// ceil(Len()/4).
func (s *Sequence) PackedSize() int {
	return len(s.buf)
}

// At returns the base at index i. Indexes outside [0, Len()) return an
// out-of-bounds error; the padding bits of the final byte are never decoded.
func (s *Sequence) At(i int) (nuc.Nuc, error) {
	if i < 0 || i >= s.n {
		return 0, errors.OutOfBounds(errors.PhaseAccess, nil, i, s.n)
	}
	return nuc.Nuc(bitpack.Get(s.buf, i)), nil
}

// All returns an iterator over (index, base) pairs in sequence order.
func (s *Sequence) All() iter.Seq2[int, nuc.Nuc] {
	return func(yield func(int, nuc.Nuc) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, nuc.Nuc(bitpack.Get(s.buf, i))) {
				return
			}
		}
	}
}

// String reconstructs the sequence as uppercase text. For any s built by
// FromString(text), s.String() equals strings.ToUpper(text).
func (s *Sequence) String() string {
	var b strings.Builder
	b.Grow(s.n)
	for i := 0; i < s.n; i++ {
		b.WriteString(nuc.Nuc(bitpack.Get(s.buf, i)).String())
	}
	return b.String()
}

// Equal reports whether two sequences hold the same bases in the same
// order. Buffer comparison is well-defined because padding bits are zeroed
// at construction.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.n != other.n {
		return false
	}
	return bytes.Equal(s.buf, other.buf)
}
