package packed

import (
	"encoding/binary"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/dna-codec/errors"
	"github.com/wippyai/dna-codec/packed/internal/bitpack"
)

// Binary framing: a 4-byte big-endian base count followed by the packed
// buffer. The count is authoritative; the buffer size is derived from it.
const headerSize = 4

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Sequence) MarshalBinary() ([]byte, error) {
	if uint64(s.n) > math.MaxUint32 {
		return nil, errors.New(errors.PhaseMarshal, errors.KindOverflow).
			Detail("sequence length %d exceeds framing limit %d", s.n, uint32(math.MaxUint32)).
			Build()
	}
	out := make([]byte, headerSize+len(s.buf))
	binary.BigEndian.PutUint32(out, uint32(s.n))
	copy(out[headerSize:], s.buf)
	return out, nil
}

// UnmarshalBinary decodes data framed by MarshalBinary into a fresh
// Sequence. It rejects short or oversized payloads and nonzero padding bits
// in the final byte, so every decoded instance satisfies the same
// invariants as a constructed one. It is a package-level function rather
// than a method: built sequences are never mutated, including by decoding.
func UnmarshalBinary(data []byte) (*Sequence, error) {
	if len(data) < headerSize {
		return nil, errors.Truncated(errors.PhaseMarshal, headerSize, len(data))
	}
	n := int(binary.BigEndian.Uint32(data))
	want := bitpack.Size(n)
	body := data[headerSize:]
	if len(body) < want {
		return nil, errors.Truncated(errors.PhaseMarshal, headerSize+want, len(data))
	}
	if len(body) > want {
		return nil, errors.InvalidData(errors.PhaseMarshal, "trailing %d bytes after packed payload", len(body)-want)
	}
	if n > 0 {
		if stray := body[want-1] &^ bitpack.TailMask(n); stray != 0 {
			Logger().Debug("rejected packed payload",
				zap.Int("length", n),
				zap.Uint8("padding", stray))
			return nil, errors.InvalidData(errors.PhaseMarshal, "nonzero padding bits %#02x in final byte", stray)
		}
	}
	buf := make([]byte, want)
	copy(buf, body)
	return &Sequence{buf: buf, n: n}, nil
}
