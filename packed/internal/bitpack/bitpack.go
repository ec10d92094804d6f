package bitpack

// SlotsPerByte is the number of 2-bit groups in one byte.
const SlotsPerByte = 4

// Size returns the number of bytes needed to hold n 2-bit slots.
func Size(n int) int {
	return (n + 3) >> 2
}

// Get returns the 2-bit code stored in slot i.
func Get(buf []byte, i int) uint8 {
	return (buf[i>>2] >> ((i & 3) << 1)) & 0x3
}

// Put stores a 2-bit code in slot i. The caller guarantees the slot's bits
// are currently zero; Put ors the code in without clearing.
func Put(buf []byte, i int, code uint8) {
	buf[i>>2] |= (code & 0x3) << ((i & 3) << 1)
}

// TailMask returns the mask of occupied bits in the final byte of a buffer
// holding n slots. For n a multiple of SlotsPerByte (including zero) every
// bit of the final byte is occupied and the mask is 0xFF.
func TailMask(n int) byte {
	r := n & 3
	if r == 0 {
		return 0xFF
	}
	return byte(1<<(r<<1)) - 1
}
