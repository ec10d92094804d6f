package bitpack

import "testing"

func TestSize(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{100, 25},
		{101, 26},
	}

	for _, tc := range tests {
		if got := Size(tc.n); got != tc.want {
			t.Errorf("Size(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestPutGet(t *testing.T) {
	codes := []uint8{0, 1, 2, 3, 3, 2, 1, 0, 2}
	buf := make([]byte, Size(len(codes)))

	for i, c := range codes {
		Put(buf, i, c)
	}
	for i, want := range codes {
		if got := Get(buf, i); got != want {
			t.Errorf("Get(buf, %d) = %d, want %d", i, got, want)
		}
	}
}

func TestPut_DoesNotDisturbNeighbors(t *testing.T) {
	buf := make([]byte, 1)
	Put(buf, 1, 3)
	if got := Get(buf, 0); got != 0 {
		t.Errorf("slot 0 = %d after writing slot 1", got)
	}
	if got := Get(buf, 2); got != 0 {
		t.Errorf("slot 2 = %d after writing slot 1", got)
	}
	if got := Get(buf, 1); got != 3 {
		t.Errorf("slot 1 = %d, want 3", got)
	}
}

func TestTailMask(t *testing.T) {
	tests := []struct {
		n    int
		want byte
	}{
		{0, 0xFF},
		{1, 0x03},
		{2, 0x0F},
		{3, 0x3F},
		{4, 0xFF},
		{5, 0x03},
		{7, 0x3F},
		{8, 0xFF},
	}

	for _, tc := range tests {
		if got := TailMask(tc.n); got != tc.want {
			t.Errorf("TailMask(%d) = %#02x, want %#02x", tc.n, got, tc.want)
		}
	}
}
