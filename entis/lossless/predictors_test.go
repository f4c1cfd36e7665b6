package lossless

import (
	"bytes"
	"slices"
	"testing"
)

func TestColorOpsIdentity(t *testing.T) {
	block := make([]byte, 3*16)
	for i := range block {
		block[i] = byte(i*37 + 11)
	}

	for _, op := range []byte{0x0, 0x1, 0x2, 0x3, 0x4, 0x8, 0xC} {
		t.Run(ColorOpName(op), func(t *testing.T) {
			got := slices.Clone(block)
			colorOps[op](got, 16)
			if !bytes.Equal(got, block) {
				t.Errorf("color op %04b modified the block", op)
			}
		})
	}
}

func TestColorOp0101(t *testing.T) {
	block := []byte{1, 2, 3, 4, 10, 20, 30, 40}
	colorOps[0x5](block, 4)

	want := []byte{1, 2, 3, 4, 11, 22, 33, 44}
	if !bytes.Equal(block, want) {
		t.Errorf("color op 0101 = %v, want %v", block, want)
	}
}

func TestColorOps(t *testing.T) {
	p0 := []byte{1, 2, 3, 4}
	p1 := []byte{10, 20, 30, 40}
	p2 := []byte{100, 110, 120, 250}

	add := func(a, b []byte) []byte {
		out := make([]byte, len(a))
		for i := range a {
			out[i] = a[i] + b[i]
		}
		return out
	}

	tests := []struct {
		op         byte
		q0, q1, q2 []byte
	}{
		{0x5, p0, add(p1, p0), p2},
		{0x6, p0, p1, add(p2, p0)},
		{0x7, p0, add(p1, p0), add(p2, p0)},
		{0x9, add(p0, p1), p1, p2},
		{0xA, p0, p1, add(p2, p1)},
		{0xB, add(p0, p1), p1, add(p2, p1)},
		{0xD, add(p0, p2), p1, p2},
		{0xE, p0, add(p1, p2), p2},
		{0xF, add(p0, p2), add(p1, p2), p2},
	}

	for _, tt := range tests {
		t.Run(ColorOpName(tt.op), func(t *testing.T) {
			block := slices.Concat(p0, p1, p2)
			colorOps[tt.op](block, 4)

			want := slices.Concat(tt.q0, tt.q1, tt.q2)
			if !bytes.Equal(block, want) {
				t.Errorf("color op %04b = %v, want %v", tt.op, block, want)
			}
		})
	}
}

func TestColorOpWraps(t *testing.T) {
	block := []byte{200, 100, 0, 0}
	colorOps[0x5](block, 2)
	if block[2] != 200 || block[3] != 100 {
		t.Fatalf("unexpected result %v", block)
	}
	colorOps[0x9](block, 2)
	if block[0] != 144 || block[1] != 200 {
		t.Errorf("color op 1001 = %v, want wrap-around to [144 200]", block[:2])
	}
}
