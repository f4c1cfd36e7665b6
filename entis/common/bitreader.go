package common

import "fmt"

// BitReader provides bit-level reading from a byte slice.
// Bits are read in MSB-first order.
type BitReader struct {
	data   []byte
	pos    int  // byte position
	bitPos uint // bit position within current byte (0-7)
}

// NewBitReader creates a new bit reader over data
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBit reads a single bit, returning 0 or 1
func (r *BitReader) ReadBit() (uint32, error) {
	if r.pos >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}

	bit := uint32(r.data[r.pos]>>(7-r.bitPos)) & 1

	r.bitPos++
	if r.bitPos == 8 {
		r.bitPos = 0
		r.pos++
	}
	return bit, nil
}

// ReadBits reads n bits (n <= 32) as an unsigned integer, MSB first
func (r *BitReader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("invalid bit count: %d", n)
	}

	var result uint32
	for range n {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		result = result<<1 | bit
	}
	return result, nil
}

// Remaining returns the number of unread bits
func (r *BitReader) Remaining() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return (len(r.data)-r.pos)*8 - int(r.bitPos)
}
