package common

import "fmt"

// maxGammaPrefix bounds the unary prefix of a gamma code; longer prefixes
// cannot describe a run inside any real image.
const maxGammaPrefix = 24

// GammaDecoder is the run-length gamma entropy front-end.
//
// The sample stream alternates zero runs and literal runs. Each run length
// is a gamma code; each literal is a sign bit followed by a gamma-coded
// magnitude. Reset reads the kind of the next run from the stream.
type GammaDecoder struct {
	br        *BitReader
	zeroFlag  bool // current run is a zero run
	available int  // samples left in the current run
}

var _ Decoder = (*GammaDecoder)(nil)

// NewGammaDecoder creates a gamma front-end reading from data
func NewGammaDecoder(data []byte) *GammaDecoder {
	return &GammaDecoder{br: NewBitReader(data)}
}

// NewGammaFrontEnd adapts NewGammaDecoder to FrontEndFactory
func NewGammaFrontEnd(data []byte) Decoder {
	return NewGammaDecoder(data)
}

// ReadBits reads n raw bits from the underlying stream
func (d *GammaDecoder) ReadBits(n int) (uint32, error) {
	return d.br.ReadBits(n)
}

// Reset reads the zero-run flag and drops any pending run
func (d *GammaDecoder) Reset() error {
	bit, err := d.br.ReadBit()
	if err != nil {
		return err
	}
	d.zeroFlag = bit == 1
	d.available = 0
	return nil
}

// Decode fills buf with decoded samples
func (d *GammaDecoder) Decode(buf []byte) error {
	pos := 0
	for pos < len(buf) {
		if d.available == 0 {
			n, err := d.readGamma()
			if err != nil {
				return err
			}
			d.available = n
		}

		n := min(d.available, len(buf)-pos)
		if d.zeroFlag {
			clear(buf[pos : pos+n])
		} else {
			for i := pos; i < pos+n; i++ {
				sign, err := d.br.ReadBit()
				if err != nil {
					return err
				}
				magnitude, err := d.readGamma()
				if err != nil {
					return err
				}
				if sign != 0 {
					buf[i] = byte(-magnitude)
				} else {
					buf[i] = byte(magnitude)
				}
			}
		}
		pos += n
		d.available -= n

		if d.available == 0 {
			d.zeroFlag = !d.zeroFlag
		}
	}
	return nil
}

// NewTree returns nil; the gamma coder has no symbol tree
func (d *GammaDecoder) NewTree() HuffmanTree {
	return nil
}

// DecodeSymbol is not available on the gamma coder
func (d *GammaDecoder) DecodeSymbol(HuffmanTree) (byte, error) {
	return 0, fmt.Errorf("%w: symbol decode on %s front-end", ErrNotSupported, RunLengthGamma)
}

// readGamma reads one gamma code. "0" is 1; otherwise each
// (data bit, continue bit) pair doubles the base.
func (d *GammaDecoder) readGamma() (int, error) {
	bit, err := d.br.ReadBit()
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return 1, nil
	}

	base, code := 2, 0
	for range maxGammaPrefix {
		b, err := d.br.ReadBit()
		if err != nil {
			return 0, err
		}
		code = code<<1 | int(b)

		more, err := d.br.ReadBit()
		if err != nil {
			return 0, err
		}
		if more == 0 {
			return code + base, nil
		}
		base <<= 1
	}
	return 0, fmt.Errorf("%w: gamma code too long", ErrCorruptData)
}
