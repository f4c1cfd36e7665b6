package lossless

import (
	"fmt"
	"strings"

	"github.com/cocosip/go-entis-codec/entis/common"
)

// scriptedDecoder replays fixed raw bits, symbols and block samples and
// records the order of calls made on it
type scriptedDecoder struct {
	bits      []uint32 // one value per ReadBits call
	symbols   []byte
	blocks    [][]byte // one entry per Decode call; missing entries decode as zeros
	decodeErr error
	trace     []string
}

func (d *scriptedDecoder) ReadBits(n int) (uint32, error) {
	d.trace = append(d.trace, fmt.Sprintf("bits%d", n))
	if len(d.bits) == 0 {
		return 0, common.ErrUnexpectedEOF
	}
	v := d.bits[0]
	d.bits = d.bits[1:]
	return v, nil
}

func (d *scriptedDecoder) Reset() error {
	d.trace = append(d.trace, "reset")
	return nil
}

func (d *scriptedDecoder) Decode(buf []byte) error {
	d.trace = append(d.trace, "decode")
	if d.decodeErr != nil {
		return d.decodeErr
	}
	if len(d.blocks) == 0 {
		clear(buf)
		return nil
	}
	copy(buf, d.blocks[0])
	d.blocks = d.blocks[1:]
	return nil
}

func (d *scriptedDecoder) NewTree() common.HuffmanTree {
	return &testTree{}
}

func (d *scriptedDecoder) DecodeSymbol(tree common.HuffmanTree) (byte, error) {
	d.trace = append(d.trace, "symbol")
	if tree == nil {
		return 0, fmt.Errorf("nil tree")
	}
	if len(d.symbols) == 0 {
		return 0, common.ErrUnexpectedEOF
	}
	s := d.symbols[0]
	d.symbols = d.symbols[1:]
	return s, nil
}

func (d *scriptedDecoder) calls() string {
	return strings.Join(d.trace, " ")
}

type testTree struct{}

func (*testTree) Reset() {}

// meta returns the four meta data values in stream order
func meta(version, opTable, encodeType, bitCount uint32) []uint32 {
	return []uint32{version, opTable, encodeType, bitCount}
}

// testContext builds a context without reading a stream
func testContext(channels, blockSize int) *decodeContext {
	return &decodeContext{
		eriVersion:   8,
		bitCount:     8,
		blockSize:    blockSize,
		blockArea:    blockSize * blockSize,
		blockSamples: blockSize * blockSize * channels,
		channelCount: channels,
		blockStride:  blockSize * channels,
		widthBlocks:  1,
		heightBlocks: 1,
	}
}

// bitWriter packs bits MSB first, mirroring common.BitReader
type bitWriter struct {
	buf []byte
	n   uint
}

func (w *bitWriter) writeBit(b uint32) {
	if w.n%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if b != 0 {
		w.buf[len(w.buf)-1] |= 0x80 >> (w.n % 8)
	}
	w.n++
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit((v >> uint(i)) & 1)
	}
}

func (w *bitWriter) writeGamma(v int) {
	if v == 1 {
		w.writeBit(0)
		return
	}
	w.writeBit(1)

	k := 1
	for v >= 1<<(k+1) {
		k++
	}
	code := v - 1<<k
	for i := k - 1; i >= 0; i-- {
		w.writeBit(uint32(code>>i) & 1)
		if i > 0 {
			w.writeBit(1)
		} else {
			w.writeBit(0)
		}
	}
}

// writeLiteralRun writes a reset bit selecting a literal run followed by
// the run of positive samples
func (w *bitWriter) writeLiteralRun(samples ...int) {
	w.writeBit(0)
	w.writeGamma(len(samples))
	for _, s := range samples {
		w.writeBit(0)
		w.writeGamma(s)
	}
}
