package lossless

import (
	"fmt"

	"github.com/cocosip/go-entis-codec/entis/common"
)

// Fixed codes for images with fewer than three channels
const (
	grayCode    byte = 0b11_00_0000 // both spatial predictions, no color op
	indexedCode byte = 0b00_00_0000 // verbatim

	// gammaCodeBase is ORed with the 4-bit color op read from gamma streams
	gammaCodeBase byte = 0b11_00_0000
)

// codeSupplier yields the transformer code for each block, either from the
// stream or from the bulk table read ahead of the payload
type codeSupplier struct {
	header *common.Header
	ctx    *decodeContext
	dec    common.Decoder
	tree   common.HuffmanTree

	codes []byte // bulk codes, row-major
	next  int
}

func newCodeSupplier(header *common.Header, ctx *decodeContext, dec common.Decoder) *codeSupplier {
	s := &codeSupplier{
		header: header,
		ctx:    ctx,
		dec:    dec,
	}
	if header.Architecture == common.RunLengthHuffman {
		s.tree = dec.NewTree()
	}
	return s
}

// prefetch reads one code per block when the stream sends them in bulk.
// Only color images do.
func (s *codeSupplier) prefetch() error {
	if !s.ctx.bulkCodes() || s.ctx.channelCount < 3 {
		return nil
	}

	n := s.ctx.widthBlocks * s.ctx.heightBlocks
	s.codes = make([]byte, n)
	for i := range s.codes {
		var err error
		switch s.header.Architecture {
		case common.RunLengthGamma:
			s.codes[i], err = s.readGammaCode()
		case common.RunLengthHuffman:
			s.codes[i], err = s.dec.DecodeSymbol(s.tree)
		default:
			return s.architectureError()
		}
		if err != nil {
			return fmt.Errorf("prefetch transformer code %d/%d: %w", i, n, err)
		}
	}
	return nil
}

// synchronize checks the separator bit that ends the meta data and puts
// the entropy front-end in a known state for the first block
func (s *codeSupplier) synchronize() error {
	bit, err := s.dec.ReadBits(1)
	if err != nil {
		return fmt.Errorf("read separator bit: %w", err)
	}
	if bit != 0 {
		return fmt.Errorf("%w: expected 0 bit", common.ErrCorruptData)
	}

	switch s.header.Architecture {
	case common.RunLengthGamma:
		if s.ctx.bulkCodes() {
			return s.dec.Reset()
		}
		return nil
	case common.RunLengthHuffman:
		return s.dec.Reset()
	default:
		return s.architectureError()
	}
}

// nextCode returns the transformer code of the next block in row-major
// order. It may reset the front-end as a side effect.
func (s *codeSupplier) nextCode() (byte, error) {
	if s.ctx.channelCount < 3 {
		if !s.ctx.bulkCodes() && s.header.Architecture == common.RunLengthGamma {
			if err := s.dec.Reset(); err != nil {
				return 0, err
			}
		}
		if s.header.IsGray() {
			return grayCode, nil
		}
		return indexedCode, nil
	}

	if s.ctx.bulkCodes() {
		if s.next >= len(s.codes) {
			return 0, fmt.Errorf("%w: transformer codes exhausted", common.ErrCorruptData)
		}
		code := s.codes[s.next]
		s.next++
		return code, nil
	}

	switch s.header.Architecture {
	case common.RunLengthHuffman:
		return s.dec.DecodeSymbol(s.tree)
	case common.RunLengthGamma:
		code, err := s.readGammaCode()
		if err != nil {
			return 0, err
		}
		if err := s.dec.Reset(); err != nil {
			return 0, err
		}
		return code, nil
	default:
		return 0, s.architectureError()
	}
}

// readGammaCode reads a color op nibble. Gamma streams always use both
// spatial predictions and the first permutation.
func (s *codeSupplier) readGammaCode() (byte, error) {
	op, err := s.dec.ReadBits(4)
	if err != nil {
		return 0, err
	}
	return gammaCodeBase | byte(op), nil
}

func (s *codeSupplier) architectureError() error {
	return fmt.Errorf("%w: architecture %s", common.ErrNotSupported, s.header.Architecture)
}
