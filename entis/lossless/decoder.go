// Package lossless implements the ERI (Entis Rasterized Image) lossless
// block decoder.
//
// The payload is coded in square blocks. For each block the decoder reads
// a transformer code, entropy-decodes the block's samples, re-orders them
// into channel planes, undoes inter-channel color prediction and then the
// horizontal and vertical differencing that is carried from block to block.
package lossless

import (
	"fmt"

	"github.com/cocosip/go-entis-codec/codec"
	"github.com/cocosip/go-entis-codec/entis/common"
)

// Decode decodes the lossless pixel payload dec is positioned at. The
// result is width*height*channels bytes, row-major, channel-interleaved.
func Decode(header *common.Header, dec common.Decoder) ([]byte, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: nil header", common.ErrCorruptData)
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	ctx, err := newContext(header, dec)
	if err != nil {
		return nil, err
	}

	perm := newPermutation(ctx)

	codes := newCodeSupplier(header, ctx, dec)
	if err := codes.prefetch(); err != nil {
		return nil, err
	}
	if err := codes.synchronize(); err != nil {
		return nil, err
	}

	canvas := make([]byte, ctx.widthBlocks*ctx.heightBlocks*ctx.blockSamples)
	arrange := make([]byte, ctx.blockSamples)
	blockOut := make([]byte, ctx.blockSamples)
	prevCol := make([]byte, ctx.heightBlocks*ctx.blockStride)
	prevRow := make([]byte, ctx.widthBlocks*ctx.blockStride)

	stride := ctx.blockStride
	for by := 0; by < ctx.heightBlocks; by++ {
		for bx := 0; bx < ctx.widthBlocks; bx++ {
			code, err := codes.nextCode()
			if err != nil {
				return nil, fmt.Errorf("block (%d,%d): %w", bx, by, err)
			}

			if err := dec.Decode(arrange); err != nil {
				return nil, fmt.Errorf("block (%d,%d): %w", bx, by, err)
			}

			transform(code, ctx, perm, arrange,
				prevRow[bx*stride:(bx+1)*stride],
				prevCol[by*stride:(by+1)*stride],
				blockOut)

			assembleBlock(canvas, blockOut, ctx, bx, by)
		}
	}

	return crop(canvas, ctx, header), nil
}

// DecodeBytes decodes an in-memory payload with the registered front-end
// for header.Architecture
func DecodeBytes(header *common.Header, payload []byte) ([]byte, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: nil header", common.ErrCorruptData)
	}

	fe, err := codec.Get(header.Architecture)
	if err != nil {
		return nil, fmt.Errorf("%w: architecture %s: %w", common.ErrNotSupported, header.Architecture, err)
	}
	return Decode(header, fe.Open(payload))
}

// assembleBlock interleaves the channel planes of block (bx, by) into the
// padded canvas
func assembleBlock(canvas, blockOut []byte, ctx *decodeContext, bx, by int) {
	canvasWidth := ctx.widthBlocks * ctx.blockSize
	channels := ctx.channelCount

	i := 0
	for c := 0; c < channels; c++ {
		for yy := 0; yy < ctx.blockSize; yy++ {
			rowStart := (by*ctx.blockSize+yy)*canvasWidth + bx*ctx.blockSize
			for xx := 0; xx < ctx.blockSize; xx++ {
				canvas[(rowStart+xx)*channels+c] = blockOut[i]
				i++
			}
		}
	}
}

// crop drops the right and bottom padding added by block alignment
func crop(canvas []byte, ctx *decodeContext, header *common.Header) []byte {
	rowBytes := header.Width * ctx.channelCount
	canvasRowBytes := ctx.widthBlocks * ctx.blockStride

	out := make([]byte, header.Height*rowBytes)
	for y := 0; y < header.Height; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], canvas[y*canvasRowBytes:])
	}
	return out
}
