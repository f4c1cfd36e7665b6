package lossless

import (
	"fmt"
	"log/slog"

	"github.com/cocosip/go-entis-codec/entis/common"
)

// decodeContext holds the stream meta data and block geometry of one
// decode call. It is not modified after newContext returns.
type decodeContext struct {
	eriVersion byte
	opTable    byte
	encodeType byte
	bitCount   byte

	blockSize    int // block side in pixels
	blockArea    int // pixels per block
	blockSamples int // samples per block, all channels
	channelCount int
	blockStride  int // blockSize * channelCount

	widthBlocks  int
	heightBlocks int
}

// newContext reads the four meta data bytes that precede the payload and
// derives the block geometry from header
func newContext(header *common.Header, dec common.Decoder) (*decodeContext, error) {
	var meta [4]byte
	for i := range meta {
		v, err := dec.ReadBits(8)
		if err != nil {
			return nil, fmt.Errorf("read meta data: %w", err)
		}
		meta[i] = byte(v)
	}

	ctx := &decodeContext{
		eriVersion: meta[0],
		opTable:    meta[1],
		encodeType: meta[2],
		bitCount:   meta[3],
	}

	channels, err := channelCount(header)
	if err != nil {
		return nil, err
	}

	ctx.channelCount = channels
	ctx.blockSize = 1 << uint(header.BlockingDegree)
	ctx.blockArea = ctx.blockSize * ctx.blockSize
	ctx.blockSamples = ctx.blockArea * ctx.channelCount
	ctx.blockStride = ctx.blockSize * ctx.channelCount

	ctx.widthBlocks = (header.Width + ctx.blockSize - 1) / ctx.blockSize
	ctx.heightBlocks = (header.Height + ctx.blockSize - 1) / ctx.blockSize

	if err := ctx.validate(header); err != nil {
		return nil, err
	}

	slog.Debug("eri: lossless context",
		slog.Int("version", int(ctx.eriVersion)),
		slog.Int("encodeType", int(ctx.encodeType)),
		slog.Int("bitCount", int(ctx.bitCount)),
		slog.Int("channels", ctx.channelCount),
		slog.Int("blockSize", ctx.blockSize),
		slog.Int("widthBlocks", ctx.widthBlocks),
		slog.Int("heightBlocks", ctx.heightBlocks),
		slog.String("architecture", header.Architecture.String()))

	return ctx, nil
}

// channelCount derives the number of interleaved channels from the pixel
// format. RGB images of 8 bits or less are palette indices.
func channelCount(header *common.Header) (int, error) {
	switch header.FormatType & common.FormatTypeMask {
	case common.FormatRGB:
		if header.BitDepth <= 8 {
			return 1, nil
		}
		if header.HasAlpha() {
			return 4, nil
		}
		return 3, nil

	case common.FormatGray:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: unknown pixel format %#x", common.ErrCorruptData, header.FormatType)
}

func (c *decodeContext) validate(header *common.Header) error {
	if c.opTable != 0 || c.encodeType&0xFE != 0 {
		return fmt.Errorf("%w: unexpected meta data (op table %d, encode type %#x)",
			common.ErrCorruptData, c.opTable, c.encodeType)
	}

	switch c.eriVersion {
	case 1:
		if c.bitCount != 0 {
			return c.bitDepthError()
		}
	case 8:
		if c.bitCount != 8 {
			return c.bitDepthError()
		}
	case 16:
		if c.bitCount != 8 || c.encodeType != 0 {
			return c.bitDepthError()
		}
	default:
		return fmt.Errorf("%w: %d", common.ErrUnsupportedVersion, c.eriVersion)
	}

	if header.BlockingDegree == 0 {
		return fmt.Errorf("%w: blocking degree not set", common.ErrCorruptData)
	}
	return nil
}

func (c *decodeContext) bitDepthError() error {
	return fmt.Errorf("%w: %d (version %d, encode type %d)",
		common.ErrUnsupportedBitDepth, c.bitCount, c.eriVersion, c.encodeType)
}

// bulkCodes reports whether transformer codes are sent up front
func (c *decodeContext) bulkCodes() bool {
	return c.encodeType&0x01 != 0
}
