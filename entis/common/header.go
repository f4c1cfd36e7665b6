package common

import "fmt"

// Pixel format tags carried in the ERI header's format type field.
const (
	FormatRGB  uint32 = 0x00000001
	FormatGray uint32 = 0x00000002

	// FormatWithAlpha is set together with FormatRGB for 32-bit images
	FormatWithAlpha uint32 = 0x04000000

	// FormatTypeMask selects the base format family
	FormatTypeMask uint32 = 0x00FFFFFF
)

// Architecture identifies the entropy coder that produced the payload.
type Architecture int32

// Recognized entropy architectures
const (
	RunLengthGamma   Architecture = -1
	RunLengthHuffman Architecture = -4
)

// String returns a human-readable architecture name
func (a Architecture) String() string {
	switch a {
	case RunLengthGamma:
		return "run-length gamma"
	case RunLengthHuffman:
		return "run-length huffman"
	default:
		return fmt.Sprintf("architecture(%d)", int32(a))
	}
}

// maxBlockingDegree bounds block size to 4096 pixels per side
const maxBlockingDegree = 12

// Header holds the image header fields the container reader parsed ahead
// of the lossless payload.
type Header struct {
	FormatType     uint32       // Pixel format (FormatRGB / FormatGray, optionally FormatWithAlpha)
	BitDepth       int          // Bits per pixel
	Width          int          // Image width in pixels
	Height         int          // Image height in pixels
	BlockingDegree int          // Block size exponent (block size = 1 << BlockingDegree)
	Architecture   Architecture // Entropy coder used for the payload
}

// NewHeader creates a Header with the defaults used by most ERI encoders:
// 8x8 blocks and the run-length gamma coder.
func NewHeader(formatType uint32, bitDepth, width, height int) *Header {
	return &Header{
		FormatType:     formatType,
		BitDepth:       bitDepth,
		Width:          width,
		Height:         height,
		BlockingDegree: 3,
		Architecture:   RunLengthGamma,
	}
}

// Validate checks the geometry fields. Blocking degree zero is left to the
// decoder, which reports it after reading the stream's own meta data.
func (h *Header) Validate() error {
	if h.Width <= 0 || h.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrCorruptData, h.Width, h.Height)
	}
	if h.BlockingDegree < 0 || h.BlockingDegree > maxBlockingDegree {
		return fmt.Errorf("%w: blocking degree %d", ErrCorruptData, h.BlockingDegree)
	}
	return nil
}

// IsGray reports whether the format type is exactly grayscale.
func (h *Header) IsGray() bool {
	return h.FormatType == FormatGray
}

// HasAlpha reports whether the alpha flag is set
func (h *Header) HasAlpha() bool {
	return h.FormatType&FormatWithAlpha != 0
}
