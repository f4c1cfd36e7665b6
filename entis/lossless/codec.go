package lossless

import (
	"fmt"
	"math"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"

	"github.com/cocosip/go-entis-codec/entis/common"
)

// FrameInfo describes the frame Decode produces for header as DICOM frame
// metadata: 8 bits per sample, channel-interleaved.
func FrameInfo(header *common.Header) (*imagetypes.FrameInfo, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: nil header", common.ErrCorruptData)
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	if header.Width > math.MaxUint16 || header.Height > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %dx%d exceeds DICOM frame limits",
			common.ErrNotSupported, header.Width, header.Height)
	}
	channels, err := channelCount(header)
	if err != nil {
		return nil, err
	}

	photometric := "RGB"
	switch {
	case header.FormatType&common.FormatTypeMask == common.FormatGray:
		photometric = "MONOCHROME2"
	case channels == 1:
		photometric = "PALETTE COLOR"
	case channels == 4:
		photometric = "ARGB"
	}

	return &imagetypes.FrameInfo{
		Width:                     uint16(header.Width),
		Height:                    uint16(header.Height),
		BitsAllocated:             8,
		BitsStored:                8,
		HighBit:                   7,
		SamplesPerPixel:           uint16(channels),
		PixelRepresentation:       0,
		PlanarConfiguration:       0,
		PhotometricInterpretation: photometric,
	}, nil
}

// DecodeFrame decodes one frame and appends it to dst. When dst carries
// frame info, its geometry must match header.
func DecodeFrame(header *common.Header, dec common.Decoder, dst imagetypes.PixelData) error {
	if dst == nil {
		return fmt.Errorf("destination PixelData cannot be nil")
	}

	want, err := FrameInfo(header)
	if err != nil {
		return err
	}
	if info := dst.GetFrameInfo(); info != nil {
		if info.Width != want.Width || info.Height != want.Height {
			return fmt.Errorf("frame dimensions (%dx%d) don't match destination (%dx%d)",
				want.Width, want.Height, info.Width, info.Height)
		}
		if info.SamplesPerPixel != want.SamplesPerPixel {
			return fmt.Errorf("frame samples per pixel (%d) don't match destination (%d)",
				want.SamplesPerPixel, info.SamplesPerPixel)
		}
	}

	pixelData, err := Decode(header, dec)
	if err != nil {
		return err
	}

	if err := dst.AddFrame(pixelData); err != nil {
		return fmt.Errorf("failed to add decoded frame %d: %w", dst.FrameCount(), err)
	}
	return nil
}
