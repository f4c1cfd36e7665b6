package codec

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

var _ imagetypes.PixelData = (*FrameStore)(nil)

// FrameStore keeps decoded, native (unencapsulated) frames in memory.
// It satisfies imagetypes.PixelData so decoded ERI frames can be handed to
// DICOM tooling without copying.
type FrameStore struct {
	frames    [][]byte
	frameInfo *imagetypes.FrameInfo
}

// NewFrameStore creates an empty store for frames described by frameInfo
func NewFrameStore(frameInfo *imagetypes.FrameInfo) *FrameStore {
	return &FrameStore{frameInfo: frameInfo}
}

// GetFrame returns frame frameIndex (0-indexed)
func (s *FrameStore) GetFrame(frameIndex int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(s.frames) {
		return nil, fmt.Errorf("frame %d out of range (have %d)", frameIndex, len(s.frames))
	}
	return s.frames[frameIndex], nil
}

// AddFrame appends a frame. Its length must match the frame geometry.
func (s *FrameStore) AddFrame(frameData []byte) error {
	if s.frameInfo != nil {
		want := int(s.frameInfo.Width) * int(s.frameInfo.Height) *
			int(s.frameInfo.SamplesPerPixel) * ((int(s.frameInfo.BitsAllocated) + 7) / 8)
		if want != len(frameData) {
			return fmt.Errorf("frame length %d does not match geometry (%d bytes)", len(frameData), want)
		}
	}
	s.frames = append(s.frames, frameData)
	return nil
}

// FrameCount returns the number of stored frames
func (s *FrameStore) FrameCount() int {
	return len(s.frames)
}

// GetFrameInfo returns the frame metadata
func (s *FrameStore) GetFrameInfo() *imagetypes.FrameInfo {
	return s.frameInfo
}

// IsEncapsulated always returns false
func (s *FrameStore) IsEncapsulated() bool {
	return false
}
