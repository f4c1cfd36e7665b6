package codec_test

import (
	"testing"

	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
	"github.com/cocosip/go-entis-codec/codec"
)

func TestFrameStore(t *testing.T) {
	frameInfo := &imagetypes.FrameInfo{
		Width:                     4,
		Height:                    2,
		BitsAllocated:             8,
		BitsStored:                8,
		HighBit:                   7,
		SamplesPerPixel:           3,
		PixelRepresentation:       0,
		PlanarConfiguration:       0,
		PhotometricInterpretation: "RGB",
	}

	var pd imagetypes.PixelData = codec.NewFrameStore(frameInfo)

	if pd.IsEncapsulated() {
		t.Error("IsEncapsulated() = true, want false")
	}
	if pd.GetFrameInfo() != frameInfo {
		t.Error("GetFrameInfo() returned a different frame info")
	}

	if err := pd.AddFrame(make([]byte, 10)); err == nil {
		t.Error("AddFrame() with wrong length expected error, got nil")
	}

	frame := make([]byte, 4*2*3)
	for i := range frame {
		frame[i] = byte(i)
	}
	if err := pd.AddFrame(frame); err != nil {
		t.Fatalf("AddFrame() error: %v", err)
	}
	if pd.FrameCount() != 1 {
		t.Fatalf("FrameCount() = %d, want 1", pd.FrameCount())
	}

	got, err := pd.GetFrame(0)
	if err != nil {
		t.Fatalf("GetFrame(0) error: %v", err)
	}
	if len(got) != len(frame) || got[23] != 23 {
		t.Errorf("GetFrame(0) returned unexpected data")
	}

	if _, err := pd.GetFrame(1); err == nil {
		t.Error("GetFrame(1) expected error, got nil")
	}
}
