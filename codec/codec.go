package codec

import (
	"github.com/cocosip/go-entis-codec/entis/common"
)

// FrontEnd describes an entropy front-end implementation the registry can
// hand out for an architecture
type FrontEnd struct {
	Architecture common.Architecture // Architecture tag from the image header
	Name         string              // Human-readable name
	New          common.FrontEndFactory
}

// Open creates a decoder reading payload
func (f *FrontEnd) Open(payload []byte) common.Decoder {
	return f.New(payload)
}
