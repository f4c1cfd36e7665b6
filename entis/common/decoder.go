package common

// Decoder is the entropy front-end the lossless decoder pulls bits and
// samples from.
type Decoder interface {
	// ReadBits reads n raw bits (n <= 32), MSB first
	ReadBits(n int) (uint32, error)

	// Reset re-synchronizes the entropy state with the bit stream
	Reset() error

	// Decode fills buf with one decoded byte per sample
	Decode(buf []byte) error

	// NewTree returns an empty code tree for DecodeSymbol. Front-ends
	// without symbol coding return nil.
	NewTree() HuffmanTree

	// DecodeSymbol decodes one 8-bit code through tree. Only Huffman
	// front-ends support it; others return ErrNotSupported.
	DecodeSymbol(tree HuffmanTree) (byte, error)
}

// HuffmanTree is the adaptive code tree a Huffman front-end threads
// through successive DecodeSymbol calls. Its layout belongs to the
// front-end that built it.
type HuffmanTree interface {
	// Reset returns the tree to its initial, empty state
	Reset()
}

// FrontEndFactory creates a Decoder reading from data
type FrontEndFactory func(data []byte) Decoder
