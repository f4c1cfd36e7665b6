package lossless

// newPermutation builds the four sample orderings a transformer code can
// select. Each segment maps the i-th decoded sample to its position in the
// channel-planar block.
//
// Segments 0 and 2 share one index formula, as do 1 and 3; they differ in
// loop nesting, i.e. in which decoded sample lands where.
func newPermutation(ctx *decodeContext) []int {
	perm := make([]int, 0, ctx.blockSamples*4)
	bs, area, channels := ctx.blockSize, ctx.blockArea, ctx.channelCount

	// Planar, row-major
	for c := 0; c < channels; c++ {
		for y := 0; y < bs; y++ {
			for x := 0; x < bs; x++ {
				perm = append(perm, c*area+y*bs+x)
			}
		}
	}

	// Planar, transposed
	for c := 0; c < channels; c++ {
		for y := 0; y < bs; y++ {
			for x := 0; x < bs; x++ {
				perm = append(perm, c*area+y+x*bs)
			}
		}
	}

	// Interleaved, row-major
	for y := 0; y < bs; y++ {
		for x := 0; x < bs; x++ {
			for c := 0; c < channels; c++ {
				perm = append(perm, c*area+y*bs+x)
			}
		}
	}

	// Interleaved, transposed
	for y := 0; y < bs; y++ {
		for x := 0; x < bs; x++ {
			for c := 0; c < channels; c++ {
				perm = append(perm, c*area+y+x*bs)
			}
		}
	}

	return perm
}
