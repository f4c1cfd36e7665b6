package lossless

// Transformer code layout: diff mode (2 bits), permutation selector
// (2 bits), color op (4 bits).
const (
	diffModeShift  = 6
	permShift      = 4
	permMask       = 0x03
	colorOpMask    = 0x0F
	diffHorizontal = 0x01
)

// transform turns one block of decoded samples into reconstructed,
// channel-planar pixels in blockOut.
//
// prevRow and prevCol are this block's blockStride-sized views of the
// frame-level row and column state. Both are updated in place.
func transform(code byte, ctx *decodeContext, perm []int, arrange, prevRow, prevCol, blockOut []byte) {
	diffMode := code >> diffModeShift
	order := perm[int(code>>permShift&permMask)*ctx.blockSamples:][:ctx.blockSamples]
	op := code & colorOpMask

	for i, v := range arrange[:ctx.blockSamples] {
		blockOut[order[i]] = v
	}
	if code == 0 {
		return
	}

	colorOps[op](blockOut, ctx.blockArea)

	if diffMode&diffHorizontal != 0 {
		predictHorizontal(blockOut, prevCol, ctx.blockSize)
	} else {
		captureColumn(blockOut, prevCol, ctx.blockSize)
	}

	predictVertical(blockOut, prevRow, ctx.blockSize, ctx.channelCount)
}

// predictHorizontal undoes left-neighbour differencing on every row of the
// block. Each row continues the running value stored in its prevCol slot,
// and the final value is written back for the block to the right.
func predictHorizontal(block, prevCol []byte, blockSize int) {
	for i := range prevCol {
		row := block[i*blockSize : (i+1)*blockSize]
		last := prevCol[i]
		for j := range row {
			last += row[j]
			row[j] = last
		}
		prevCol[i] = last
	}
}

// captureColumn records the last sample of every row without touching the
// block. Used when the block carries no horizontal differences.
func captureColumn(block, prevCol []byte, blockSize int) {
	for i := range prevCol {
		prevCol[i] = block[(i+1)*blockSize-1]
	}
}

// predictVertical undoes top-neighbour differencing. The first row of each
// channel plane adds that channel's prevRow slice, every later row adds the
// reconstructed row above it. The plane's last row becomes the new state.
func predictVertical(block, prevRow []byte, blockSize, channels int) {
	area := blockSize * blockSize
	for c := 0; c < channels; c++ {
		state := prevRow[c*blockSize : (c+1)*blockSize]
		plane := block[c*area : (c+1)*area]

		above := state
		for y := 0; y < blockSize; y++ {
			row := plane[y*blockSize : (y+1)*blockSize]
			for x := range row {
				row[x] += above[x]
			}
			above = row
		}
		copy(state, above)
	}
}
