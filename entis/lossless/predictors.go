package lossless

import "fmt"

// ERI lossless images use inter-channel color prediction: a block may
// store channels as differences against one base channel. The 4-bit color
// op selects the base plane and the planes that were coded against it.
//
// Planes are the contiguous area-sized channel slices of a block.

// colorOp reconstructs channel planes of block in place
type colorOp func(block []byte, area int)

// colorOps is indexed by the low nibble of the transformer code
var colorOps = [16]colorOp{
	0x0: colorOpNone,
	0x1: colorOpNone,
	0x2: colorOpNone,
	0x3: colorOpNone,
	0x4: colorOpNone,
	0x5: func(b []byte, area int) { addPlane(b, area, 0, 1) },
	0x6: func(b []byte, area int) { addPlane(b, area, 0, 2) },
	0x7: func(b []byte, area int) { addPlaneTwice(b, area, 0, 1, 2) },
	0x8: colorOpNone,
	0x9: func(b []byte, area int) { addPlane(b, area, 1, 0) },
	0xA: func(b []byte, area int) { addPlane(b, area, 1, 2) },
	0xB: func(b []byte, area int) { addPlaneTwice(b, area, 1, 0, 2) },
	0xC: colorOpNone,
	0xD: func(b []byte, area int) { addPlane(b, area, 2, 0) },
	0xE: func(b []byte, area int) { addPlane(b, area, 2, 1) },
	0xF: func(b []byte, area int) { addPlaneTwice(b, area, 2, 0, 1) },
}

func colorOpNone([]byte, int) {}

// addPlane adds plane base into plane dst
func addPlane(block []byte, area, base, dst int) {
	src := block[base*area : (base+1)*area]
	out := block[dst*area : (dst+1)*area]
	for i, v := range src {
		out[i] += v
	}
}

// addPlaneTwice adds plane base into planes dst1 and dst2. The base sample
// is read once, before either target is updated.
func addPlaneTwice(block []byte, area, base, dst1, dst2 int) {
	src := block[base*area : (base+1)*area]
	out1 := block[dst1*area : (dst1+1)*area]
	out2 := block[dst2*area : (dst2+1)*area]
	for i := range src {
		v := src[i]
		out1[i] += v
		out2[i] += v
	}
}

// ColorOpName returns a human-readable name for a color op code
func ColorOpName(op byte) string {
	switch op & 0x0F {
	case 0x5:
		return "p1+=p0"
	case 0x6:
		return "p2+=p0"
	case 0x7:
		return "p1,p2+=p0"
	case 0x9:
		return "p0+=p1"
	case 0xA:
		return "p2+=p1"
	case 0xB:
		return "p0,p2+=p1"
	case 0xD:
		return "p0+=p2"
	case 0xE:
		return "p1+=p2"
	case 0xF:
		return "p0,p1+=p2"
	default:
		return fmt.Sprintf("none(%04b)", op&0x0F)
	}
}
