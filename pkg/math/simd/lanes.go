// Package simd implements the math types on 4-lane packed registers. Every
// vector, matrix row and quaternion is one lanes value, and arithmetic is
// written as whole-register operations: splats, shuffles, masked dot
// products and horizontal adds.
package simd

import "math"

// lanes is one 128-bit register of four float32 values.
type lanes [4]float32

// Lane masks for dp. The high nibble selects the lanes that are multiplied
// and summed, the low nibble selects the lanes that receive the sum.
const (
	maskX    uint8 = 0x1
	maskXY   uint8 = 0x3
	maskXYZ  uint8 = 0x7
	maskXYZW uint8 = 0xF
)

func splat(f float32) lanes {
	return lanes{f, f, f, f}
}

func (a lanes) add(b lanes) lanes {
	return lanes{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a lanes) sub(b lanes) lanes {
	return lanes{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a lanes) mul(b lanes) lanes {
	return lanes{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a lanes) div(b lanes) lanes {
	return lanes{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// first returns lane 0.
func (a lanes) first() float32 {
	return a[0]
}

// keep zeroes every lane not selected by mask.
func (a lanes) keep(mask uint8) lanes {
	var out lanes
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 {
			out[i] = a[i]
		}
	}
	return out
}

// shuffle takes lanes 0 and 1 of the result from a and lanes 2 and 3 from b.
func shuffle(a, b lanes, i0, i1, i2, i3 int) lanes {
	return lanes{a[i0], a[i1], b[i2], b[i3]}
}

// swizzle is shuffle of a register with itself.
func (a lanes) swizzle(i0, i1, i2, i3 int) lanes {
	return shuffle(a, a, i0, i1, i2, i3)
}

// dp multiplies the lanes selected by the high nibble of imm, sums them and
// broadcasts the sum into the lanes selected by the low nibble.
func dp(a, b lanes, imm uint8) lanes {
	in, out := imm>>4, imm&0xF
	var sum float32
	for i := 0; i < 4; i++ {
		if in&(1<<i) != 0 {
			sum += a[i] * b[i]
		}
	}
	var r lanes
	for i := 0; i < 4; i++ {
		if out&(1<<i) != 0 {
			r[i] = sum
		}
	}
	return r
}

// hadd adds adjacent pairs: (a0+a1, a2+a3, b0+b1, b2+b3).
func hadd(a, b lanes) lanes {
	return lanes{a[0] + a[1], a[2] + a[3], b[0] + b[1], b[2] + b[3]}
}

// hsub subtracts adjacent pairs: (a0-a1, a2-a3, b0-b1, b2-b3).
func hsub(a, b lanes) lanes {
	return lanes{a[0] - a[1], a[2] - a[3], b[0] - b[1], b[2] - b[3]}
}

// signs holds -0.0 in every lane whose sign flipSign should toggle.
func signs(x, y, z, w bool) lanes {
	var s lanes
	for i, neg := range [4]bool{x, y, z, w} {
		if neg {
			s[i] = float32(math.Copysign(0, -1))
		}
	}
	return s
}

// flipSign xors the sign bits of a with those of mask.
func flipSign(a, mask lanes) lanes {
	var out lanes
	for i := 0; i < 4; i++ {
		const signBit = 1 << 31
		bits := math.Float32bits(a[i]) ^ (math.Float32bits(mask[i]) & signBit)
		out[i] = math.Float32frombits(bits)
	}
	return out
}

func sqrtLanes(a lanes) lanes {
	var out lanes
	for i := range a {
		out[i] = float32(math.Sqrt(float64(a[i])))
	}
	return out
}

// transpose4 transposes four registers in place using unpack-style
// shuffles.
func transpose4(r0, r1, r2, r3 *lanes) {
	t0 := lanes{r0[0], r1[0], r0[1], r1[1]} // unpacklo(r0, r1)
	t1 := lanes{r2[0], r3[0], r2[1], r3[1]} // unpacklo(r2, r3)
	t2 := lanes{r0[2], r1[2], r0[3], r1[3]} // unpackhi(r0, r1)
	t3 := lanes{r2[2], r3[2], r2[3], r3[3]} // unpackhi(r2, r3)
	*r0 = shuffle(t0, t1, 0, 1, 0, 1)
	*r1 = shuffle(t0, t1, 2, 3, 2, 3)
	*r2 = shuffle(t2, t3, 0, 1, 0, 1)
	*r3 = shuffle(t2, t3, 2, 3, 2, 3)
}

// equalLanes compares the lanes selected by mask with a relative tolerance.
func equalLanes(a, b lanes, mask uint8, eq func(x, y float32) bool) bool {
	for i := 0; i < 4; i++ {
		if mask&(1<<i) != 0 && !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
