package simd

import "github.com/farouqadepetu/SecondEngine-sub000/pkg/math/ops"

// Row-register helpers shared by Mat2, Mat3 and Mat4. A matrix is a slice
// of row registers; lanes beyond the logical width are zero.

// widthMask returns the lane mask covering n columns.
func widthMask(n int) uint8 {
	return uint8(1)<<n - 1
}

// padded copies rows into a zero-filled 4x4 block.
func padded(rows []lanes) [4]lanes {
	var m [4]lanes
	copy(m[:], rows)
	return m
}

// transposeRows transposes an n x n matrix by padding it to 4x4.
func transposeRows(dst, src []lanes) {
	m := padded(src)
	transpose4(&m[0], &m[1], &m[2], &m[3])
	copy(dst, m[:len(dst)])
}

// rowTimes returns the row vector product v * M.
func rowTimes(v lanes, rows []lanes, mask uint8) lanes {
	cols := padded(rows)
	transpose4(&cols[0], &cols[1], &cols[2], &cols[3])
	var out lanes
	for c := 0; c < 4; c++ {
		out = out.add(dp(v, cols[c], mask<<4|uint8(1)<<c))
	}
	return out.keep(mask)
}

// colTimes returns the column vector product M * v.
func colTimes(rows []lanes, v lanes, mask uint8) lanes {
	var out lanes
	for r := range rows {
		out = out.add(dp(rows[r], v, mask<<4|uint8(1)<<r))
	}
	return out
}

// mulRows writes a * b into dst. Each output row is the row of a dotted
// with every column of b, taken from the transposed block.
func mulRows(dst, a, b []lanes) {
	mask := widthMask(len(a))
	cols := padded(b)
	transpose4(&cols[0], &cols[1], &cols[2], &cols[3])
	for r := range a {
		var out lanes
		for c := 0; c < len(a); c++ {
			out = out.add(dp(a[r], cols[c], mask<<4|uint8(1)<<c))
		}
		dst[r] = out
	}
}

// dropCol removes column c from a row of the given width, packing the
// remaining columns into the low lanes.
func dropCol(row lanes, c, width int) lanes {
	var r lanes
	switch c {
	case 0:
		r = row.swizzle(1, 2, 3, 3)
	case 1:
		r = row.swizzle(0, 2, 3, 3)
	case 2:
		r = row.swizzle(0, 1, 3, 3)
	default:
		r = row
	}
	return r.keep(widthMask(width - 1))
}

// det2 is ad - bc from one multiply and a horizontal subtract.
func det2(r0, r1 lanes) float32 {
	p := r0.mul(r1.swizzle(1, 0, 2, 3))
	return hsub(p, p).first()
}

// checker returns the cofactor sign pattern for row r.
func checker(r int) lanes {
	if r%2 == 0 {
		return signs(false, true, false, true)
	}
	return signs(true, false, true, false)
}

// det3 expands along row 0 using 2x2 minors.
func det3(rows []lanes) float32 {
	var minors lanes
	for c := 0; c < 3; c++ {
		minors[c] = det2(dropCol(rows[1], c, 3), dropCol(rows[2], c, 3))
	}
	return dp(rows[0], flipSign(minors, checker(0)), maskXYZ<<4|maskX).first()
}

// det4 expands along row 0 using 3x3 minors.
func det4(rows []lanes) float32 {
	var minors lanes
	for c := 0; c < 4; c++ {
		var m [3]lanes
		for i := 0; i < 3; i++ {
			m[i] = dropCol(rows[i+1], c, 4)
		}
		minors[c] = det3(m[:])
	}
	return dp(rows[0], flipSign(minors, checker(0)), maskXYZW<<4|maskX).first()
}

// minorRows returns rows without row r and column c.
func minorRows(rows []lanes, r, c int) []lanes {
	n := len(rows)
	out := make([]lanes, 0, n-1)
	for i := 0; i < n; i++ {
		if i != r {
			out = append(out, dropCol(rows[i], c, n))
		}
	}
	return out
}

// determinant dispatches on the matrix size.
func determinant(rows []lanes) float32 {
	switch len(rows) {
	case 1:
		return rows[0].first()
	case 2:
		return det2(rows[0], rows[1])
	case 3:
		return det3(rows)
	default:
		return det4(rows)
	}
}

// inverseRows writes the inverse of rows into dst as adjugate / det.
func inverseRows(dst, rows []lanes) error {
	det := determinant(rows)
	if ops.NearZero(det) {
		return ops.ErrSingularMatrix
	}
	n := len(rows)
	mask := widthMask(n)
	cof := make([]lanes, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cof[r][c] = determinant(minorRows(rows, r, c))
		}
		cof[r] = flipSign(cof[r], checker(r)).keep(mask)
	}
	transposeRows(dst, cof)
	inv := splat(1 / det)
	for r := range dst {
		dst[r] = dst[r].mul(inv).keep(mask)
	}
	return nil
}

func rowsEqual(a, b []lanes, eq func(x, y float32) bool) bool {
	mask := widthMask(len(a))
	for r := range a {
		if !equalLanes(a[r], b[r], mask, eq) {
			return false
		}
	}
	return true
}

func rowsIdentity(rows []lanes) bool {
	mask := widthMask(len(rows))
	for r := range rows {
		var want lanes
		want[r] = 1
		if !equalLanes(rows[r], want, mask, within(ops.FloatEpsilon)) {
			return false
		}
	}
	return true
}
