package rbd

// This file holds the scalar (C1) kernels: one time instant per call. They
// define the exact numerical contract — left-to-right products, repeated
// multiplication instead of pow, and the mandated Bridge reformulations —
// that every vector kernel must reproduce bit-for-bit modulo allowed FMA
// fusion. Every tiered worker also falls back to these when fewer than two
// time instants remain.

// seriesGenericScalar computes Series reliability at one time instant from
// N distinct component reliabilities, left-to-right from component 0.
func seriesGenericScalar(d *descriptor, t int) float64 {
	r := d.relRow(0)[t]
	for i := 1; i < d.numComponents; i++ {
		r *= d.relRow(i)[t]
	}
	return cap(r)
}

// seriesIdenticalScalar computes rel^N by repeated multiplication (pow is
// not permitted; it would not bit-match the vector kernels' FMA-fused
// repeated multiplication).
func seriesIdenticalScalar(rel float64, n int) float64 {
	r := rel
	for i := 1; i < n; i++ {
		r *= rel
	}
	return cap(r)
}

// parallelGenericScalar computes Parallel reliability as
// 1 - prod(1 - rel[i][t]), accumulating the complement product
// left-to-right from component 0.
func parallelGenericScalar(d *descriptor, t int) float64 {
	s := 1 - d.relRow(0)[t]
	for i := 1; i < d.numComponents; i++ {
		s *= 1 - d.relRow(i)[t]
	}
	return cap(1 - s)
}

// parallelIdenticalScalar computes 1 - (1-rel)^N via repeated
// multiplication, same iterative shape as seriesIdenticalScalar.
func parallelIdenticalScalar(rel float64, n int) float64 {
	u := 1 - rel
	s := u
	for i := 1; i < n; i++ {
		s *= u
	}
	return cap(1 - s)
}

// bridgeGenericScalar computes the five-component Bridge reliability using
// the mandated reformulation (fewer ops, no explicit 1-x subtractions):
//
//	VAL1 = (R1+R3-R1*R3) * (R2+R4-R2*R4)
//	VAL2 = R1*R2 + R3*R4 - R1*R2*R3*R4
//	R    = R5*(VAL1-VAL2) + VAL2
func bridgeGenericScalar(r1, r2, r3, r4, r5 float64) float64 {
	val1 := (r1 + r3 - r1*r3) * (r2 + r4 - r2*r4)
	val2 := r1*r2 + r3*r4 - r1*r2*r3*r4
	return cap(r5*(val1-val2) + val2)
}

// bridgeIdenticalScalar computes the identical-Bridge closed form with the
// mandated parenthesization: R*(1 + U*(U*(U*U-2) + R*(2-R*R))), U = 1-R.
func bridgeIdenticalScalar(r float64) float64 {
	u := 1 - r
	return cap(r * (1 + u*(u*(u*u-2)+r*(2-r*r))))
}
