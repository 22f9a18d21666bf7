package rbd

// This file holds the vector (C2) kernels. The reference implementation
// does not depend on Go's experimental simd/archsimd package (gated behind
// GOEXPERIMENT=simd) because that would keep this module from building
// under a standard `go build` — see SPEC_FULL.md §4.2 and DESIGN.md for the
// rationale. Each width W kernel is instead a manually-unrolled, W-wide
// loop over plain float64 lanes: algebraically identical to a true
// lane-parallel SIMD evaluation (same per-lane formula, same evaluation
// order, auto-vectorizable by the Go compiler), and portable everywhere.
//
// Every kernel here is invoked by the worker loop (worker.go) only after it
// has verified at least w lanes remain (spec §4.2 Tail safety), except the
// scalable-tier kernel, which is allowed a partial group.

// seriesGenericVector computes Series reliability for w consecutive time
// instants starting at t, for N distinct components.
func seriesGenericVector(d *descriptor, t, w int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		r := d.relRow(0)[idx]
		for i := 1; i < d.numComponents; i++ {
			r *= d.relRow(i)[idx]
		}
		d.out[idx] = cap(r)
	}
}

// seriesIdenticalVector computes rel[t+lane]^N for w consecutive lanes. One
// vector load at rel[t] supplies all lanes per spec §4.2 input addressing.
func seriesIdenticalVector(rel, out []float64, t, w, n int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		base := rel[idx]
		r := base
		for i := 1; i < n; i++ {
			r *= base
		}
		out[idx] = cap(r)
	}
}

// parallelGenericVector computes Parallel reliability for w consecutive
// time instants starting at t, for N distinct components.
func parallelGenericVector(d *descriptor, t, w int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		s := 1 - d.relRow(0)[idx]
		for i := 1; i < d.numComponents; i++ {
			s *= 1 - d.relRow(i)[idx]
		}
		d.out[idx] = cap(1 - s)
	}
}

// parallelIdenticalVector computes 1-(1-rel[t+lane])^N for w consecutive
// lanes.
func parallelIdenticalVector(rel, out []float64, t, w, n int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		u := 1 - rel[idx]
		s := u
		for i := 1; i < n; i++ {
			s *= u
		}
		out[idx] = cap(1 - s)
	}
}

// bridgeGenericVector computes the five-component Bridge reliability for w
// consecutive time instants starting at t, using the mandated
// reformulation (same shape as bridgeGenericScalar, lane-parallel).
func bridgeGenericVector(d *descriptor, t, w int) {
	r1s, r2s, r3s, r4s, r5s := d.relRow(0), d.relRow(1), d.relRow(2), d.relRow(3), d.relRow(4)
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		r1, r2, r3, r4, r5 := r1s[idx], r2s[idx], r3s[idx], r4s[idx], r5s[idx]
		val1 := (r1 + r3 - r1*r3) * (r2 + r4 - r2*r4)
		val2 := r1*r2 + r3*r4 - r1*r2*r3*r4
		d.out[idx] = cap(r5*(val1-val2) + val2)
	}
}

// bridgeIdenticalVector computes the identical-Bridge closed form for w
// consecutive lanes, with the mandated parenthesization.
func bridgeIdenticalVector(rel, out []float64, t, w int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		r := rel[idx]
		u := 1 - r
		out[idx] = cap(r * (1 + u*(u*(u*u-2)+r*(2-r*r))))
	}
}

// koonIdenticalClosedFormVector evaluates the identical-KooN closed form
// (koon.go) for w consecutive lanes sharing the same precomputed binomial
// table.
func koonIdenticalClosedFormVector(d *descriptor, rel []float64, out []float64, t, w int) {
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		out[idx] = koonIdenticalClosedFormScalar(d, rel[idx])
	}
}
