package rbd

// This file holds the worker loop (C3): for one batchIdx, advance through
// the T axis in strides of numCores*W, picking the tier-selected vector
// kernel while at least W lanes remain and falling back to scalar for the
// trailing tail. Grounded on hwy/contrib/workerpool.Pool.ParallelFor's
// chunking idiom, adapted from contiguous row-range chunking to strided
// time-axis partitioning: the spec requires disjoint strides (not
// contiguous chunks) so that every worker's coverage set stays the same
// shape regardless of which tier is active.
//
// There is no alignment-prologue step here (spec §4.3 step 2): that step
// is a pure latency optimization for raising effective SIMD alignment,
// which Go slices have no portable concept of without the experimental
// simd/archsimd package this module intentionally does not depend on (see
// DESIGN.md). Omitting it changes no output.

// runWorker executes one worker's share of the time axis for job, using
// the process-wide tier (rbd.CurrentTier()).
func runWorker(job *workerJob) {
	d := job.desc
	tier := CurrentTier()

	if tier == TierScalar {
		runScalarOnly(job)
		return
	}

	w := tier.width()
	stride := d.numCores * w
	t := job.batchIdx * w

	if tier == TierScalable {
		runScalableLoop(job, t, stride, w)
		return
	}

	for t+w <= d.numTimes {
		prefetchRead(d.numTimes, d.numComponents, t+stride)
		prefetchWrite(t + stride)
		invokeVector(job, t, w)
		t += stride
	}

	remaining := d.numTimes - t
	if remaining <= 0 {
		return
	}
	if w > 4 && remaining >= 4 {
		invokeVector(job, t, 4)
		t += 4
		remaining -= 4
	}
	if w > 2 && remaining >= 2 {
		invokeVector(job, t, 2)
		t += 2
		remaining -= 2
	}
	if remaining >= 1 {
		invokeScalar(job, t)
	}
}

// runScalarOnly covers every time instant this worker owns one at a time,
// striding by numCores. It is used for the scalar tier; the other tiers'
// descending tail in runWorker calls invokeScalar directly for its last
// instant. Neither path has a branch that strides by numTimes (§9 Design
// Notes, Open Question a).
func runScalarOnly(job *workerJob) {
	d := job.desc
	for t := job.batchIdx; t < d.numTimes; t += d.numCores {
		invokeScalar(job, t)
	}
}

// runScalableLoop covers this worker's share using the scalable-tier
// kernel, which — unlike every fixed-width tier — accepts a partial group
// in a single call (spec §4.2 Tail safety exception), so no separate
// descending tail or scalar tail is needed.
func runScalableLoop(job *workerJob, t, stride, w int) {
	d := job.desc
	for t < d.numTimes {
		lanes := w
		if t+lanes > d.numTimes {
			lanes = d.numTimes - t
		}
		prefetchRead(d.numTimes, d.numComponents, t+stride)
		prefetchWrite(t + stride)
		invokeVector(job, t, lanes)
		t += stride
	}
}

// invokeVector dispatches a w-wide group starting at t to the vector
// kernel matching job.desc.kind and generic/identical shape.
func invokeVector(job *workerJob, t, w int) {
	d := job.desc
	switch d.kind {
	case kindSeries:
		if d.identical() {
			seriesIdenticalVector(d.identicalRel, d.out, t, w, d.numComponents)
		} else {
			seriesGenericVector(d, t, w)
		}
	case kindParallel:
		if d.identical() {
			parallelIdenticalVector(d.identicalRel, d.out, t, w, d.numComponents)
		} else {
			parallelGenericVector(d, t, w)
		}
	case kindBridge:
		if d.identical() {
			bridgeIdenticalVector(d.identicalRel, d.out, t, w)
		} else {
			bridgeGenericVector(d, t, w)
		}
	case kindKooN:
		invokeKooNVector(job, t, w)
	case kindFill:
		for lane := 0; lane < w; lane++ {
			d.out[t+lane] = d.fillValue
		}
	}
}

// invokeKooNVector handles the three KooN evaluation paths lane-by-lane:
// the identical closed form has a true vector kernel; the combinatorial
// and recursive generic branches reduce to a per-lane scalar call since
// their cost is already amortized by the shared combo/recursion tables
// built once per invocation (worker scratch is per-worker, not per-lane).
func invokeKooNVector(job *workerJob, t, w int) {
	d := job.desc
	if d.identical() {
		koonIdenticalClosedFormVector(d, d.identicalRel, d.out, t, w)
		return
	}
	for lane := 0; lane < w; lane++ {
		idx := t + lane
		if d.combos != nil {
			d.out[idx] = koonGenericCombinatorialScalar(d, idx)
		} else {
			d.out[idx] = koonGenericRecursiveScalar(d, job.scratch, idx)
		}
	}
}

// invokeScalar evaluates a single time instant t via the C1 scalar
// kernels, matching job.desc.kind and generic/identical shape.
func invokeScalar(job *workerJob, t int) {
	d := job.desc
	switch d.kind {
	case kindSeries:
		if d.identical() {
			d.out[t] = seriesIdenticalScalar(d.identicalRel[t], d.numComponents)
		} else {
			d.out[t] = seriesGenericScalar(d, t)
		}
	case kindParallel:
		if d.identical() {
			d.out[t] = parallelIdenticalScalar(d.identicalRel[t], d.numComponents)
		} else {
			d.out[t] = parallelGenericScalar(d, t)
		}
	case kindBridge:
		if d.identical() {
			d.out[t] = bridgeIdenticalScalar(d.identicalRel[t])
		} else {
			r1, r2, r3, r4, r5 := d.relRow(0)[t], d.relRow(1)[t], d.relRow(2)[t], d.relRow(3)[t], d.relRow(4)[t]
			d.out[t] = bridgeGenericScalar(r1, r2, r3, r4, r5)
		}
	case kindKooN:
		switch {
		case d.identical():
			d.out[t] = koonIdenticalClosedFormScalar(d, d.identicalRel[t])
		case d.combos != nil:
			d.out[t] = koonGenericCombinatorialScalar(d, t)
		default:
			d.out[t] = koonGenericRecursiveScalar(d, job.scratch, t)
		}
	case kindFill:
		d.out[t] = d.fillValue
	}
}
