package rbd

import "testing"

// TestRunScalarOnly_StridesByNumCores exercises the scalar-tail/fallback
// path directly and confirms it strides by numCores, not numTimes — the bug
// the source library had in its generic-Series scalar fallback (spec §9
// Design Notes, Open Question a).
func TestRunScalarOnly_StridesByNumCores(t *testing.T) {
	const n, numTimes, numCores = 2, 10, 3
	rel := make([]float64, n*numTimes)
	for i := range rel {
		rel[i] = 0.5
	}
	out := make([]float64, numTimes)
	d := &descriptor{kind: kindSeries, genericRel: rel, out: out, numComponents: n, numTimes: numTimes, numCores: numCores}

	for b := 0; b < numCores; b++ {
		runScalarOnly(&workerJob{desc: d, batchIdx: b})
	}

	for i, v := range out {
		if v == 0 {
			t.Errorf("out[%d] untouched (want every index in [0,T) covered by some worker)", i)
		}
	}
}

func TestRunScalarOnly_WorkersCoverDisjointIndices(t *testing.T) {
	const n, numTimes, numCores = 1, 17, 4
	rel := make([]float64, n*numTimes)
	for i := range rel {
		rel[i] = 0.5
	}

	covered := make([]int, numTimes)
	for b := 0; b < numCores; b++ {
		out := make([]float64, numTimes)
		d := &descriptor{kind: kindSeries, genericRel: rel, out: out, numComponents: n, numTimes: numTimes, numCores: numCores}
		runScalarOnly(&workerJob{desc: d, batchIdx: b})
		for idx, v := range out {
			if v != 0 {
				covered[idx]++
			}
		}
	}

	for idx, count := range covered {
		if count != 1 {
			t.Errorf("time index %d covered by %d workers, want exactly 1", idx, count)
		}
	}
}

func TestDispatch_FillConstant(t *testing.T) {
	out := make([]float64, 5)
	if status := fillConstant(out, 5, 1.0); status != StatusOK {
		t.Fatalf("status = %d, want StatusOK", status)
	}
	for i, v := range out {
		if v != 1.0 {
			t.Errorf("out[%d] = %v, want 1.0", i, v)
		}
	}
}

func TestAllocateRecursionScratch_NonKooNReturnsNil(t *testing.T) {
	d := &descriptor{kind: kindSeries, numCores: 2}
	scratch, status := allocateRecursionScratch(d)
	if status != StatusOK {
		t.Fatalf("status = %d, want StatusOK", status)
	}
	if scratch != nil {
		t.Errorf("scratch = %v, want nil for non-KooN descriptor", scratch)
	}
}
