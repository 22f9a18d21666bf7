package rbd

// blockKind identifies which closed-form family a descriptor evaluates.
type blockKind int

const (
	kindSeries blockKind = iota
	kindParallel
	kindBridge
	kindKooN
	// kindFill covers KooN's trivial K=0 (fill 1.0) and K>N (fill 0.0)
	// cases. It still goes through the worker/partition machinery so the
	// thread-count-invariance and determinism properties hold uniformly
	// across every entry point, matching spec §4.4's "filled by a
	// dedicated fill-worker".
	kindFill
)

// descriptor is the per-invocation, read-mostly state shared by every
// worker. It is built once by the dispatching entry point and handed to
// each worker as part of a *workerJob; workers never mutate it (spec §3:
// "Descriptors are created by the dispatcher before spawning workers and
// destroyed after joining").
type descriptor struct {
	kind blockKind

	// genericRel is the N*T row-major input matrix; nil for identical
	// invocations. identicalRel is the T-length shared input; nil for
	// generic invocations. Exactly one is non-nil.
	genericRel   []float64
	identicalRel []float64

	out []float64

	numComponents int
	numTimes      int
	numCores      int

	// KooN-only fields.
	minComponents            int
	computeFromUnreliability bool
	binomial                 []float64   // binomial[i] = C(numComponents, i), precomputed once
	combos                   *comboSet   // nil unless the combinatorial KooN branch was chosen
	recursionCombos          [][][]uint8 // nil unless the recursive Shannon branch was chosen

	// fillValue is the constant written by every time instant when
	// kind == kindFill.
	fillValue float64
}

func (d *descriptor) identical() bool {
	return d.identicalRel != nil
}

// relRow returns the T-length reliability series for component i. For
// identical invocations every i maps to the same backing slice.
func (d *descriptor) relRow(i int) []float64 {
	if d.identical() {
		return d.identicalRel
	}
	return d.genericRel[i*d.numTimes : (i+1)*d.numTimes]
}

// comboSet is the KooN combination data of spec §3: for a chosen working
// size i, the ordered list of C(N,i) index tuples naming which components
// are "working" (success-sum) or "failing" (fail-sum) in that term. Stored
// as a slice of small index slices rather than a flat byte buffer plus a
// count — idiomatic Go for sequential, read-only access, same contract.
type comboSet struct {
	// sizes holds the working/failing-set sizes enumerated: [K..N] working
	// for success-sum or [N-K+1..N] failing for fail-sum.
	sizes []int
	// tuples[i] holds all C(N, sizes[i]) index tuples of length sizes[i].
	tuples [][][]uint8
	// fromUnreliability is true when tuples enumerate *failing* subsets
	// (fail-sum branch); false when they enumerate *working* subsets
	// (success-sum branch).
	fromUnreliability bool
}

// recursionScratch is the per-worker workspace for the recursive Shannon
// KooN path (spec §3/§4.4). best is the number of trailing components
// expanded at once (best = min(K-1, N-K)); reliabilities holds those
// components' reliability at one time instant, loaded fresh for each time
// instant the worker evaluates.
type recursionScratch struct {
	best          int
	reliabilities []float64 // length == best, one value per trailing component
}

func newRecursionScratch(best int) *recursionScratch {
	return &recursionScratch{
		best:          best,
		reliabilities: make([]float64, best),
	}
}

// workerJob is the typed, per-worker argument handed to a goroutine. It
// replaces the source library's opaque thread-argument pointer (spec §9
// Design Notes) with a typed reference, per the reimplementation guidance.
type workerJob struct {
	desc     *descriptor
	batchIdx int
	// scratch is this worker's private recursion scratch; nil unless the
	// descriptor's KooN branch is the recursive Shannon expansion.
	scratch *recursionScratch
}
