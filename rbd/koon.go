package rbd

// This file holds the KooN solver (C4): the combinatorial success-sum and
// fail-sum branches, the recursive Shannon expansion with best-level
// shared-subexpression batching, the identical-component closed form, and
// the policy that chooses among them (spec §4.4).

// koonComboThreshold bounds the combinatorial branch's term count before
// the solver switches to recursive Shannon expansion. Implementer-chosen,
// per spec §4.4 ("some threshold, implementer-chosen").
const koonComboThreshold = 4096

// buildBinomialTable computes C(n,i) for i in [0,n] via the standard
// multiplicative recurrence C(n,i) = C(n,i-1)*(n-i+1)/i. Shared read-only
// across all workers of one invocation (spec §4.4 policy for identical
// components: "precomputes C(N,i) once per invocation").
func buildBinomialTable(n int) []float64 {
	table := make([]float64, n+1)
	table[0] = 1
	for i := 1; i <= n; i++ {
		table[i] = table[i-1] * float64(n-i+1) / float64(i)
	}
	return table
}

// sumBinomialRange sums table[lo..hi] inclusive; an empty or inverted range
// sums to zero.
func sumBinomialRange(table []float64, lo, hi int) float64 {
	sum := 0.0
	for i := lo; i <= hi; i++ {
		if i < 0 || i >= len(table) {
			continue
		}
		sum += table[i]
	}
	return sum
}

// generateCombinations enumerates, in ascending lexicographic order, every
// size-r subset of {0,...,n-1} as a sorted []uint8 tuple. This is the KooN
// combination data of spec §3, realized as a slice of small index slices
// (sequential, read-only access) rather than a flat byte buffer plus a
// count. n is assumed <= 255 (component counts fit a byte, matching the
// scratch sizing notes of spec §3).
func generateCombinations(n, r int) [][]uint8 {
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]uint8{{}}
	}
	var result [][]uint8
	combo := make([]uint8, r)
	var rec func(start, idx int)
	rec = func(start, idx int) {
		if idx == r {
			tuple := make([]uint8, r)
			copy(tuple, combo)
			result = append(result, tuple)
			return
		}
		for v := start; v <= n-(r-idx); v++ {
			combo[idx] = uint8(v)
			rec(v+1, idx+1)
		}
	}
	rec(0, 0)
	return result
}

// chooseGenericPolicy decides, for generic (non-identical) components,
// whether the combinatorial branch is tractable and if so which of
// success-sum / fail-sum has fewer terms. Per spec §4.4: "if the
// fail-sum term count is <= the success-sum term count, fail-sum must be
// preferred", and the combinatorial branch is used only while its term
// count stays under koonComboThreshold; otherwise the solver falls back to
// recursive Shannon expansion.
func chooseGenericPolicy(n, k int, table []float64) (useCombinatorial, fromUnreliability bool) {
	successCount := sumBinomialRange(table, k, n)
	failCount := sumBinomialRange(table, 0, k-1)

	minCount := successCount
	fromUnreliability = false
	if failCount <= successCount {
		minCount = failCount
		fromUnreliability = true
	}
	return minCount <= koonComboThreshold, fromUnreliability
}

// buildCombos materializes the combination data for the chosen
// combinatorial branch: every working-subset size in [K,N] (success-sum)
// or failing-subset size in [N-K+1,N] (fail-sum, i.e. at most K-1
// working), and every C(N,size) index tuple of that size. Both ranges
// hold the term counts that chooseGenericPolicy compares.
func buildCombos(n, k int, fromUnreliability bool) *comboSet {
	var sizes []int
	if fromUnreliability {
		for i := n - k + 1; i <= n; i++ {
			sizes = append(sizes, i)
		}
	} else {
		for i := k; i <= n; i++ {
			sizes = append(sizes, i)
		}
	}
	tuples := make([][][]uint8, len(sizes))
	for idx, size := range sizes {
		tuples[idx] = generateCombinations(n, size)
	}
	return &comboSet{sizes: sizes, tuples: tuples, fromUnreliability: fromUnreliability}
}

// buildRecursionCombos precomputes, for the recursive Shannon branch, the
// combination data of every subset size j in [0,best] over the "best"
// trailing components' local index space [0,best). Shared read-only
// across workers and across all time instants of one invocation.
func buildRecursionCombos(best int) [][][]uint8 {
	out := make([][][]uint8, best+1)
	for j := 0; j <= best; j++ {
		out[j] = generateCombinations(best, j)
	}
	return out
}

// comboTermScalar evaluates one combinatorial term at time t: the product
// over components in tuple of (unreliability if fromUnreliability else
// reliability), times the product over components not in tuple of the
// complementary factor. tuple is sorted ascending.
func comboTermScalar(d *descriptor, tuple []uint8, t int, fromUnreliability bool) float64 {
	term := 1.0
	ptr := 0
	for j := 0; j < d.numComponents; j++ {
		inSet := ptr < len(tuple) && int(tuple[ptr]) == j
		if inSet {
			ptr++
		}
		rel := d.relRow(j)[t]
		switch {
		case inSet && fromUnreliability:
			term *= 1 - rel
		case inSet:
			term *= rel
		case fromUnreliability:
			term *= rel
		default:
			term *= 1 - rel
		}
	}
	return term
}

// koonGenericCombinatorialScalar evaluates generic-component KooN at time t
// using the combinatorial branch chosen at dispatch time (success-sum or
// fail-sum, per d.combos).
func koonGenericCombinatorialScalar(d *descriptor, t int) float64 {
	set := d.combos
	total := 0.0
	for si, size := range set.sizes {
		for _, tuple := range set.tuples[si] {
			total += comboTermScalar(d, tuple, t, set.fromUnreliability)
		}
		_ = size
	}
	if set.fromUnreliability {
		return cap(1 - total)
	}
	return cap(total)
}

// groupSumScalar sums, over every tuple (a "failing" index subset of
// rels), the product of unreliabilities at the tuple's indices times the
// product of reliabilities at every other index. Used by the recursive
// Shannon branch to batch the "best" trailing components (spec §4.4.C).
func groupSumScalar(rels []float64, tuples [][]uint8) float64 {
	sum := 0.0
	for _, tuple := range tuples {
		term := 1.0
		ptr := 0
		for idx := range rels {
			inSet := ptr < len(tuple) && int(tuple[ptr]) == idx
			if inSet {
				ptr++
				term *= 1 - rels[idx]
			} else {
				term *= rels[idx]
			}
		}
		sum += term
	}
	return sum
}

// seriesProductUpTo computes the Series product over the first n
// components at time t (used as a KooN(n,n) base case).
func seriesProductUpTo(d *descriptor, n, t int) float64 {
	r := d.relRow(0)[t]
	for i := 1; i < n; i++ {
		r *= d.relRow(i)[t]
	}
	return cap(r)
}

// parallelComplementUpTo computes the Parallel reliability over the first
// n components at time t (used as a KooN(n,1) base case).
func parallelComplementUpTo(d *descriptor, n, t int) float64 {
	s := 1 - d.relRow(0)[t]
	for i := 1; i < n; i++ {
		s *= 1 - d.relRow(i)[t]
	}
	return cap(1 - s)
}

// koonSub evaluates KooN(subN, subK) at time t over the first subN
// components of d, via the trivial cases and — when none apply — one
// component at a time of plain Shannon expansion (spec §4.4.C's base
// recursion, without the "best"-level batching the top-level call already
// applied once).
func koonSub(d *descriptor, subN, subK, t int) float64 {
	switch {
	case subK <= 0:
		return 1.0
	case subK > subN:
		return 0.0
	case subK == subN:
		return seriesProductUpTo(d, subN, t)
	case subK == 1:
		return parallelComplementUpTo(d, subN, t)
	default:
		rn := d.relRow(subN - 1)[t]
		return rn*koonSub(d, subN-1, subK-1, t) + (1-rn)*koonSub(d, subN-1, subK, t)
	}
}

// koonGenericRecursiveScalar evaluates generic-component KooN at time t via
// the recursive Shannon expansion, batching scratch.best trailing
// components at once: for each failing-count j in [0,best] it sums the
// C(best,j) sub-combination products and multiplies by the recursive
// sub-call KooN(n-best, k-best+j), then accumulates.
func koonGenericRecursiveScalar(d *descriptor, scratch *recursionScratch, t int) float64 {
	best := scratch.best
	n := d.numComponents
	k := d.minComponents
	for i := 0; i < best; i++ {
		scratch.reliabilities[i] = d.relRow(n-best+i)[t]
	}

	subN := n - best
	total := 0.0
	for j := 0; j <= best; j++ {
		groupSum := groupSumScalar(scratch.reliabilities, d.recursionCombos[j])
		if groupSum == 0 {
			continue
		}
		subK := k - best + j
		total += groupSum * koonSub(d, subN, subK, t)
	}
	return cap(total)
}

// identicalTermScalar builds one term of the identical-KooN closed form by
// repeated multiplication (pow is not permitted, matching the mandate for
// Series/Parallel): coefficient * (r*u)^minPairs * base^surplus, where
// minPairs = min(working,failing) pairs consume one r and one u each, and
// the surplus exponent on the longer side is applied via base.
func identicalTermScalar(coefficient, r, u float64, working, failing int) float64 {
	minPairs := working
	if failing < minPairs {
		minPairs = failing
	}
	pair := r * u
	acc := 1.0
	for i := 0; i < minPairs; i++ {
		acc *= pair
	}
	surplus := working - failing
	base := r
	if surplus < 0 {
		surplus = -surplus
		base = u
	}
	for i := 0; i < surplus; i++ {
		acc *= base
	}
	return coefficient * acc
}

// koonIdenticalClosedFormScalar evaluates R = Sum_{i=K..N} C(N,i) R^i
// (1-R)^(N-i) for one time instant's shared reliability r, iterating
// failing-count f from N-K down to 0 (accumulating from smallest to
// largest term, per spec §4.4). When computeFromUnreliability is set, it
// instead accumulates the complementary sum Sum_{i=0..K-1} C(N,i) R^i
// (1-R)^(N-i) over working-count i in [0,K-1] and returns 1-sum, to
// preserve accuracy when K is close to N.
func koonIdenticalClosedFormScalar(d *descriptor, r float64) float64 {
	n := d.numComponents
	k := d.minComponents
	u := 1 - r
	table := d.binomial

	if d.computeFromUnreliability {
		sum := 0.0
		for i := k - 1; i >= 0; i-- {
			failing := n - i
			sum += identicalTermScalar(table[i], r, u, i, failing)
		}
		return cap(1 - sum)
	}

	sum := 0.0
	for f := n - k; f >= 0; f-- {
		working := n - f
		sum += identicalTermScalar(table[working], r, u, working, f)
	}
	return cap(sum)
}
