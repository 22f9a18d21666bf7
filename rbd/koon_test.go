package rbd

import (
	"math"
	"testing"
)

func TestBuildBinomialTable(t *testing.T) {
	table := buildBinomialTable(5)
	want := []float64{1, 5, 10, 10, 5, 1}
	for i, w := range want {
		if math.Abs(table[i]-w) > 1e-9 {
			t.Errorf("C(5,%d) = %v, want %v", i, table[i], w)
		}
	}
}

func TestGenerateCombinations(t *testing.T) {
	combos := generateCombinations(4, 2)
	if len(combos) != 6 {
		t.Fatalf("len(combos) = %d, want 6 (C(4,2))", len(combos))
	}
	seen := map[string]bool{}
	for _, c := range combos {
		if len(c) != 2 {
			t.Fatalf("tuple length = %d, want 2", len(c))
		}
		if c[0] >= c[1] {
			t.Errorf("tuple %v not strictly ascending", c)
		}
		seen[string(c)] = true
	}
	if len(seen) != 6 {
		t.Errorf("tuples not all distinct: %d unique of 6", len(seen))
	}
}

func TestGenerateCombinations_RZero(t *testing.T) {
	combos := generateCombinations(5, 0)
	if len(combos) != 1 || len(combos[0]) != 0 {
		t.Errorf("generateCombinations(5, 0) = %v, want one empty tuple", combos)
	}
}

func TestGenerateCombinations_RGreaterThanN(t *testing.T) {
	if combos := generateCombinations(3, 4); combos != nil {
		t.Errorf("generateCombinations(3, 4) = %v, want nil", combos)
	}
}

func TestChooseGenericPolicy_PrefersFewerTerms(t *testing.T) {
	// N=10, K=9: success-sum has C(10,9)+C(10,10)=11 terms; fail-sum has
	// C(10,0..8) terms, far more. Fail-sum must not be chosen here.
	table := buildBinomialTable(10)
	useCombo, fromUnreliability := chooseGenericPolicy(10, 9, table)
	if !useCombo {
		t.Fatal("useCombo = false, want true (11 terms is well under threshold)")
	}
	if fromUnreliability {
		t.Error("fromUnreliability = true, want false (success-sum has fewer terms)")
	}
}

func TestChooseGenericPolicy_FallsBackToRecursiveAboveThreshold(t *testing.T) {
	// N=40, K=20 has C(40,20) alone far exceeding koonComboThreshold on
	// either branch.
	table := buildBinomialTable(40)
	useCombo, _ := chooseGenericPolicy(40, 20, table)
	if useCombo {
		t.Error("useCombo = true, want false (term count exceeds koonComboThreshold)")
	}
}

func TestIdenticalTermScalar(t *testing.T) {
	// C(3,2)*R^2*(1-R) term from scenario 4: coefficient=3, R=0.9, working=2, failing=1.
	got := identicalTermScalar(3, 0.9, 0.1, 2, 1)
	want := 3 * 0.9 * 0.9 * 0.1
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("identicalTermScalar(3, 0.9, 0.1, 2, 1) = %v, want %v", got, want)
	}
}

func TestKooNIdenticalClosedFormScalar_ComputeFromUnreliabilityAgrees(t *testing.T) {
	const n, k = 7, 6 // K > N/2: both direct and complementary forms must agree.
	r := 0.85
	table := buildBinomialTable(n)

	direct := &descriptor{numComponents: n, minComponents: k, binomial: table, computeFromUnreliability: false}
	complementary := &descriptor{numComponents: n, minComponents: k, binomial: table, computeFromUnreliability: true}

	got1 := koonIdenticalClosedFormScalar(direct, r)
	got2 := koonIdenticalClosedFormScalar(complementary, r)
	if math.Abs(got1-got2) > 1e-9 {
		t.Errorf("direct = %v, complementary = %v, want equal", got1, got2)
	}
}

func TestGroupSumScalar_AllWorking(t *testing.T) {
	rels := []float64{0.9, 0.8}
	tuples := generateCombinations(2, 0) // one tuple: {} (zero failing)
	got := groupSumScalar(rels, tuples)
	want := 0.9 * 0.8
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("groupSumScalar with zero-failing tuple = %v, want %v", got, want)
	}
}

func TestGroupSumScalar_AllFailing(t *testing.T) {
	rels := []float64{0.9, 0.8}
	tuples := generateCombinations(2, 2) // one tuple: {0,1} (both failing)
	got := groupSumScalar(rels, tuples)
	want := 0.1 * 0.2
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("groupSumScalar with all-failing tuple = %v, want %v", got, want)
	}
}
