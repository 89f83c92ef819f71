package topk

import (
	"slices"
	"strings"
	"testing"
)

func TestNatural(t *testing.T) {
	c := Natural[int]()
	if c(1, 2) >= 0 || c(2, 1) <= 0 || c(3, 3) != 0 {
		t.Error("Natural[int] does not follow the cmp convention")
	}
}

func TestReverseInvolution(t *testing.T) {
	rng := newTestRNG(t)
	c := Natural[int]()
	r := Reverse(c)
	rr := Reverse(r)
	for range 1000 {
		a, b := int(rng.Int32()), int(rng.Int32())
		if r(a, b) != c(b, a) {
			t.Fatalf("Reverse(%d, %d) != cmp(%d, %d)", a, b, b, a)
		}
		if rr(a, b) != c(a, b) {
			t.Fatalf("double Reverse is not the identity at (%d, %d)", a, b)
		}
	}
}

func TestOrderByKey(t *testing.T) {
	byLen := OrderByKey(func(s string) int { return len(s) })
	sel, err := NewFunc(2, byLen)
	if err != nil {
		t.Fatal(err)
	}
	sel.Extend(slices.Values([]string{"aaaa", "a", "aaa", "aa"}))
	if got := sel.SortedSlice(); !slices.Equal(got, []string{"a", "aa"}) {
		t.Errorf("SortedSlice() = %v, want [a aa]", got)
	}
}

func TestRankOrder(t *testing.T) {
	// Items with no usable natural order, selected purely by attached rank.
	sel, err := NewFunc(2, RankOrder[string](), WithLargest())
	if err != nil {
		t.Fatal(err)
	}
	sel.Insert(Ranked[string]{Item: "low", Rank: 0.1})
	sel.Insert(Ranked[string]{Item: "high", Rank: 0.9})
	sel.Insert(Ranked[string]{Item: "mid", Rank: 0.5})

	var got []string
	for r := range sel.Drain() {
		got = append(got, r.Item)
	}
	if !slices.Equal(got, []string{"high", "mid"}) {
		t.Errorf("drained items = %v, want [high mid]", got)
	}
}

func TestCompareFuncIsConsumedUniformly(t *testing.T) {
	// The same comparator source works across plain, unique, and stable
	// configurations.
	byLower := OrderByKey(strings.ToLower)

	plain, err := NewFunc(3, byLower)
	if err != nil {
		t.Fatal(err)
	}
	unique, err := NewUniqueFunc(3, byLower, strings.ToLower)
	if err != nil {
		t.Fatal(err)
	}
	stable, err := NewFunc(3, byLower, WithStable())
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []string{"B", "a", "b", "C", "A"} {
		plain.Insert(v)
		unique.Insert(v)
		stable.Insert(v)
	}
	if got := unique.SortedSlice(); !slices.Equal(got, []string{"a", "B", "C"}) {
		t.Errorf("unique residents = %v, want [a B C]", got)
	}
	if got := stable.SortedSlice(); !slices.Equal(got, []string{"a", "A", "B"}) {
		t.Errorf("stable residents = %v, want [a A B]", got)
	}
	if got := plain.Len(); got != 3 {
		t.Errorf("plain Len = %d, want 3", got)
	}
}
