package miner

import (
	"reflect"
	"testing"
)

func TestMine_EmptyTransactions(t *testing.T) {
	t.Parallel()
	if got := Mine(nil, 0.5); got != nil {
		t.Errorf("Mine(nil) = %v, want nil", got)
	}
}

func TestMine_ClosureExcludesNonClosedSubset(t *testing.T) {
	t.Parallel()
	transactions := [][]int{{1, 2}, {1, 2}, {1, 3}}
	got := Mine(transactions, 0.5)

	want := []Itemset{
		{Items: []int{1}, Support: 3},
		{Items: []int{1, 2}, Support: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mine() = %+v, want %+v", got, want)
	}
}

func TestMine_SupportThresholdFloor(t *testing.T) {
	t.Parallel()
	// A single transaction: ceil(0.01*1) = 1, floored to 1 either way.
	transactions := [][]int{{5}}
	got := Mine(transactions, 0.01)
	want := []Itemset{{Items: []int{5}, Support: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Mine() = %+v, want %+v", got, want)
	}
}

func TestMine_NoFrequentItems(t *testing.T) {
	t.Parallel()
	transactions := [][]int{{1}, {2}, {3}}
	got := Mine(transactions, 1.0) // every item must appear in all 3 txns
	if got != nil {
		t.Errorf("Mine() = %v, want nil", got)
	}
}

func TestMine_IdenticalTransactionsAreClosedTogether(t *testing.T) {
	t.Parallel()
	// S3: two identical transactions share every itemset at full support.
	transactions := [][]int{{10, 20, 30}, {10, 20, 30}}
	got := Mine(transactions, 1.0)
	if len(got) == 0 {
		t.Fatal("expected at least one itemset")
	}
	for _, is := range got {
		if is.Support != 2 {
			t.Errorf("itemset %v support = %d, want 2 (identical transactions)", is.Items, is.Support)
		}
	}
	// The maximal closed itemset over two identical transactions is the
	// full transaction itself.
	found := false
	for _, is := range got {
		if reflect.DeepEqual(is.Items, []int{10, 20, 30}) {
			found = true
		}
	}
	if !found {
		t.Error("expected the full 3-item closure to appear")
	}
}

func TestMine_FlattenedAscendingBySize(t *testing.T) {
	t.Parallel()
	transactions := [][]int{{1, 2, 3}, {1, 2, 3}, {1, 2}}
	got := Mine(transactions, 0.01)
	for i := 1; i < len(got); i++ {
		if len(got[i].Items) < len(got[i-1].Items) {
			t.Fatalf("itemsets not in ascending size order: %+v", got)
		}
	}
}

func TestMine_EveryItemsetSortedAscending(t *testing.T) {
	t.Parallel()
	transactions := [][]int{{3, 1, 2}, {1, 2, 3}}
	// Note: caller is expected to pass sorted transactions; the miner
	// still must emit sorted ascending itemsets regardless of item order
	// encountered while building tidsets.
	got := Mine(transactions, 1.0)
	for _, is := range got {
		for i := 1; i < len(is.Items); i++ {
			if is.Items[i] <= is.Items[i-1] {
				t.Errorf("itemset %v not strictly ascending", is.Items)
			}
		}
	}
}
