package seeds

import (
	"reflect"
	"sort"
	"testing"
)

func genItems(size int) []int {
	items := make([]int, size)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestShufflePreservesItems(t *testing.T) {
	items := genItems(16)
	Shuffle(items)

	sorted := make([]int, len(items))
	copy(sorted, items)
	sort.Ints(sorted)

	if !reflect.DeepEqual(sorted, genItems(16)) {
		t.Fatalf("shuffle changed the items, got %v", items)
	}
}

func TestShuffleRandomizes(t *testing.T) {
	items := genItems(64)
	prev := make([]int, len(items))
	copy(prev, items)

	Shuffle(items)

	if reflect.DeepEqual(prev, items) {
		t.Fatal("should be randomized")
	}
}

func TestShuffleSmallInputs(t *testing.T) {
	empty := []int{}
	Shuffle(empty)
	if len(empty) != 0 {
		t.Fatal("empty input should stay empty")
	}

	one := []int{42}
	Shuffle(one)
	if one[0] != 42 {
		t.Fatal("single item should stay put")
	}
}
