package bracket

import (
	"errors"
	"fmt"
	"testing"
)

func TestScheduleRound(t *testing.T) {
	type testCase struct {
		n, courts int
		items     int
	}

	tests := []testCase{
		{n: 8, courts: 2, items: 4},
		{n: 9, courts: 2, items: 8},
		{n: 16, courts: 4, items: 8},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Schedule round 1 of %d entrants on %d courts", tc.n, tc.courts), func(t *testing.T) {
			tr := Generate(tc.n, tc.courts)
			scheduled, err := tr.ScheduleRound()
			if err != nil {
				t.Fatal(err)
			}

			if len(scheduled) != tc.items {
				t.Fatalf("expected %d display items but got %d", tc.items, len(scheduled))
			}

			seen := map[MatchID]int{}
			for pos, item := range scheduled {
				if item.Court < 1 || item.Court > tc.courts {
					t.Fatalf("court %d out of range [1,%d]", item.Court, tc.courts)
				}
				if item.Court != pos%tc.courts+1 {
					t.Fatalf("position %d should sit on court %d but got %d", pos, pos%tc.courts+1, item.Court)
				}
				seen[item.Match.ID]++
			}

			for _, id := range tr.CurrentRound() {
				if seen[id] != 1 {
					t.Fatalf("match %s scheduled %d times, want exactly once", id, seen[id])
				}
			}
		})
	}
}

func TestScheduleRoundDoesNotMutate(t *testing.T) {
	tr := Generate(8, 2)

	before := make([]MatchID, len(tr.RoundIDs[0]))
	copy(before, tr.RoundIDs[0])

	if _, err := tr.ScheduleRound(); err != nil {
		t.Fatal(err)
	}

	for i, id := range tr.RoundIDs[0] {
		if id != before[i] {
			t.Fatal("scheduling must not reorder the construction order")
		}
	}
}

func TestScheduleRoundAfterFinish(t *testing.T) {
	tr := Generate(8, 2)
	for round := 1; round <= 3; round++ {
		if err := tr.AdvanceRound(firstOccupants(tr)); err != nil {
			t.Fatalf("round %d failed to advance: %v", round, err)
		}
	}

	if _, err := tr.ScheduleRound(); !errors.Is(err, ErrNoCurrentRound) {
		t.Fatalf("expected ErrNoCurrentRound but got %v", err)
	}
}
