package bracket

import (
	"fmt"
	"sort"
	"testing"
)

func TestGenerate(t *testing.T) {
	type testCase struct {
		n        int
		expected func(tr *Tournament, t *testing.T)
	}

	validateByes := func(tr *Tournament, t *testing.T, expected int) {
		byes := 0
		for _, id := range tr.RoundIDs[0] {
			m := tr.Matches[id]
			if m.Bye {
				byes++
				if m.Winner == "" {
					t.Fatalf("bye %s should have its winner stamped at creation", id)
				}
				if m.Slots[1].Kind != SlotBye {
					t.Fatalf("bye %s second slot should be the bye sentinel", id)
				}
			}
		}
		if byes != expected {
			t.Fatalf("expected %d byes but got %d", expected, byes)
		}
	}

	validateFeeds := func(tr *Tournament, t *testing.T) {
		for r := 1; r < len(tr.RoundIDs); r++ {
			fed := map[MatchID]int{}
			for _, id := range tr.RoundIDs[r] {
				m := tr.Matches[id]
				for _, feedID := range m.Feeds {
					feed, ok := tr.Matches[feedID]
					if !ok {
						t.Fatalf("match %s feeds from missing match %s", id, feedID)
					}
					if feed.Round != r {
						t.Fatalf("match %s in round %d feeds from round %d", id, r+1, feed.Round)
					}
					fed[feedID]++
				}
			}
			for _, prevID := range tr.RoundIDs[r-1] {
				if fed[prevID] != 1 {
					t.Fatalf("round %d match %s referenced %d times as a feed, want exactly once", r, prevID, fed[prevID])
				}
			}
		}
	}

	tests := []testCase{
		{
			n: 8,
			expected: func(tr *Tournament, t *testing.T) {
				if tr.Size != 8 || tr.Rounds != 3 {
					t.Fatalf("expected size 8 with 3 rounds but got size %d with %d rounds", tr.Size, tr.Rounds)
				}
				if len(tr.RoundIDs[0]) != 4 {
					t.Fatalf("expected 4 round-1 items but got %d", len(tr.RoundIDs[0]))
				}
				validateByes(tr, t, 0)
				validateFeeds(tr, t)
			},
		},
		{
			n: 9,
			expected: func(tr *Tournament, t *testing.T) {
				if tr.Size != 16 || tr.Rounds != 4 {
					t.Fatalf("expected size 16 with 4 rounds but got size %d with %d rounds", tr.Size, tr.Rounds)
				}
				if len(tr.RoundIDs[0]) != 8 {
					t.Fatalf("expected 8 round-1 items but got %d", len(tr.RoundIDs[0]))
				}
				if len(tr.RoundIDs[1]) != 4 {
					t.Fatalf("expected 4 round-2 matches but got %d", len(tr.RoundIDs[1]))
				}
				validateByes(tr, t, 7)
				validateFeeds(tr, t)
			},
		},
		{
			n: 12,
			expected: func(tr *Tournament, t *testing.T) {
				validateByes(tr, t, 4)
				validateFeeds(tr, t)
			},
		},
		{
			n: 16,
			expected: func(tr *Tournament, t *testing.T) {
				if tr.Size != 16 || tr.Rounds != 4 {
					t.Fatalf("expected size 16 with 4 rounds but got size %d with %d rounds", tr.Size, tr.Rounds)
				}
				validateByes(tr, t, 0)
				validateFeeds(tr, t)
			},
		},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Generate bracket from %d entrants", tc.n), func(t *testing.T) {
			tr := Generate(tc.n, 2)
			if len(tr.RoundIDs[0]) != tr.Size/2 {
				t.Fatalf("round 1 should hold %d items but holds %d", tr.Size/2, len(tr.RoundIDs[0]))
			}
			tc.expected(tr, t)
		})
	}
}

func TestGenerateEntrantLabels(t *testing.T) {
	tr := Generate(10, 3)

	labels := make([]string, 0, len(tr.Entrants))
	for _, e := range tr.Entrants {
		labels = append(labels, string(e))
	}
	sort.Strings(labels)

	expected := []string{"Team 1", "Team 10", "Team 2", "Team 3", "Team 4", "Team 5", "Team 6", "Team 7", "Team 8", "Team 9"}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("entrant labels damaged by the shuffle, got %v", labels)
		}
	}
}

func TestGenerateNoByesBeyondRoundOne(t *testing.T) {
	for n := 2; n <= 16; n++ {
		tr := Generate(n, 2)
		for r := 1; r < len(tr.RoundIDs); r++ {
			for _, id := range tr.RoundIDs[r] {
				if tr.Matches[id].Bye {
					t.Fatalf("%d entrants: %s is a bye outside round 1", n, id)
				}
			}
		}
	}
}

func TestGenerateSingleEntrant(t *testing.T) {
	tr := Generate(1, 2)

	if !tr.Finished {
		t.Fatal("a single entrant should finish immediately")
	}
	if tr.Champion != Entrant("Team 1") {
		t.Fatalf("expected Team 1 as champion but got %s", tr.Champion)
	}
	if _, ok := tr.FinalID(); ok {
		t.Fatal("a bracket of one has no final")
	}
}

func TestFinalID(t *testing.T) {
	tr := Generate(9, 2)
	id, ok := tr.FinalID()
	if !ok {
		t.Fatal("expected a designated final")
	}
	if id != NewMatchID(4, 1) {
		t.Fatalf("expected final R4M1 but got %s", id)
	}
}
