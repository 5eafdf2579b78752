package report

import (
	"fmt"
	"strings"

	"github.com/rallyhq/matchpoint/bracket"
)

// Section is one record handed to a Sink: either a text block or a table
// of rows, never both.
type Section struct {
	Title string
	Text  string
	Rows  [][]string
}

// Sink turns an ordered list of sections into whatever document format it
// owns. Pagination, fonts and file layout are its problem, the reporter
// supplies content only.
type Sink interface {
	Render(sections []Section) error
}

// Build walks the bracket round by round, in construction order, and
// produces the report sections: the shuffled entrant list, one table per
// round, and the champion once the tournament is finished. Output is
// stable across repeated calls on the same state.
func Build(t *bracket.Tournament) []Section {
	sections := []Section{entrantSection(t)}

	for r, ids := range t.RoundIDs {
		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, matchRow(t, id))
		}
		sections = append(sections, Section{
			Title: roundTitle(r+1, t.Rounds),
			Rows:  rows,
		})
	}

	if t.Finished {
		sections = append(sections, Section{
			Title: "Champion",
			Text:  string(t.Champion),
		})
	}
	return sections
}

func entrantSection(t *bracket.Tournament) Section {
	labels := make([]string, len(t.Entrants))
	for i, e := range t.Entrants {
		labels[i] = string(e)
	}
	return Section{Title: "Entrants", Text: strings.Join(labels, ", ")}
}

func matchRow(t *bracket.Tournament, id bracket.MatchID) []string {
	m, ok := t.Matches[id]
	if !ok || m == nil {
		// broken graph, keep reporting the rest of the bracket
		return []string{string(id), "match details unavailable"}
	}
	if m.Bye {
		return []string{string(id), fmt.Sprintf("%s gets a BYE", m.Slots[0].Entrant)}
	}
	line := fmt.Sprintf("%s vs %s", slotLabel(m.Slots[0]), slotLabel(m.Slots[1]))
	if m.Winner != "" {
		line = fmt.Sprintf("%s — Winner: %s", line, m.Winner)
	}
	return []string{string(id), line}
}

func slotLabel(s bracket.Slot) string {
	switch s.Kind {
	case bracket.SlotKnown:
		return string(s.Entrant)
	case bracket.SlotBye:
		return "BYE"
	default:
		return "TBD"
	}
}

func roundTitle(round, total int) string {
	switch {
	case round == total:
		return "Final"
	case round == total-1:
		return "Semi-Finals"
	default:
		return fmt.Sprintf("Round %d", round)
	}
}
