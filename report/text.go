package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// TextSink renders sections as a plain text document.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Render(sections []Section) error {
	for n, sec := range sections {
		if n > 0 {
			if _, err := fmt.Fprintln(s.w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(s.w, "%s\n", sec.Title); err != nil {
			return err
		}
		if len(sec.Rows) == 0 {
			if _, err := fmt.Fprintf(s.w, "%s\n", sec.Text); err != nil {
				return err
			}
			continue
		}
		table := tablewriter.NewWriter(s.w)
		table.SetHeader([]string{"Match", "Result"})
		table.SetAutoWrapText(false)
		table.AppendBulk(sec.Rows)
		table.Render()
	}
	return nil
}
