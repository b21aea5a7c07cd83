// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"motifdfa/pkg/api"
)

// WriteTextRow prints one tab-separated line per match.
func WriteTextRow(w io.Writer, m api.MatchV1) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
		m.SequenceID, m.Kind, m.Pattern, m.Start, m.End, m.Length, m.Site)
	return err
}

// WriteText prints an optional header followed by all rows.
func WriteText(w io.Writer, list []api.MatchV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, m := range list {
		if err := WriteTextRow(w, m); err != nil {
			return err
		}
	}
	return nil
}
