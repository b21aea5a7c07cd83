// internal/writers/match.go
package writers

import (
	"fmt"
	"io"

	"motifdfa/internal/output"
	"motifdfa/pkg/api"
)

// StartMatchWriter spins up a writer goroutine for api.MatchV1 rows.
// text/jsonl stream row by row unless sorting is requested; json always
// buffers (it emits one array). The error channel yields exactly one value
// after the input channel is closed and drained.
func StartMatchWriter(out io.Writer, format string, sortOut, header bool, bufSize int) (chan<- api.MatchV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.MatchV1, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []api.MatchV1
			for m := range in {
				buf = append(buf, m)
			}
			if sortOut {
				output.SortMatches(buf)
			}
			err = output.WriteJSON(out, buf)

		case "jsonl":
			if sortOut {
				var buf []api.MatchV1
				for m := range in {
					buf = append(buf, m)
				}
				output.SortMatches(buf)
				for _, m := range buf {
					if err = output.WriteJSONLRow(out, m); err != nil {
						break
					}
				}
			} else {
				for m := range in {
					if err == nil {
						err = output.WriteJSONLRow(out, m)
					}
				}
			}

		case "text":
			if sortOut {
				var buf []api.MatchV1
				for m := range in {
					buf = append(buf, m)
				}
				output.SortMatches(buf)
				err = output.WriteText(out, buf, header)
			} else {
				wroteHeader := false
				for m := range in {
					if err != nil {
						continue
					}
					if header && !wroteHeader {
						_, err = fmt.Fprintln(out, output.TSVHeader)
						wroteHeader = true
						if err != nil {
							continue
						}
					}
					err = output.WriteTextRow(out, m)
				}
				if err == nil && header && !wroteHeader {
					_, err = fmt.Fprintln(out, output.TSVHeader)
				}
			}

		default:
			for range in {
			}
			err = fmt.Errorf("unknown output format %q", format)
		}

		// Drain so producers never block after a write failure.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
