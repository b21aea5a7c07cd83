// internal/output/json.go
package output

import (
	"io"

	"motifdfa/internal/jsonutil"
	"motifdfa/pkg/api"
)

// WriteJSON writes a single pretty-indented JSON array of v1 matches.
func WriteJSON(w io.Writer, list []api.MatchV1) error {
	if list == nil {
		list = []api.MatchV1{}
	}
	return jsonutil.EncodePretty(w, list)
}

// WriteJSONLRow writes one match as a compact JSON line.
func WriteJSONLRow(w io.Writer, m api.MatchV1) error {
	return jsonutil.EncodeLine(w, m)
}
