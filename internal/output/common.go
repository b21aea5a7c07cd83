// internal/output/common.go
package output

import (
	"sort"

	"motifdfa-core/automaton"
	"motifdfa/pkg/api"
)

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tkind\tpattern\tstart\tend\tlength\tsite"

// ToAPIMatch converts one engine match to the stable wire schema (v1),
// extracting the matched site from the scanned sequence.
func ToAPIMatch(seqID string, kind automaton.Kind, pattern string, m automaton.Match, seq []byte, source string) api.MatchV1 {
	site := ""
	if m.Start >= 0 && m.End < len(seq) && m.Start <= m.End {
		site = string(seq[m.Start : m.End+1])
	}
	return api.MatchV1{
		SequenceID: seqID,
		Kind:       string(kind),
		Pattern:    pattern,
		Start:      m.Start,
		End:        m.End,
		Length:     m.End - m.Start + 1,
		Site:       site,
		SourceFile: source,
	}
}

// SortMatches orders rows deterministically (SequenceID, Start, End, Kind).
func SortMatches(list []api.MatchV1) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.SequenceID != b.SequenceID {
			return a.SequenceID < b.SequenceID
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Kind < b.Kind
	})
}
