// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for motif matches.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	SequenceID string `json:"sequence_id"`
	Kind       string `json:"kind"` // "DFA" | "NFA" | "Epsilon-NFA" | "PDA"
	Pattern    string `json:"pattern,omitempty"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Length     int    `json:"length"`
	Site       string `json:"site,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}
