// core/automaton/automaton.go
package automaton

import (
	"fmt"
	"sort"

	"motifdfa-core/dna"
)

// Kind tags the four recognizer families.
type Kind string

const (
	KindDFA  Kind = "DFA"
	KindNFA  Kind = "NFA"
	KindENFA Kind = "Epsilon-NFA"
	KindPDA  Kind = "PDA"
)

// Phase partitions the state space of an engine. Finite automata use
// PhaseChain only; the spacer engine uses head/spacer/tail.
type Phase uint8

const (
	PhaseChain Phase = iota
	PhaseHead
	PhaseSpacer
	PhaseTail
)

func (p Phase) String() string {
	switch p {
	case PhaseHead:
		return "head"
	case PhaseSpacer:
		return "spacer"
	case PhaseTail:
		return "tail"
	default:
		return "chain"
	}
}

// State is one automaton state as a comparable value: structural equality
// and a stable (Phase, K) order so active sets print deterministically.
type State struct {
	Phase Phase
	K     int
}

// Less orders states for display.
func (s State) Less(o State) bool {
	if s.Phase != o.Phase {
		return s.Phase < o.Phase
	}
	return s.K < o.K
}

// Epsilon is the reserved symbol for spontaneous transitions in exported
// transition relations.
const Epsilon byte = 0

// TransitionKey addresses one row of the transition relation.
type TransitionKey struct {
	From   State
	Symbol byte // Epsilon for spontaneous edges
}

// Match is a closed, 0-based interval [Start, End] into a scanned sequence.
type Match struct {
	Start int
	End   int
}

// StepResult reports the outcome of consuming one symbol.
type StepResult struct {
	States      []State // active configuration after the step, sorted
	Matched     bool
	Description string
}

// Automaton is the uniform simulation contract shared by all four engines.
// Step and Reset mutate the receiver and must be called from a single
// goroutine; see the per-engine docs for how FindAllMatches interacts with
// in-progress simulations.
type Automaton interface {
	Kind() Kind
	Pattern() string

	Reset()
	Step(symbol byte) StepResult
	FindAllMatches(seq []byte) []Match
	StateDescription(active []State) string

	// Visualization accessors consumed by external renderers.
	States() []State
	InitialStates() []State
	AcceptStates() []State
	CurrentStates() []State
	SymbolSet() []byte
	StateLabel(s State) string
	Transitions() map[TransitionKey][]State
	ImportantRestartEdges() []TransitionKey
}

// Stacker is the extra surface of the stack-flavored engine.
type Stacker interface {
	Stack() []byte
	ControlState() string
}

func sortStates(ss []State) {
	sort.Slice(ss, func(i, j int) bool { return ss[i].Less(ss[j]) })
}

func setToSorted(set map[State]struct{}) []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sortStates(out)
	return out
}

func sortMatches(ms []Match) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Start != ms[j].Start {
			return ms[i].Start < ms[j].Start
		}
		return ms[i].End < ms[j].End
	})
}

// chainLabel renders finite-automaton states as Q0, Q1, ...
func chainLabel(s State) string { return fmt.Sprintf("Q%d", s.K) }

func formatChainSet(ss []State) string {
	out := "{"
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += chainLabel(s)
	}
	return out + "}"
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func toUpperSeq(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[i] = upper(b)
	}
	return out
}

func alphabet() []byte { return dna.Alphabet() }

func isAlphabet(b byte) bool { return dna.IsBase(b) }

func sortTransitionKeys(ks []TransitionKey) {
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].From != ks[j].From {
			return ks[i].From.Less(ks[j].From)
		}
		return ks[i].Symbol < ks[j].Symbol
	})
}
