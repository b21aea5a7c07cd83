// core/automaton/dfa.go
package automaton

import (
	"fmt"
	"strings"

	"motifdfa-core/dna"
)

// DFA is the exact-match engine: a linear chain Q0 → Q1 → ... → Q(n-1) → Q0
// over one literal motif. Q0 is both initial and accepting, so a completed
// match immediately re-arms the chain for overlapping occurrences.
type DFA struct {
	pattern string
	trans   map[TransitionKey]int
	cur     int
}

// NewDFA builds the chain for pattern (uppercased). An empty pattern
// self-loops at Q0 and never matches.
func NewDFA(pattern string) *DFA {
	d := &DFA{
		pattern: strings.ToUpper(pattern),
		trans:   make(map[TransitionKey]int),
	}
	d.buildChain()
	return d
}

func (d *DFA) buildChain() {
	n := len(d.pattern)
	if n == 0 {
		for _, sym := range dna.Bases {
			d.trans[TransitionKey{From: State{K: 0}, Symbol: sym}] = 0
		}
		return
	}
	for i := 0; i < n; i++ {
		want := d.pattern[i]
		for _, sym := range dna.Bases {
			key := TransitionKey{From: State{K: i}, Symbol: sym}
			switch {
			case sym == want && i == n-1:
				d.trans[key] = 0 // accept and restart
			case sym == want:
				d.trans[key] = i + 1
			case sym == d.pattern[0] && i != 0:
				d.trans[key] = 1 // symbol could begin a fresh occurrence
			default:
				d.trans[key] = 0
			}
		}
	}
}

func (d *DFA) Kind() Kind      { return KindDFA }
func (d *DFA) Pattern() string { return d.pattern }

func (d *DFA) Reset() { d.cur = 0 }

// Step consumes one symbol. Out-of-alphabet bytes leave the state unchanged
// and never match.
func (d *DFA) Step(symbol byte) StepResult {
	sym := upper(symbol)
	old := d.cur
	matched := false

	if dna.IsBase(sym) {
		next := d.trans[TransitionKey{From: State{K: d.cur}, Symbol: sym}]
		n := len(d.pattern)
		matched = n > 0 && d.cur == n-1 && next == 0 && sym == d.pattern[n-1]
		d.cur = next
	}

	desc := fmt.Sprintf("Read %q: Q%d → Q%d", sym, old, d.cur)
	switch {
	case matched:
		desc += " [PATTERN MATCHED!]"
	case d.cur > old:
		desc += fmt.Sprintf(" (matched %d/%d)", d.cur, len(d.pattern))
	case d.cur < old:
		desc += " (reset/backtrack to start)"
	}
	return StepResult{States: []State{{K: d.cur}}, Matched: matched, Description: desc}
}

// FindAllMatches drives the chain across seq and records [i-n+1, i] whenever
// the wrap edge fires at position i. It resets before and after scanning, so
// any in-progress simulation state is destroyed.
func (d *DFA) FindAllMatches(seq []byte) []Match {
	var out []Match
	d.Reset()
	n := len(d.pattern)
	for i, b := range seq {
		if r := d.Step(b); r.Matched {
			out = append(out, Match{Start: i - n + 1, End: i})
		}
	}
	d.Reset()
	return out
}

func (d *DFA) StateDescription(active []State) string {
	if len(active) == 0 {
		return "No active states"
	}
	s := active[0]
	if s.K == 0 {
		return "Start state: looking for pattern start (also accept)"
	}
	return fmt.Sprintf("Partial match: %q (need %q)", d.pattern[:s.K], d.pattern[s.K:])
}

func (d *DFA) States() []State {
	n := len(d.pattern)
	if n == 0 {
		return []State{{K: 0}}
	}
	out := make([]State, n)
	for i := range out {
		out[i] = State{K: i}
	}
	return out
}

func (d *DFA) InitialStates() []State { return []State{{K: 0}} }
func (d *DFA) AcceptStates() []State  { return []State{{K: 0}} }
func (d *DFA) CurrentStates() []State { return []State{{K: d.cur}} }
func (d *DFA) SymbolSet() []byte      { return alphabet() }

func (d *DFA) StateLabel(s State) string { return chainLabel(s) }

// Transitions exports the relation in nondeterministic form for rendering.
func (d *DFA) Transitions() map[TransitionKey][]State {
	out := make(map[TransitionKey][]State, len(d.trans))
	for k, v := range d.trans {
		out[k] = []State{{K: v}}
	}
	return out
}

// ImportantRestartEdges marks the final wrap edge so renderers keep it even
// when generic return-to-Q0 edges are filtered out.
func (d *DFA) ImportantRestartEdges() []TransitionKey {
	n := len(d.pattern)
	if n == 0 {
		return nil
	}
	return []TransitionKey{{From: State{K: n - 1}, Symbol: d.pattern[n-1]}}
}
