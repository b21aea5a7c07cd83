// core/automaton/nfa.go
package automaton

import (
	"fmt"
	"strings"
)

// NFA is the alternatives engine: a trie of literal motifs rooted at Q0,
// where each alternative's last character returns to Q0 on a marked
// "final-return" edge. Q0 is start and accept, and is implicitly active on
// every step so a fresh attempt can begin on any symbol.
type NFA struct {
	alternatives []string
	nextID       int
	trans        map[TransitionKey]map[State]struct{}
	finalReturn  map[TransitionKey]struct{}
	current      map[State]struct{}
	pattern      string
}

// NewNFA parses '|'-separated literal alternatives. An empty overall pattern
// normalizes to a single empty alternative.
func NewNFA(pattern string) *NFA {
	up := strings.ToUpper(pattern)
	var alts []string
	for _, a := range strings.Split(up, "|") {
		if a != "" {
			alts = append(alts, a)
		}
	}
	if len(alts) == 0 {
		alts = []string{""}
	}
	n := &NFA{
		alternatives: alts,
		nextID:       1,
		trans:        make(map[TransitionKey]map[State]struct{}),
		finalReturn:  make(map[TransitionKey]struct{}),
		current:      make(map[State]struct{}),
		pattern:      up,
	}
	n.buildTrie()
	n.Reset()
	return n
}

func (n *NFA) addEdge(u State, sym byte, v State) {
	key := TransitionKey{From: u, Symbol: sym}
	if n.trans[key] == nil {
		n.trans[key] = make(map[State]struct{})
	}
	n.trans[key][v] = struct{}{}
}

// buildTrie shares intermediate states across alternatives by keying them on
// the literal prefix consumed so far.
func (n *NFA) buildTrie() {
	prefixState := map[string]State{"": {K: 0}}
	for _, alt := range n.alternatives {
		if alt == "" {
			continue
		}
		u := State{K: 0}
		for i := 0; i < len(alt); i++ {
			ch := alt[i]
			if i == len(alt)-1 {
				n.addEdge(u, ch, State{K: 0})
				n.finalReturn[TransitionKey{From: u, Symbol: ch}] = struct{}{}
				continue
			}
			prefix := alt[:i+1]
			v, ok := prefixState[prefix]
			if !ok {
				v = State{K: n.nextID}
				n.nextID++
				prefixState[prefix] = v
			}
			n.addEdge(u, ch, v)
			u = v
		}
	}
}

func (n *NFA) Kind() Kind      { return KindNFA }
func (n *NFA) Pattern() string { return n.pattern }

// Alternatives returns the parsed motif list.
func (n *NFA) Alternatives() []string { return append([]string(nil), n.alternatives...) }

func (n *NFA) Reset() {
	n.current = map[State]struct{}{{K: 0}: {}}
}

// Step fires transitions from every active state plus the always-available
// Q0. A match is flagged when a final-return edge fires, or when any edge
// lands on Q0 from a non-zero source. If nothing fires the set re-seeds to
// {Q0} rather than going empty. Out-of-alphabet symbols are a no-op.
func (n *NFA) Step(symbol byte) StepResult {
	sym := upper(symbol)
	prev := setToSorted(n.current)

	if !isAlphabet(sym) {
		desc := fmt.Sprintf("Read %q: %s → %s (ignored: not in alphabet)",
			sym, formatChainSet(prev), formatChainSet(prev))
		return StepResult{States: prev, Matched: false, Description: desc}
	}

	candidates := make(map[State]struct{}, len(n.current)+1)
	for s := range n.current {
		candidates[s] = struct{}{}
	}
	candidates[State{K: 0}] = struct{}{}

	next := make(map[State]struct{})
	matched := false
	for u := range candidates {
		key := TransitionKey{From: u, Symbol: sym}
		for v := range n.trans[key] {
			next[v] = struct{}{}
			if _, fin := n.finalReturn[key]; fin || (v.K == 0 && u.K != 0) {
				matched = true
			}
		}
	}
	if len(next) == 0 {
		next[State{K: 0}] = struct{}{}
	}
	n.current = next

	states := setToSorted(n.current)
	desc := fmt.Sprintf("Read %q: %s → %s", sym, formatChainSet(prev), formatChainSet(states))
	if matched {
		desc += " [MATCH]"
	}
	return StepResult{States: states, Matched: matched, Description: desc}
}

// FindAllMatches drives Step across seq. On a match ending at i it records
// the longest alternative whose literal form equals the suffix ending at i.
// Resets before and after scanning.
func (n *NFA) FindAllMatches(seq []byte) []Match {
	s := toUpperSeq(seq)
	var out []Match

	altLens := make(map[int]struct{})
	for _, a := range n.alternatives {
		if a != "" {
			altLens[len(a)] = struct{}{}
		}
	}

	n.Reset()
	for i := range s {
		r := n.Step(s[i])
		if !r.Matched {
			continue
		}
		best := 0
		for l := range altLens {
			if l <= best || i-l+1 < 0 {
				continue
			}
			if n.isAlternative(string(s[i-l+1 : i+1])) {
				best = l
			}
		}
		if best > 0 {
			out = append(out, Match{Start: i - best + 1, End: i})
		}
	}
	n.Reset()
	return out
}

func (n *NFA) isAlternative(lit string) bool {
	for _, a := range n.alternatives {
		if a == lit {
			return true
		}
	}
	return false
}

func (n *NFA) StateDescription(active []State) string {
	if len(active) == 0 {
		return "No active states"
	}
	for _, s := range active {
		if s.K == 0 {
			return "Ready (Q0 is accept; looking for start)"
		}
	}
	return fmt.Sprintf("Partial path at Q%d", active[0].K)
}

func (n *NFA) States() []State {
	out := make([]State, n.nextID)
	for i := range out {
		out[i] = State{K: i}
	}
	return out
}

func (n *NFA) InitialStates() []State { return []State{{K: 0}} }
func (n *NFA) AcceptStates() []State  { return []State{{K: 0}} }
func (n *NFA) CurrentStates() []State { return setToSorted(n.current) }
func (n *NFA) SymbolSet() []byte      { return alphabet() }

func (n *NFA) StateLabel(s State) string { return chainLabel(s) }

func (n *NFA) Transitions() map[TransitionKey][]State {
	out := make(map[TransitionKey][]State, len(n.trans))
	for k, set := range n.trans {
		out[k] = setToSorted(set)
	}
	return out
}

// ImportantRestartEdges exposes the final-return edges so renderers keep
// legitimate match edges visible when generic restart edges are filtered.
func (n *NFA) ImportantRestartEdges() []TransitionKey {
	out := make([]TransitionKey, 0, len(n.finalReturn))
	for k := range n.finalReturn {
		out = append(out, k)
	}
	sortTransitionKeys(out)
	return out
}
