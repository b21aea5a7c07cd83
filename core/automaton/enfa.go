// core/automaton/enfa.go
package automaton

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"motifdfa-core/dna"
)

// ENFA is the spacer engine: HEAD, a bounded-length run of arbitrary bases,
// then TAIL. States are (phase, progress) pairs.
//
// The incremental Step deliberately diverges from the exported formal
// transition relation: instead of a true epsilon closure it unconditionally
// re-seeds (head, 0) before and after every symbol so a fresh attempt can
// always begin. FindAllMatches is an independent batch scan and never
// touches the incremental state; the two can disagree on overlapping spacer
// lengths (the batch scan reports each feasible gap as its own interval).
type ENFA struct {
	head    string
	minGap  int
	maxGap  int
	tail    string
	current map[State]struct{}
	pattern string
}

// ParseSpacerPattern extracts (head, min, max, tail) from "HEAD{min,max}TAIL"
// or "HEAD{n}TAIL". Malformed braces, non-integer bounds, bases outside the
// alphabet, or min > max are rejected with ErrInvalidPattern.
func ParseSpacerPattern(pattern string) (head string, minGap, maxGap int, tail string, err error) {
	s := strings.ToUpper(pattern)
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return "", 0, 0, "", fmt.Errorf("%w: expected HEAD{m,n}TAIL, e.g. TATA{1,10}TATA", ErrInvalidPattern)
	}
	end := strings.IndexByte(s[open:], '}')
	if end < 0 {
		return "", 0, 0, "", fmt.Errorf("%w: missing '}' in %q", ErrInvalidPattern, pattern)
	}
	end += open
	head = s[:open]
	rng := s[open+1 : end]
	tail = s[end+1:]

	if i := strings.IndexByte(rng, ','); i >= 0 {
		minGap, err = strconv.Atoi(rng[:i])
		if err == nil {
			maxGap, err = strconv.Atoi(rng[i+1:])
		}
	} else {
		minGap, err = strconv.Atoi(rng)
		maxGap = minGap
	}
	if err != nil {
		return "", 0, 0, "", fmt.Errorf("%w: non-integer spacer bounds in %q", ErrInvalidPattern, pattern)
	}
	if minGap < 0 || maxGap < minGap {
		return "", 0, 0, "", fmt.Errorf("%w: invalid spacer range {%d,%d}", ErrInvalidPattern, minGap, maxGap)
	}
	for _, part := range []string{head, tail} {
		for i := 0; i < len(part); i++ {
			if !dna.IsBase(part[i]) {
				return "", 0, 0, "", fmt.Errorf("%w: invalid base %q in %q", ErrInvalidPattern, part[i], pattern)
			}
		}
	}
	return head, minGap, maxGap, tail, nil
}

// NewENFA parses the spacer pattern and seeds the initial configuration.
func NewENFA(pattern string) (*ENFA, error) {
	head, minGap, maxGap, tail, err := ParseSpacerPattern(pattern)
	if err != nil {
		return nil, err
	}
	e := &ENFA{
		head:    head,
		minGap:  minGap,
		maxGap:  maxGap,
		tail:    tail,
		pattern: strings.ToUpper(pattern),
	}
	e.Reset()
	return e, nil
}

func (e *ENFA) Kind() Kind      { return KindENFA }
func (e *ENFA) Pattern() string { return e.pattern }

// Head, Tail, and Gap expose the parsed tuple.
func (e *ENFA) Head() string    { return e.head }
func (e *ENFA) Tail() string    { return e.tail }
func (e *ENFA) Gap() (int, int) { return e.minGap, e.maxGap }

func (e *ENFA) Reset() {
	e.current = map[State]struct{}{{Phase: PhaseHead, K: 0}: {}}
}

// closure is the simplified, restart-biased closure: it only ever adds the
// ability to begin a fresh head attempt.
func (e *ENFA) closure(set map[State]struct{}) map[State]struct{} {
	out := make(map[State]struct{}, len(set)+1)
	for s := range set {
		out[s] = struct{}{}
	}
	out[State{Phase: PhaseHead, K: 0}] = struct{}{}
	return out
}

// Step consumes one symbol. Out-of-alphabet symbols are a no-op.
func (e *ENFA) Step(symbol byte) StepResult {
	sym := upper(symbol)

	if !isAlphabet(sym) {
		cur := setToSorted(e.current)
		desc := fmt.Sprintf("Read %q: %s → %s (ignored: not in alphabet)",
			sym, e.formatSet(cur), e.formatSet(cur))
		return StepResult{States: cur, Matched: false, Description: desc}
	}

	prev := e.closure(e.current)
	prevSorted := setToSorted(prev)

	next := make(map[State]struct{})
	for st := range prev {
		switch st.Phase {
		case PhaseHead:
			if st.K < len(e.head) && e.head[st.K] == sym {
				if st.K+1 == len(e.head) {
					next[State{Phase: PhaseSpacer, K: 0}] = struct{}{}
				} else {
					next[State{Phase: PhaseHead, K: st.K + 1}] = struct{}{}
				}
			}
		case PhaseSpacer:
			if st.K < e.maxGap {
				next[State{Phase: PhaseSpacer, K: st.K + 1}] = struct{}{}
			}
			if st.K >= e.minGap && len(e.tail) > 0 && e.tail[0] == sym {
				next[State{Phase: PhaseTail, K: 1}] = struct{}{}
			}
		case PhaseTail:
			if st.K < len(e.tail) && e.tail[st.K] == sym {
				next[State{Phase: PhaseTail, K: st.K + 1}] = struct{}{}
			}
		}
	}

	e.current = e.closure(next)
	states := setToSorted(e.current)
	matched := e.accepting(e.current)

	desc := fmt.Sprintf("Read %q: %s → %s", sym, e.formatSet(prevSorted), e.formatSet(states))
	if matched {
		desc += " [MATCH]"
	}
	return StepResult{States: states, Matched: matched, Description: desc}
}

func (e *ENFA) accepting(set map[State]struct{}) bool {
	_, ok := set[State{Phase: PhaseTail, K: len(e.tail)}]
	return ok
}

func (e *ENFA) formatSet(ss []State) string {
	out := "{"
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += e.StateLabel(s)
	}
	return out + "}"
}

// FindAllMatches scans every position where seq equals head, then checks the
// tail at every gap in [minGap, maxGap]. Each feasible gap yields its own
// interval, so one head occurrence may produce several overlapping matches.
// The incremental configuration is left untouched.
func (e *ENFA) FindAllMatches(seq []byte) []Match {
	s := toUpperSeq(seq)
	var out []Match
	n := len(s)
	lh := len(e.head)
	lt := len(e.tail)
	hb := []byte(e.head)
	tb := []byte(e.tail)

	for i := 0; i+lh <= n; i++ {
		if !bytes.Equal(s[i:i+lh], hb) {
			continue
		}
		for g := e.minGap; g <= e.maxGap; g++ {
			j := i + lh + g
			if j+lt <= n && bytes.Equal(s[j:j+lt], tb) {
				out = append(out, Match{Start: i, End: j + lt - 1})
			}
		}
	}
	return out
}

// StateDescription summarizes the furthest-along state in the set.
func (e *ENFA) StateDescription(active []State) string {
	if len(active) == 0 {
		return "No active states"
	}
	best := active[len(active)-1] // sorted: tail-most progress last
	switch {
	case best.Phase == PhaseTail && best.K == len(e.tail):
		return fmt.Sprintf("ACCEPT: %s + spacer[%d,%d] + %s", e.head, e.minGap, e.maxGap, e.tail)
	case best.Phase == PhaseHead:
		return fmt.Sprintf("Head: matched %d/%d, need %q", best.K, len(e.head), e.head[best.K:best.K+1])
	case best.Phase == PhaseSpacer:
		return fmt.Sprintf("Spacer length so far: %d (min %d)", best.K, e.minGap)
	default:
		return fmt.Sprintf("Tail: matched %d/%d, need %q", best.K, len(e.tail), e.tail[best.K:best.K+1])
	}
}

// States enumerates the full formal state space.
func (e *ENFA) States() []State {
	var out []State
	for k := 0; k <= len(e.head); k++ {
		out = append(out, State{Phase: PhaseHead, K: k})
	}
	for g := 0; g <= e.maxGap; g++ {
		out = append(out, State{Phase: PhaseSpacer, K: g})
	}
	for k := 0; k <= len(e.tail); k++ {
		out = append(out, State{Phase: PhaseTail, K: k})
	}
	return out
}

func (e *ENFA) InitialStates() []State { return []State{{Phase: PhaseHead, K: 0}} }
func (e *ENFA) AcceptStates() []State  { return []State{{Phase: PhaseTail, K: len(e.tail)}} }
func (e *ENFA) CurrentStates() []State { return setToSorted(e.current) }
func (e *ENFA) SymbolSet() []byte      { return alphabet() }

func (e *ENFA) StateLabel(s State) string { return fmt.Sprintf("%s:%d", s.Phase, s.K) }

// Transitions exports the formal relation, including the explicit epsilon
// edge from the end of the head into the spacer. Renderers consume this; the
// Step simulation does not.
func (e *ENFA) Transitions() map[TransitionKey][]State {
	trans := make(map[TransitionKey][]State)
	add := func(from State, sym byte, to State) {
		key := TransitionKey{From: from, Symbol: sym}
		trans[key] = append(trans[key], to)
	}
	for k := 0; k < len(e.head); k++ {
		add(State{Phase: PhaseHead, K: k}, e.head[k], State{Phase: PhaseHead, K: k + 1})
	}
	add(State{Phase: PhaseHead, K: len(e.head)}, Epsilon, State{Phase: PhaseSpacer, K: 0})
	for g := 0; g < e.maxGap; g++ {
		from := State{Phase: PhaseSpacer, K: g}
		for _, sym := range dna.Bases {
			add(from, sym, State{Phase: PhaseSpacer, K: g + 1})
		}
		if g >= e.minGap && len(e.tail) > 0 {
			add(from, e.tail[0], State{Phase: PhaseTail, K: 1})
		}
	}
	for k := 0; k < len(e.tail); k++ {
		add(State{Phase: PhaseTail, K: k}, e.tail[k], State{Phase: PhaseTail, K: k + 1})
	}
	for k := range trans {
		sortStates(trans[k])
	}
	return trans
}

func (e *ENFA) ImportantRestartEdges() []TransitionKey { return nil }
