// core/automaton/pda.go
package automaton

import (
	"fmt"
	"strings"

	"motifdfa-core/dna"
)

// stackCap is the FIFO cap on the illustrative stack; once exceeded the
// engine switches its label to "pop" and sheds the oldest symbol.
const stackCap = 8

// DefaultMinPalindrome is the default minimum span length for a reported
// complement palindrome.
const DefaultMinPalindrome = 4

// PDA is the complement-palindrome (hairpin) engine. Its Step is a
// logging-only stack animation; all real detection happens in
// FindAllMatches via center expansion over reverse-complement symmetry.
// The pattern argument is accepted for interface uniformity but ignored.
type PDA struct {
	pattern string
	minLen  int
	stack   []byte
	pos     int
	mode    string // "push" | "pop"
}

// NewPDA builds the engine. minLen below 2 is floored to 2; pass 0 for the
// default of 4.
func NewPDA(pattern string, minLen int) *PDA {
	if minLen == 0 {
		minLen = DefaultMinPalindrome
	}
	if minLen < 2 {
		minLen = 2
	}
	return &PDA{
		pattern: strings.ToUpper(pattern),
		minLen:  minLen,
		mode:    "push",
	}
}

func (p *PDA) Kind() Kind      { return KindPDA }
func (p *PDA) Pattern() string { return p.pattern }

// MinLen reports the configured minimum match length.
func (p *PDA) MinLen() int { return p.minLen }

func (p *PDA) Reset() {
	p.stack = p.stack[:0]
	p.pos = 0
	p.mode = "push"
}

// Stack returns a copy of the buffered symbols (oldest first).
func (p *PDA) Stack() []byte { return append([]byte(nil), p.stack...) }

// ControlState returns the coarse mode label.
func (p *PDA) ControlState() string { return p.mode }

// Step pushes the symbol onto the illustrative stack, shifting the oldest
// symbol out once the cap is exceeded. Matched is always false here; the
// stack is never consulted for detection. Out-of-alphabet symbols are a
// no-op.
func (p *PDA) Step(symbol byte) StepResult {
	sym := upper(symbol)
	before := string(p.stack)

	if !isAlphabet(sym) {
		desc := fmt.Sprintf("Read %q: ignored (not in alphabet), stack=%s", sym, before)
		return StepResult{Matched: false, Description: desc}
	}

	action := "PUSH"
	p.stack = append(p.stack, sym)
	p.pos++
	if len(p.stack) > stackCap {
		p.mode = "pop"
		p.stack = p.stack[1:]
		action = "SHIFT"
	} else {
		p.mode = "push"
	}
	desc := fmt.Sprintf("Read %q: mode=%s, %s, stack=%s→%s", sym, p.mode, action, before, string(p.stack))
	return StepResult{Matched: false, Description: desc}
}

// FindAllMatches expands around every adjacent index pair (i, i+1) while
// the complement of the left symbol equals the right symbol, keeping spans
// of at least minLen. Only even-length centers are scanned; odd-length
// complement palindromes would need a self-complementary center base and
// are not detected. Results are deduplicated and ascending.
func (p *PDA) FindAllMatches(seq []byte) []Match {
	s := toUpperSeq(seq)
	n := len(s)
	seen := make(map[Match]struct{})

	for i := 0; i < n-1; i++ {
		l, r := i, i+1
		for l >= 0 && r < n && dna.Comp(s[l]) != 0 && dna.Comp(s[l]) == s[r] {
			l--
			r++
		}
		lo, hi := l+1, r-1
		if hi-lo+1 >= p.minLen {
			seen[Match{Start: lo, End: hi}] = struct{}{}
		}
	}

	out := make([]Match, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sortMatches(out)
	return out
}

func (p *PDA) StateDescription(active []State) string {
	if p.mode == "pop" {
		return fmt.Sprintf("Stack sliding (size %d)", len(p.stack))
	}
	return fmt.Sprintf("Scanning (stack %d)", len(p.stack))
}

// The PDA has no formal state space; the accessors below exist only to
// satisfy the shared contract for renderers.
func (p *PDA) States() []State                        { return nil }
func (p *PDA) InitialStates() []State                 { return nil }
func (p *PDA) AcceptStates() []State                  { return nil }
func (p *PDA) CurrentStates() []State                 { return nil }
func (p *PDA) SymbolSet() []byte                      { return alphabet() }
func (p *PDA) StateLabel(s State) string              { return chainLabel(s) }
func (p *PDA) Transitions() map[TransitionKey][]State { return nil }
func (p *PDA) ImportantRestartEdges() []TransitionKey { return nil }
