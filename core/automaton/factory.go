// core/automaton/factory.go
package automaton

import "fmt"

// Config carries construction knobs that are not part of the pattern text.
type Config struct {
	MinPalindrome int // PDA minimum match length (0 = default 4)
}

// KindInfo pairs a kind tag with its human label for menu population.
type KindInfo struct {
	Kind  Kind
	Label string
}

// AvailableKinds enumerates the supported engines in display order.
func AvailableKinds() []KindInfo {
	return []KindInfo{
		{KindDFA, "DFA – Exact literal matching"},
		{KindNFA, "NFA – Alternatives (ATG|TAA|TGA)"},
		{KindENFA, "ε-NFA – Spacer ranges (TATA{1,10}TATA)"},
		{KindPDA, "PDA – Complement palindromes (hairpins)"},
	}
}

// New constructs an engine for kind and pattern with default Config.
func New(kind Kind, pattern string) (Automaton, error) {
	return NewWithConfig(kind, pattern, Config{})
}

// NewWithConfig constructs an engine. Parser failures propagate unchanged;
// no partial engine is ever returned.
func NewWithConfig(kind Kind, pattern string, cfg Config) (Automaton, error) {
	switch kind {
	case KindDFA:
		return NewDFA(pattern), nil
	case KindNFA:
		return NewNFA(pattern), nil
	case KindENFA:
		e, err := NewENFA(pattern)
		if err != nil {
			return nil, err
		}
		return e, nil
	case KindPDA:
		if pattern == "" {
			pattern = "PALINDROME"
		}
		return NewPDA(pattern, cfg.MinPalindrome), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}
