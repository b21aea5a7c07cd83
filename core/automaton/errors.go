// core/automaton/errors.go
package automaton

import "errors"

// ErrInvalidPattern marks construction-time pattern parse failures.
// Wrap with %w and test with errors.Is.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrUnsupportedKind is returned by New for a kind outside the four engines.
var ErrUnsupportedKind = errors.New("unsupported automaton kind")

// Closed set of engine variants behind the shared contract.
var (
	_ Automaton = (*DFA)(nil)
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*ENFA)(nil)
	_ Automaton = (*PDA)(nil)
	_ Stacker   = (*PDA)(nil)
)
