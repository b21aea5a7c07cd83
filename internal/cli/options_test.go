// internal/cli/options_test.go
package cli

import (
	"errors"
	"testing"

	"motifdfa-core/automaton"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(NewFlagSet("test"), argv)
}

func TestParseMinimal(t *testing.T) {
	opts, err := parse(t, "--type", "dfa", "--pattern", "ATG", "--sequences", "x.fa")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Type != "dfa" || opts.Pattern != "ATG" {
		t.Fatalf("opts = %+v", opts)
	}
	if !opts.Header {
		t.Error("header should default on")
	}
	if opts.Output != "text" {
		t.Errorf("output default = %q", opts.Output)
	}
}

func TestParsePositionalsBecomeSequences(t *testing.T) {
	opts, err := parse(t, "--type", "pda", "a.fa", "b.fa")
	if err != nil {
		t.Fatal(err)
	}
	if len(opts.SeqFiles) != 2 {
		t.Fatalf("SeqFiles = %v", opts.SeqFiles)
	}
}

func TestParseRejects(t *testing.T) {
	cases := [][]string{
		{"--pattern", "ATG", "--sequences", "x.fa"},              // missing type
		{"--type", "tm", "--pattern", "A", "-s", "x.fa"},         // unknown type
		{"--type", "dfa", "--sequences", "x.fa"},                 // dfa needs pattern
		{"--type", "dfa", "--pattern", "ATG"},                    // no input
		{"--type", "dfa", "-p", "A", "-s", "x.fa", "-o", "xml"},  // bad output
		{"--type", "pda", "-s", "x.fa", "--min-palindrome", "-1"}, // bad min
	}
	for _, argv := range cases {
		if _, err := parse(t, argv...); err == nil {
			t.Errorf("argv %v: expected error", argv)
		}
	}
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]automaton.Kind{
		"dfa":         automaton.KindDFA,
		"NFA":         automaton.KindNFA,
		"enfa":        automaton.KindENFA,
		"epsilon-nfa": automaton.KindENFA,
		"pda":         automaton.KindPDA,
	} {
		got, err := ParseKind(name)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseKind("turing"); !errors.Is(err, automaton.ErrUnsupportedKind) {
		t.Error("expected ErrUnsupportedKind")
	}
}

// PDA does not require a pattern; the factory falls back to a placeholder.
func TestParsePDAWithoutPattern(t *testing.T) {
	opts, err := parse(t, "--type", "pda", "-s", "x.fa")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Pattern != "" {
		t.Fatalf("pattern = %q", opts.Pattern)
	}
}
