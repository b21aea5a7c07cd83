// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"motifdfa-core/automaton"
	"motifdfa/internal/cliutil"
	"motifdfa/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Engine
	Type          string
	Pattern       string
	MinPalindrome int

	// Input
	SeqFiles []string

	// Output
	Output          string // text | json | jsonl
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// ParseKind maps a CLI type name onto an engine kind.
func ParseKind(name string) (automaton.Kind, error) {
	switch strings.ToLower(name) {
	case "dfa":
		return automaton.KindDFA, nil
	case "nfa":
		return automaton.KindNFA, nil
	case "enfa", "e-nfa", "epsilon-nfa":
		return automaton.KindENFA, nil
	case "pda":
		return automaton.KindPDA, nil
	default:
		return "", fmt.Errorf("%w: %q (expected dfa | nfa | enfa | pda)", automaton.ErrUnsupportedKind, name)
	}
}

// sliceValue appends each value to a *[]string (for --sequences/-s).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – DNA motif automata scanner\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s --type dfa --pattern ATG --sequences genome.fa\n", name)
		fmt.Fprintf(out, "  %s --type enfa --pattern 'TATA{1,10}TATA' genome.fa.gz\n\n", name)

		fmt.Fprintln(out, "Engine:")
		fmt.Fprintln(out, "  -t, --type string           Engine: dfa | nfa | enfa | pda [*]")
		fmt.Fprintln(out, "  -p, --pattern string        Pattern (literal, A|B|C alternatives, or HEAD{m,n}TAIL)")
		fmt.Fprintln(out, "      --min-palindrome int    PDA minimum hairpin span [4]")

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output string         Output: text | json | jsonl [text]")
		fmt.Fprintln(out, "      --sort                  Sort outputs deterministically [false]")
		fmt.Fprintln(out, "      --no-header             Suppress header line [false]")
		fmt.Fprintln(out, "      --no-match-exit-code int  Exit code when no matches found [1]")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -q, --quiet                 Suppress non-essential warnings [false]")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Type, "type", "", "engine type: dfa | nfa | enfa | pda [*]")
	fs.StringVar(&opt.Type, "t", "", "alias of --type")
	fs.StringVar(&opt.Pattern, "pattern", "", "pattern text")
	fs.StringVar(&opt.Pattern, "p", "", "alias of --pattern")
	fs.IntVar(&opt.MinPalindrome, "min-palindrome", automaton.DefaultMinPalindrome, "PDA minimum hairpin span [4]")

	seqVal := &sliceValue{dst: &opt.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	fs.StringVar(&opt.Output, "output", "text", "output: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no matches found [1]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Type == "" {
		return errors.New("--type is required (dfa | nfa | enfa | pda)")
	}
	kind, err := ParseKind(o.Type)
	if err != nil {
		return err
	}
	if kind != automaton.KindPDA && o.Pattern == "" {
		return fmt.Errorf("--pattern is required for --type %s", o.Type)
	}
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.MinPalindrome < 0 {
		return errors.New("--min-palindrome must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s version %s\n", name, version.Version)
}
