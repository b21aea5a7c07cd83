// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"motifdfa-core/automaton"
	"motifdfa-core/dna"
	"motifdfa-core/fasta"
	"motifdfa/internal/cli"
	"motifdfa/internal/output"
	"motifdfa/internal/writers"
)

const toolName = "motifdfa"

// RunContext is the batch scanner entry point. Exit codes: 0 ok, 2 usage,
// 3 I/O, 130 canceled, and Options.NoMatchExitCode when nothing matched.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(toolName)
	cli.Usage(fs, toolName)
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		cli.PrintVersion(outw, toolName)
		return 0
	}

	kind, err := cli.ParseKind(opts.Type)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	eng, err := automaton.NewWithConfig(kind, opts.Pattern, automaton.Config{MinPalindrome: opts.MinPalindrome})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr := writers.StartMatchWriter(outw, opts.Output, opts.Sort, opts.Header, 64)

	total := 0
	var scanErr error
	for _, path := range opts.SeqFiles {
		source := path
		if source == "-" {
			source = ""
		}
		scanErr = fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			if !opts.Quiet {
				if n := countNonBases(rec.Seq); n > 0 {
					fmt.Fprintf(stderr, "warning: %s: %d non-ACGT symbols ignored by the engines\n", rec.ID, n)
				}
			}
			for _, m := range eng.FindAllMatches(rec.Seq) {
				row := output.ToAPIMatch(rec.ID, kind, eng.Pattern(), m, rec.Seq, source)
				select {
				case in <- row:
					total++
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
		if scanErr != nil {
			break
		}
	}

	close(in)
	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if scanErr != nil {
		if errors.Is(scanErr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, scanErr)
		return 3
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run uses a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func countNonBases(seq []byte) int {
	n := 0
	for _, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if !dna.IsBase(b) {
			n++
		}
	}
	return n
}
