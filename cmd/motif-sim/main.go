// cmd/motif-sim/main.go
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motifdfa-core/automaton"
	"motifdfa/internal/cli"
	"motifdfa/internal/sim"
	"motifdfa/internal/version"
)

func main() {
	fs := flag.NewFlagSet("motif-sim", flag.ContinueOnError)
	typeName := fs.String("type", "dfa", "engine type: dfa | nfa | enfa | pda")
	pattern := fs.String("pattern", "", "pattern text")
	minPal := fs.Int("min-palindrome", automaton.DefaultMinPalindrome, "PDA minimum hairpin span")
	showVersion := fs.Bool("version", false, "print version and exit")
	list := fs.Bool("list", false, "list available engine kinds and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if *showVersion {
		fmt.Printf("motif-sim version %s\n", version.Version)
		return
	}
	if *list {
		for _, k := range automaton.AvailableKinds() {
			fmt.Printf("%-12s %s\n", k.Kind, k.Label)
		}
		return
	}

	kind, err := cli.ParseKind(*typeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	eng, err := automaton.NewWithConfig(kind, *pattern, automaton.Config{MinPalindrome: *minPal})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if _, err := tea.NewProgram(sim.New(eng, rng)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
