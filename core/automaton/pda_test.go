// core/automaton/pda_test.go
package automaton

import (
	"reflect"
	"testing"
)

// AATT nests two A-T complement pairs: the full span is a hairpin.
func TestPDAFindsHairpin(t *testing.T) {
	p := NewPDA("", 0)
	got := p.FindAllMatches([]byte("AATT"))
	want := []Match{{0, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAllMatches = %v, want %v", got, want)
	}
}

// AAAA has no complement symmetry at all.
func TestPDANoSymmetryNoMatch(t *testing.T) {
	p := NewPDA("", 0)
	if got := p.FindAllMatches([]byte("AAAA")); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestPDAEmbeddedHairpin(t *testing.T) {
	p := NewPDA("", 0)
	got := p.FindAllMatches([]byte("GGGAATTGGG"))
	want := []Match{{3, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAllMatches = %v, want %v", got, want)
	}
}

// GC pairs count too; center expansion reports the maximal span only.
func TestPDAGCPairs(t *testing.T) {
	p := NewPDA("", 0)
	got := p.FindAllMatches([]byte("GAATTC")) // EcoRI site, a classic hairpin
	want := []Match{{0, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindAllMatches = %v, want %v", got, want)
	}
}

// Spans shorter than the configured minimum are dropped; floor is 2.
func TestPDAMinLength(t *testing.T) {
	p := NewPDA("", 6)
	if got := p.FindAllMatches([]byte("CCAATTCC")); len(got) != 0 {
		t.Fatalf("min-length 6 should drop the 4-span, got %v", got)
	}
	p = NewPDA("", 1) // floored to 2
	if p.MinLen() != 2 {
		t.Fatalf("MinLen = %d, want floor 2", p.MinLen())
	}
}

// Undefined symbols map to a sentinel that never pairs.
func TestPDAUndefinedSymbolNeverPairs(t *testing.T) {
	p := NewPDA("", 0)
	if got := p.FindAllMatches([]byte("AANNTT")); len(got) != 0 {
		t.Fatalf("N must not pair, got %v", got)
	}
}

// Step is a logging-only stack animation: never a match, FIFO cap at 8.
func TestPDAStepIsCosmetic(t *testing.T) {
	p := NewPDA("", 0)
	p.Reset()
	for i, b := range []byte("ATGCATGC") {
		r := p.Step(b)
		if r.Matched {
			t.Fatalf("step %d reported a match", i)
		}
	}
	if p.ControlState() != "push" {
		t.Fatalf("mode = %q before cap exceeded", p.ControlState())
	}
	if got := string(p.Stack()); got != "ATGCATGC" {
		t.Fatalf("stack = %q", got)
	}

	r := p.Step('A') // ninth symbol: shift the oldest out
	if r.Matched {
		t.Fatal("shift step reported a match")
	}
	if p.ControlState() != "pop" {
		t.Fatalf("mode = %q after cap exceeded", p.ControlState())
	}
	if got := string(p.Stack()); got != "TGCATGCA" {
		t.Fatalf("stack after shift = %q", got)
	}
}

// The illustrative stack has no bearing on detection.
func TestPDABatchIgnoresStepState(t *testing.T) {
	p := NewPDA("", 0)
	p.Step('G')
	p.Step('G')
	before := string(p.Stack())
	got := p.FindAllMatches([]byte("AATT"))
	if len(got) != 1 {
		t.Fatalf("FindAllMatches = %v", got)
	}
	if string(p.Stack()) != before {
		t.Fatal("batch search disturbed the stack")
	}
}

func TestPDAIllegalSymbolIsNoOp(t *testing.T) {
	p := NewPDA("", 0)
	p.Step('A')
	r := p.Step('N')
	if r.Matched {
		t.Error("illegal symbol must not match")
	}
	if got := string(p.Stack()); got != "A" {
		t.Fatalf("stack = %q after illegal symbol", got)
	}
}

// Results are deduplicated and ascending.
func TestPDAOrderedOutput(t *testing.T) {
	p := NewPDA("", 0)
	got := p.FindAllMatches([]byte("AATTAATT"))
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].Start ||
			(got[i].Start == got[i-1].Start && got[i].End <= got[i-1].End) {
			t.Fatalf("matches not strictly ascending: %v", got)
		}
	}
}
