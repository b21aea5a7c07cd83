// internal/sim/model_test.go
package sim

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"motifdfa-core/automaton"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T, kind automaton.Kind, pattern string) Model {
	t.Helper()
	eng, err := automaton.New(kind, pattern)
	if err != nil {
		t.Fatal(err)
	}
	return New(eng, rand.New(rand.NewSource(1)))
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func TestFeedBasesCountsMatches(t *testing.T) {
	m := newModel(t, automaton.KindDFA, "ATG")
	for _, k := range []string{"a", "t", "g"} {
		m = press(t, m, keyRunes(k))
	}
	if m.Matches() != 1 {
		t.Fatalf("matches = %d", m.Matches())
	}
	if !strings.Contains(m.View(), "match!") {
		t.Error("view should flash the last match")
	}
}

func TestResetClearsSession(t *testing.T) {
	m := newModel(t, automaton.KindDFA, "AT")
	m = press(t, m, keyRunes("a"))
	m = press(t, m, keyRunes("t"))
	m = press(t, m, keyRunes("r"))
	if m.Matches() != 0 {
		t.Fatalf("matches after reset = %d", m.Matches())
	}
	if strings.Contains(m.View(), "input  A") {
		t.Error("input line should be empty after reset")
	}
}

func TestQuitKey(t *testing.T) {
	m := newModel(t, automaton.KindDFA, "AT")
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestTypedSequenceFeedsOnEnter(t *testing.T) {
	m := newModel(t, automaton.KindNFA, "ATG|TGA")
	m = press(t, m, keyRunes("i"))
	m = press(t, m, keyRunes("ATGA"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Matches() != 2 {
		t.Fatalf("matches = %d", m.Matches())
	}
	if m.typing {
		t.Error("enter should leave the prompt")
	}
}

func TestEscCancelsPrompt(t *testing.T) {
	m := newModel(t, automaton.KindDFA, "AT")
	m = press(t, m, keyRunes("i"))
	m = press(t, m, keyRunes("AT"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Matches() != 0 || m.typing {
		t.Fatalf("esc should discard typed input, matches = %d", m.Matches())
	}
}

func TestViewShowsPDAStack(t *testing.T) {
	m := newModel(t, automaton.KindPDA, "")
	for _, k := range []string{"a", "t", "g", "c"} {
		m = press(t, m, keyRunes(k))
	}
	v := m.View()
	if !strings.Contains(v, "stack") || !strings.Contains(v, "ATGC") {
		t.Fatalf("view = %q", v)
	}
}

func TestRandomBaseKey(t *testing.T) {
	m := newModel(t, automaton.KindDFA, "ATG")
	m = press(t, m, keyRunes("x"))
	if len(m.input) != 1 {
		t.Fatalf("input = %q", m.input)
	}
}
