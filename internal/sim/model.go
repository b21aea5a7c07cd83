// Package sim is the interactive step-wise simulator: it feeds typed bases
// to an engine one symbol at a time and renders the active configuration,
// the transition log, and (for the PDA) the illustrative stack.
//
// The model is single-threaded inside the bubbletea event loop; engines are
// not safe for concurrent use and are only touched from Update.
package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"motifdfa-core/automaton"
	"motifdfa-core/dna"
)

const logDepth = 12

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	matchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("120"))
	stackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	logBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model drives one engine interactively.
type Model struct {
	eng     automaton.Automaton
	rng     *rand.Rand
	prompt  textinput.Model
	typing  bool
	input   []byte
	log     []string
	matches int
	lastHit bool
}

// New builds a simulator around eng. rng feeds the random-base key and may
// be seeded for reproducible sessions.
func New(eng automaton.Automaton, rng *rand.Rand) Model {
	eng.Reset()
	ti := textinput.New()
	ti.Placeholder = "sequence, e.g. ATGCATGC"
	ti.CharLimit = 4096
	return Model{eng: eng, rng: rng, prompt: ti}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key input: a/t/g/c feed the engine, x feeds a random base,
// i opens a whole-sequence prompt, r resets, q quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter":
			for _, b := range []byte(m.prompt.Value()) {
				m = m.feed(b)
			}
			m.typing = false
			m.prompt.SetValue("")
			m.prompt.Blur()
			return m, nil
		case "esc":
			m.typing = false
			m.prompt.SetValue("")
			m.prompt.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r":
		m.eng.Reset()
		m.input = nil
		m.log = nil
		m.matches = 0
		m.lastHit = false
		return m, nil
	case "i":
		m.typing = true
		return m, m.prompt.Focus()
	case "x":
		return m.feed(dna.Bases[m.rng.Intn(len(dna.Bases))]), nil
	case "a", "t", "g", "c", "A", "T", "G", "C":
		return m.feed(key.String()[0]), nil
	}
	return m, nil
}

func (m Model) feed(b byte) Model {
	r := m.eng.Step(b)
	m.input = append(m.input, b)
	m.log = append(m.log, r.Description)
	if len(m.log) > logDepth {
		m.log = m.log[len(m.log)-logDepth:]
	}
	m.lastHit = r.Matched
	if r.Matched {
		m.matches++
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s simulator", m.eng.Kind())))
	if p := m.eng.Pattern(); p != "" {
		b.WriteString(labelStyle.Render("  pattern "))
		b.WriteString(p)
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("input  "))
	b.WriteString(string(m.input))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("active "))
	b.WriteString(stateStyle.Render(m.activeLine()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("status "))
	b.WriteString(m.eng.StateDescription(m.eng.CurrentStates()))
	b.WriteString("\n")

	if st, ok := m.eng.(automaton.Stacker); ok {
		b.WriteString(labelStyle.Render("stack  "))
		b.WriteString(stackStyle.Render(fmt.Sprintf("[%s] mode=%s", st.Stack(), st.ControlState())))
		b.WriteString("\n")
	}

	hits := fmt.Sprintf("matches %d", m.matches)
	if m.lastHit {
		hits = matchStyle.Render(hits + "  ★ match!")
	}
	b.WriteString(labelStyle.Render("hits   "))
	b.WriteString(hits)
	b.WriteString("\n")

	if m.typing {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("feed   "))
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter to feed · esc to cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		b.WriteString(logBorder.Render(strings.Join(m.log, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a/t/g/c feed a base · x random · i type a sequence · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) activeLine() string {
	states := m.eng.CurrentStates()
	if len(states) == 0 {
		return "(no formal states)"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = m.eng.StateLabel(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Matches reports how many accept events fired this session.
func (m Model) Matches() int { return m.matches }
