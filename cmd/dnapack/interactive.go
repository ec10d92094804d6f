package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/dna-codec/nuc"
	"github.com/wippyai/dna-codec/packed"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	baseStyles = map[nuc.Nuc]lipgloss.Style{
		nuc.A: lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		nuc.C: lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		nuc.G: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		nuc.T: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FAFAFA")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateJump
)

type inspectorModel struct {
	err     error
	seq     *packed.Sequence
	seqText string
	inFile  string
	unpack  bool
	jump    textinput.Model
	status  string
	cursor  int
	width   int
	height  int
	state   modelState
}

type loadedMsg struct {
	err error
	seq *packed.Sequence
}

func newInspectorModel(seqText, inFile string, unpack bool) *inspectorModel {
	ti := textinput.New()
	ti.Prompt = "index: "
	ti.Width = 12
	return &inspectorModel{
		seqText: seqText,
		inFile:  inFile,
		unpack:  unpack,
		jump:    ti,
		width:   80,
		height:  24,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.loadSequence
}

func (m *inspectorModel) loadSequence() tea.Msg {
	seq, err := load(m.seqText, m.inFile, m.unpack)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{seq: seq}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateBrowse || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "left", "h":
			if m.state == stateBrowse && m.cursor > 0 {
				m.cursor--
			}

		case "right", "l":
			if m.state == stateBrowse && m.seq != nil && m.cursor < m.seq.Len()-1 {
				m.cursor++
			}

		case "up", "k":
			if m.state == stateBrowse {
				m.cursor = max(0, m.cursor-m.rowWidth())
			}

		case "down", "j":
			if m.state == stateBrowse && m.seq != nil {
				m.cursor = min(m.seq.Len()-1, m.cursor+m.rowWidth())
			}

		case "home":
			if m.state == stateBrowse {
				m.cursor = 0
			}

		case "end":
			if m.state == stateBrowse && m.seq != nil && m.seq.Len() > 0 {
				m.cursor = m.seq.Len() - 1
			}

		case "g":
			if m.state == stateBrowse && m.seq != nil {
				m.state = stateJump
				m.jump.SetValue("")
				m.jump.Focus()
				m.status = ""
			}

		case "enter":
			if m.state == stateJump {
				m.state = stateBrowse
				m.jump.Blur()
				m.jumpTo(m.jump.Value())
			}

		case "esc":
			if m.state == stateJump {
				m.state = stateBrowse
				m.jump.Blur()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.seq = msg.seq
	}

	if m.state == stateJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	return m, nil
}

// jumpTo moves the cursor to a parsed index, going through Sequence.At so
// out-of-range input is reported with the library's own error message.
func (m *inspectorModel) jumpTo(value string) {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("not an index: %q", value))
		return
	}
	base, err := m.seq.At(idx)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return
	}
	m.cursor = idx
	m.status = statusStyle.Render(fmt.Sprintf("jumped to %d (%s)", idx, base))
}

func (m *inspectorModel) rowWidth() int {
	w := m.width - 4
	if w < 4 {
		w = 4
	}
	return w
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.seq == nil {
		return "Loading sequence..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("DNA Inspector"))
	b.WriteString(fmt.Sprintf(" %d bases, %d bytes packed\n\n", m.seq.Len(), m.seq.PackedSize()))

	b.WriteString(m.renderSequence())
	b.WriteString("\n")

	if m.seq.Len() > 0 {
		base, err := m.seq.At(m.cursor)
		if err == nil {
			b.WriteString(fmt.Sprintf("position %d: %s (code %d)\n", m.cursor, base, base.Code()))
		}
	} else {
		b.WriteString("empty sequence\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("←/→ move • ↑/↓ row • g jump • q quit"))
	}

	return b.String()
}

// renderSequence shows the rows around the cursor, wrapped to the window
// width, with per-base coloring and the cursor highlighted.
func (m *inspectorModel) renderSequence() string {
	if m.seq.Len() == 0 {
		return ""
	}

	rw := m.rowWidth()
	visibleRows := m.height - 8
	if visibleRows < 1 {
		visibleRows = 1
	}

	cursorRow := m.cursor / rw
	firstRow := max(0, cursorRow-visibleRows/2)

	var b strings.Builder
	for row := firstRow; row < firstRow+visibleRows; row++ {
		start := row * rw
		if start >= m.seq.Len() {
			break
		}
		end := min(m.seq.Len(), start+rw)
		b.WriteString("  ")
		for i := start; i < end; i++ {
			base, err := m.seq.At(i)
			if err != nil {
				break
			}
			if i == m.cursor {
				b.WriteString(cursorStyle.Render(base.String()))
			} else {
				b.WriteString(baseStyles[base].Render(base.String()))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runInteractive(seqText, inFile string, unpack bool) error {
	p := tea.NewProgram(newInspectorModel(seqText, inFile, unpack), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
