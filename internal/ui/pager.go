package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type pagerModel struct {
	viewport viewport.Model
	content  string
	ready    bool
	theme    Theme
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	footer := m.theme.HelpStyle().Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", m.viewport.ScrollPercent()*100))
	return m.viewport.View() + "\n" + footer
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// OutputOrPage writes content to w. When page is set, w is a terminal
// and the content is taller than it, the content is shown in a pager
// instead.
func OutputOrPage(w io.Writer, content string, page bool, theme Theme) error {
	if !page || !IsTerminal(w) {
		_, err := io.WriteString(w, content)
		return err
	}

	f := w.(*os.File)
	_, height, err := term.GetSize(int(f.Fd()))
	if err != nil || strings.Count(content, "\n")+1 <= height-2 {
		_, err := io.WriteString(w, content)
		return err
	}

	p := tea.NewProgram(pagerModel{content: content, theme: theme}, tea.WithAltScreen(), tea.WithOutput(f))
	_, err = p.Run()
	return err
}
