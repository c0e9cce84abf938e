package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/iosafe/audit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	calleeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	posStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	err      error
	report   *audit.Report
	dir      string
	patterns []string
	filter   textinput.Model
	visible  []audit.Site
	selected int
	state    browseState
}

type browseState int

const (
	stateList browseState = iota
	stateFilter
	stateDetail
)

func newBrowseModel(dir string, patterns []string) *browseModel {
	ti := textinput.New()
	ti.Placeholder = "package or callee"
	ti.Prompt = "filter: "
	ti.Width = 40
	return &browseModel{
		dir:      dir,
		patterns: patterns,
		filter:   ti,
		state:    stateList,
	}
}

type reportMsg struct {
	err    error
	report *audit.Report
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadReport
}

func (m *browseModel) loadReport() tea.Msg {
	report, err := audit.Scan(m.dir, m.patterns...)
	if err != nil {
		return reportMsg{err: err}
	}
	return reportMsg{report: report}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateList
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.refilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				m.filter.Focus()
			}

		case "enter":
			if m.state == stateList && len(m.visible) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}
		}

	case reportMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.report = msg.report
		m.refilter()
	}

	return m, nil
}

func (m *browseModel) refilter() {
	if m.report == nil {
		return
	}
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, s := range m.report.Sites {
		if needle == "" ||
			strings.Contains(strings.ToLower(s.Package), needle) ||
			strings.Contains(strings.ToLower(s.Callee), needle) ||
			strings.Contains(strings.ToLower(s.Reason), needle) {
			m.visible = append(m.visible, s)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return warnStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.report == nil {
		return "Scanning packages..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Wrapping Sites"))
	b.WriteString(fmt.Sprintf(" %d site(s), %d marked declaration(s)\n\n",
		len(m.report.Sites), len(m.report.Declarations)))

	switch m.state {
	case stateList, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no sites match"))
			b.WriteString("\n")
		}
		for i, s := range m.visible {
			line := m.formatSite(s)
			if i == m.selected && m.state == stateList {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc back"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
		}

	case stateDetail:
		s := m.visible[m.selected]
		b.WriteString(calleeStyle.Render(s.Callee))
		b.WriteString("\n\n")
		b.WriteString("  package:  " + s.Package + "\n")
		b.WriteString("  position: " + posStyle.Render(s.Pos) + "\n")
		if s.Function != "" {
			b.WriteString("  function: " + s.Function + "\n")
		}
		if s.Reason != "" {
			b.WriteString("  reason:   " + reasonStyle.Render(s.Reason) + "\n")
		} else {
			b.WriteString("  reason:   " + warnStyle.Render("(none recorded)") + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func (m *browseModel) formatSite(s audit.Site) string {
	reason := s.Reason
	if reason == "" {
		reason = warnStyle.Render("no reason")
	} else {
		reason = reasonStyle.Render(reason)
	}
	return posStyle.Render(s.Pos) + " " + calleeStyle.Render(shortCallee(s.Callee)) + " " + reason
}

// shortCallee trims the module path prefix so list rows stay readable.
func shortCallee(callee string) string {
	if i := strings.LastIndex(callee, "/"); i >= 0 {
		return callee[i+1:]
	}
	return callee
}

var browseDir string

var browseCmd = &cobra.Command{
	Use:   "browse [packages]",
	Short: "Browse wrapping sites interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = []string{"./..."}
		}
		p := tea.NewProgram(newBrowseModel(browseDir, patterns), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseDir, "dir", "C", ".", "directory to load packages from")
	rootCmd.AddCommand(browseCmd)
}
