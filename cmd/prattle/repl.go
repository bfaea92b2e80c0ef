package main

import (
	"flag"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cli"
	"github.com/midbel/prattle/calc"
	"github.com/midbel/prattle/pratt"
	"github.com/midbel/prattle/sexp"
)

var replCmd = cli.Command{
	Name:    "repl",
	Summary: "interactive parse and eval loop",
	Handler: &ReplCmd{},
}

type ReplCmd struct {
	Grammar string
}

func (c *ReplCmd) Run(args []string) error {
	set := flag.NewFlagSet("repl", flag.ContinueOnError)
	set.StringVar(&c.Grammar, "g", "", "load grammar rules from file")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := getParser(c.Grammar)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newReplModel(p)).Run()
	return err
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type replModel struct {
	input  textinput.Model
	parser *pratt.Parser
	env    *calc.Env
	lines  []string
}

func newReplModel(p *pratt.Parser) replModel {
	input := textinput.New()
	input.Placeholder = "expression"
	input.Prompt = promptStyle.Render("> ")
	input.Focus()
	return replModel{
		input:  input,
		parser: p,
		env:    calc.EmptyEnv(),
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				m = m.run(line)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	var view strings.Builder
	for _, line := range m.lines {
		view.WriteString(line)
		view.WriteString("\n")
	}
	view.WriteString(m.input.View())
	view.WriteString("\n")
	return view.String()
}

func (m replModel) run(line string) replModel {
	m.lines = append(m.lines, promptStyle.Render("> ")+line)
	expr, err := m.parser.Parse(line)
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
		return m
	}
	m.lines = append(m.lines, treeStyle.Render(sexp.Format(expr)))
	res, err := calc.Eval(expr, m.env)
	if err != nil {
		m.lines = append(m.lines, errorStyle.Render(err.Error()))
		return m
	}
	m.lines = append(m.lines, resultStyle.Render(strconv.FormatFloat(res, 'f', -1, 64)))
	return m
}
