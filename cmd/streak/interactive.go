package main

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OjusWiZard/streak/internal/config"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes := " Yes "
	no := " No "
	if m.value {
		yes = selectedStyle.Render(" Yes ")
	} else {
		no = selectedStyle.Render(" No ")
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- pickModel: bubbletea model for choosing one option from a list ---

type pickModel struct {
	title   string
	options []string
	index   int
	done    bool
	aborted bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "up", "k":
			if m.index > 0 {
				m.index--
			}
		case "down", "j":
			if m.index < len(m.options)-1 {
				m.index++
			}
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	for i, opt := range m.options {
		cursor := "  "
		line := opt
		if i == m.index {
			cursor = "> "
			line = selectedStyle.Render(opt)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptConfirm(title string) (bool, error) {
	m := confirmModel{
		title: title,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

func promptPick(title string, options []string) (int, error) {
	m := pickModel{
		title:   title,
		options: options,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return 0, err
	}
	rm := result.(pickModel)
	if rm.aborted {
		return 0, fmt.Errorf("user aborted")
	}
	return rm.index, nil
}

// --- validators ---

func requiredValidator(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func urlValidator(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL")
	}
	return nil
}

func wordlistValidator(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("wordlist path is required")
	}
	if filepath.IsAbs(s) || strings.Contains(s, "..") {
		return fmt.Errorf("path must stay inside the repository")
	}
	return nil
}

// buildConfigInteractive walks the user through the message source choice
// and assembles a validated config.
func buildConfigInteractive() (*config.Config, error) {
	cfg := config.Default()

	choice, err := promptPick("Where should commit messages come from?", []string{
		"fixed: always use one configured message",
		"remote: fetch each message from an HTTP endpoint",
		"wordlist: pick a random line from a local file",
	})
	if err != nil {
		return nil, err
	}

	switch choice {
	case 0:
		text, err := promptInput("Commit message", "keep the streak alive", requiredValidator("commit message"))
		if err != nil {
			return nil, err
		}
		cfg.Message = config.Message{
			Source: config.SourceFixed,
			Fixed:  strings.TrimSpace(text),
		}
	case 1:
		endpoint, err := promptInput("Message endpoint URL", "https://example.com/motd", urlValidator)
		if err != nil {
			return nil, err
		}
		cfg.Message = config.Message{
			Source: config.SourceRemote,
			URL:    strings.TrimSpace(endpoint),
		}
		useFallback, err := promptConfirm("Fall back to a fixed message when the endpoint is unreachable?")
		if err != nil {
			return nil, err
		}
		if useFallback {
			text, err := promptInput("Fallback message", "keep the streak alive", requiredValidator("fallback message"))
			if err != nil {
				return nil, err
			}
			cfg.Message.Fallback = config.FallbackFixed
			cfg.Message.Fixed = strings.TrimSpace(text)
		}
	case 2:
		list, err := promptInput("Wordlist path (relative to the repository)", "words.txt", wordlistValidator)
		if err != nil {
			return nil, err
		}
		cfg.Message = config.Message{
			Source:   config.SourceWordlist,
			Wordlist: strings.TrimSpace(list),
		}
	}

	remote, err := promptInput("Push remote", "origin", nil)
	if err != nil {
		return nil, err
	}
	if r := strings.TrimSpace(remote); r != "" {
		cfg.Push.Remote = r
	}

	return cfg, nil
}
