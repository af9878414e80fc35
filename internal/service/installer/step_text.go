package installer

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep reads one line. validate runs on enter; apply stores the value.
type TextStep struct {
	prompt   string
	input    textinput.Model
	validate func(string) error
	apply    func(string, *InstallState)
	skip     func(*InstallState) bool
	err      error
}

func newTextStep(prompt, placeholder string) *TextStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50
	ti.Placeholder = placeholder

	return &TextStep{
		prompt: prompt,
		input:  ti,
		apply:  func(string, *InstallState) {},
	}
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

// Skip reports whether the wizard should pass over this step.
func (s *TextStep) Skip(state *InstallState) bool {
	return s.skip != nil && s.skip(state)
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if s.validate != nil {
			if err := s.validate(value); err != nil {
				s.err = err
				return s, nil
			}
		}
		s.apply(value, state)
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.err = nil
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	view := s.prompt + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}

func NewTelegramTokenStep() Step {
	s := newTextStep("Enter your Telegram Bot Token:", "123456789:ABCDEF...")
	s.input.EchoMode = textinput.EchoPassword
	s.input.EchoCharacter = '•'
	s.skip = func(st *InstallState) bool { return !st.Settings.EnableTelegram }
	s.validate = func(v string) error {
		if !strings.Contains(v, ":") {
			return fmt.Errorf("a bot token looks like 123456789:ABCDEF")
		}
		return nil
	}
	s.apply = func(v string, st *InstallState) { st.Settings.TelegramToken = v }
	return s
}

func NewAllowedIDsStep() Step {
	s := newTextStep("Telegram user ids allowed to use the bot (comma separated, empty for everyone):", "123456789,987654321")
	s.skip = func(st *InstallState) bool { return !st.Settings.EnableTelegram }
	s.validate = func(v string) error {
		_, err := parseIDs(v)
		return err
	}
	s.apply = func(v string, st *InstallState) {
		st.Settings.AllowedIDs, _ = parseIDs(v)
	}
	return s
}

func NewTriggerStep() Step {
	s := newTextStep("Trigger keyword (empty for /fake):", "/fake")
	s.validate = func(v string) error {
		if strings.ContainsAny(v, " \t") {
			return fmt.Errorf("the trigger must be a single word")
		}
		return nil
	}
	s.apply = func(v string, st *InstallState) { st.Settings.Trigger = v }
	return s
}

func NewNameAPIStep() Step {
	s := newTextStep("Nickname API URL, {key} is replaced with the id (empty to skip):", "https://api.example.com/nick?id={key}")
	s.validate = validateTemplate
	s.apply = func(v string, st *InstallState) {
		if v != "" {
			st.Settings.NameAPIURLs = []string{v}
		}
	}
	return s
}

func parseIDs(v string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a numeric id", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func validateTemplate(v string) error {
	if v == "" {
		return nil
	}
	if !strings.Contains(v, "{key}") {
		return fmt.Errorf("the URL must contain {key}")
	}
	u, err := url.Parse(strings.ReplaceAll(v, "{key}", "1"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("not an http(s) URL")
	}
	return nil
}
