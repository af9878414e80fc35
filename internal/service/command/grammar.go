package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/fakebot/internal/core"
)

// Grammar is the usage line for the compose command.
func Grammar(cfg core.ComposeConfig) string {
	d := cfg.GetDelimiter()
	return strings.TrimSpace(fmt.Sprintf("%s <id>[(<name>)] <text> [%c <id>[(<name>)] <text>]...", cfg.GetTrigger(), d))
}

func Examples(cfg core.ComposeConfig) []string {
	t, d := cfg.GetTrigger(), cfg.GetDelimiter()
	return []string{
		strings.TrimSpace(fmt.Sprintf("%s 12345 Hello %c 67890(Alice) Hi there", t, d)),
		strings.TrimSpace(fmt.Sprintf("%s 12345(Bob) Look at this https://example.com/cat.png", t)),
		strings.TrimSpace(fmt.Sprintf("%s 111 first %c 111 second %c 222 reply", t, d, d)),
	}
}

// Diagnostic is the single reply sent when a command produced no turns.
// attempted is echoed back when it is not empty.
func Diagnostic(cfg core.ComposeConfig, attempted string) string {
	f := NewResponseFormatter()

	name := trimSlash(cfg.GetTrigger())
	if name == "" {
		name = "compose"
	}

	sections := []string{
		f.Error(name, fmt.Errorf("no valid turns found")),
		f.Usage(Grammar(cfg)),
		f.Examples(Examples(cfg)[:1]),
	}
	if attempted != "" {
		sections = append(sections, f.Label("Parsed", attempted))
	}
	sections = append(sections, f.Tip("every turn starts with a numeric id, optionally followed by a name in parentheses"))
	return f.Combine(sections...)
}

func trimSlash(s string) string {
	if len(s) > 0 && s[0] == '/' {
		return s[1:]
	}
	return s
}

// WithTrigger presents cfg under another trigger: the CLI subcommand, or
// none at all for tool calls whose input carries no trigger.
func WithTrigger(cfg core.ComposeConfig, trigger string) core.ComposeConfig {
	return triggerOverride{ComposeConfig: cfg, trigger: trigger}
}

type triggerOverride struct {
	core.ComposeConfig
	trigger string
}

func (t triggerOverride) GetTrigger() string {
	return t.trigger
}
