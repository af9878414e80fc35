package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/fakebot/internal/core"
)

type HelpCommand struct {
	cfg       core.ComposeConfig
	list      func() []core.Command
	formatter *ResponseFormatter
}

// NewHelpCommand takes the command list lazily so that help can describe
// the router it is registered in.
func NewHelpCommand(cfg core.ComposeConfig, list func() []core.Command) *HelpCommand {
	return &HelpCommand{
		cfg:       cfg,
		list:      list,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "Show how to compose fake messages"
}

func (c *HelpCommand) Execute(_ context.Context, _ []string) (string, error) {
	sections := []string{
		c.formatter.Info("Fake messages"),
		c.formatter.Usage(Grammar(c.cfg)),
		c.formatter.List([]string{
			"`<id>` numeric user id, used to look up the display name",
			"`(<name>)` optional display name, skips the lookup",
			fmt.Sprintf("`%c` starts the next message", c.cfg.GetDelimiter()),
			"images attached to the command or image links go with the message they follow",
		}),
		c.formatter.Examples(Examples(c.cfg)),
	}

	if c.list != nil {
		var cmds []string
		for _, cmd := range c.list() {
			cmds = append(cmds, fmt.Sprintf("/%s - %s", cmd.Name(), cmd.Description()))
		}
		if len(cmds) > 0 {
			sections = append(sections, c.formatter.List(cmds))
		}
	}

	return c.formatter.Combine(sections...), nil
}
