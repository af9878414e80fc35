package command

import (
	"github.com/sandevgo/fakebot/internal/core"
)

type RouterConfig interface {
	core.ComposeConfig
	core.ResolveConfig
}

// NewRouter builds the router with every chat command registered. senders
// may be nil.
func NewRouter(cfg RouterConfig, sources SourceLister, cache core.IdentityCache, senders SenderCounter) *Router {
	r := New(nil)
	help := NewHelpCommand(cfg, r.ListCommands)

	for _, cmd := range []core.Command{
		help,
		alias{Command: help, name: "start"},
		NewSourcesCommand(sources, cache, senders, cfg),
	} {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

type alias struct {
	core.Command
	name string
}

func (a alias) Name() string {
	return a.name
}

func (a alias) Description() string {
	return "Same as /" + a.Command.Name()
}
