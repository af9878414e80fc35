package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/fakebot/internal/config"
)

// FinalizationStep derives the name source order from what was configured
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(&state.Settings)
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

func finalize(st *Settings) {
	if !st.EnableTelegram {
		st.TelegramToken = ""
		st.AllowedIDs = nil
	}

	sources := []string{config.SourceAliases}
	if st.EnableTelegram {
		sources = append(sources, config.SourceDirectory, config.SourceTelegram)
	}
	if len(st.NameAPIURLs) > 0 {
		sources = append(sources, config.SourceHTTP)
	}
	st.NameSources = sources
}
