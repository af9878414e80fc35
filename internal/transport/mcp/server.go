// Package mcp exposes the composer as a tool over the MCP stdio transport.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/fakebot/internal/core"
	"github.com/sandevgo/fakebot/internal/service/command"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/sandevgo/fakebot/pkg/log"
)

const ComposeToolName = "compose_turns"

type TextComposer interface {
	ComposeText(ctx context.Context, text string) ([]core.OutputRecord, error)
}

type composeResult struct {
	Records []composer.RecordView `json:"records"`
}

type Server struct {
	mcp      *server.MCPServer
	composer TextComposer
	// cfg has no trigger, tool input never carries one
	cfg      core.ComposeConfig
	in       io.Reader
	out      io.Writer
}

func NewServer(c TextComposer, cfg core.ComposeConfig, in io.Reader, out io.Writer) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(core.FakeName, core.FakeVersion, server.WithToolCapabilities(false)),
		composer: c,
		cfg:      command.WithTrigger(cfg, ""),
		in:       in,
		out:      out,
	}

	s.mcp.AddTool(mcp.NewTool(ComposeToolName,
		mcp.WithDescription(fmt.Sprintf(
			"Split a fake conversation into messages with resolved display names. Grammar: %s. "+
				"Image URLs become attachments of the message they appear in.",
			command.Grammar(command.WithTrigger(cfg, "")),
		)),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Turns without the trigger keyword, e.g. \"111(Bob) hello | 222 world\""),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.handleCompose)

	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("tool", ComposeToolName).Msg("serving MCP over stdio")

	err := server.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) handleCompose(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := s.composer.ComposeText(ctx, text)
	if errors.Is(err, composer.ErrNoTurns) {
		attempted, _ := composer.Attempted(err)
		return mcp.NewToolResultError(command.Diagnostic(s.cfg, attempted)), nil
	}
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultJSON(composeResult{Records: composer.Views(records)})
}

