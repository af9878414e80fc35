package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/transport/mcp"
	"github.com/sandevgo/fakebot/pkg/log"
	"github.com/sandevgo/fakebot/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Serve the compose tool over MCP stdio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// stdout carries the protocol
		var flushLog func()
		ctx, flushLog = log.NewContextWithLogger(ctx, log.Options{
			Debug: debug || config.IsDebug(),
			Out:   os.Stderr,
		})
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		local, err := initLocalSources(ctx, appCfg)
		if err != nil {
			return err
		}
		p := newPipeline(ctx, appCfg, local.available)

		srv.StartServices(ctx, local.services)

		server := mcp.NewServer(p.composer, appCfg, os.Stdin, os.Stdout)
		serveErr := server.Start(ctx)

		// stdin closed or signal received
		stop()
		srv.ShutdownServices(ctx, local.services)
		return serveErr
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
