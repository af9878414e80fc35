package main

import (
	"errors"
	"os"
	"strings"

	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/service/command"
	"github.com/sandevgo/fakebot/internal/service/composer"
	"github.com/sandevgo/fakebot/internal/transport/cli"
	"github.com/sandevgo/fakebot/pkg/log"
	"github.com/spf13/cobra"
)

var asJSON bool

var composeCmd = &cobra.Command{
	Use:   "compose <turns>",
	Short: "Compose turns once and print them",
	Long: `Runs the pipeline on the argument without a trigger and prints the records.
Example: fake compose "111(Bob) hello | 222 world"`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

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
		defer shutdownNow(ctx, local.services)

		if appCfg.HasSource(config.SourceAliases) {
			if err := local.aliases.Load(); err != nil {
				logger.Warn().Err(err).Msg("failed to load aliases")
			}
		}

		p := newPipeline(ctx, appCfg, local.available)
		printer := cli.NewPrinter(os.Stdout, asJSON)

		records, err := p.composer.ComposeText(ctx, strings.Join(args, " "))
		if errors.Is(err, composer.ErrNoTurns) {
			attempted, _ := composer.Attempted(err)
			if perr := printer.Diagnostic(command.Grammar(command.WithTrigger(appCfg, "fake compose")), attempted); perr != nil {
				return perr
			}
			return err
		}
		if err != nil {
			return err
		}

		return printer.Render(ctx, records)
	},
}

func init() {
	composeCmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	rootCmd.AddCommand(composeCmd)
}
