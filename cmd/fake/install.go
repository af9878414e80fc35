package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/fakebot/internal/config"
	"github.com/sandevgo/fakebot/internal/service/installer"
	"github.com/sandevgo/fakebot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the runtime directory and its .env",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		runtimePath := config.GetRuntimePath()

		// run wizard (includes save step)
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		// Validate what was written so a bad value shows up now rather than on start
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
			return nil
		}
		if _, err := config.ParseAppConfig(); err != nil {
			logger.Warn().Err(err).Msg("written configuration is invalid, edit .env by hand")
			return nil
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! You can now run 'fake start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
