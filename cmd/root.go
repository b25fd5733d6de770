package cmd

import (
	"HealthHubTerminal/config"
	"HealthHubTerminal/controllers"
	"HealthHubTerminal/logger"
	"HealthHubTerminal/routes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCommand() *cobra.Command {
	var (
		envFile  string
		logLevel string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "healthhub",
		Short: "HealthHub terminal for doctors, patients and medical records.",
		Long: `HealthHub terminal keeps doctors, patients and their medical records in memory
for a single session. Everything entered is discarded when the program exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var overrides []config.Override
			if cmd.Flags().Changed("log-level") {
				overrides = append(overrides, func(c *config.Config) { c.Logging.Level = logLevel })
			}
			if cmd.Flags().Changed("log-file") {
				overrides = append(overrides, func(c *config.Config) { c.Logging.File = logFile })
			}
			cfg, err := config.Load(envFile, overrides...)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			entry := logger.Init(cfg)
			defer logger.Close()
			entry.WithField("env", cfg.App.Env).Info("session started")

			loc := cfg.Location()
			now := func() time.Time { return time.Now().In(loc) }
			app := controllers.NewApp(cmd.InOrStdin(), cmd.OutOrStdout(), now)

			err = controllers.Run(logger.WithContext(cmd.Context(), entry), app, routes.Routes())
			if errors.Is(err, io.EOF) {
				entry.Info("input closed, session ended")
				return nil
			}
			if err != nil {
				entry.WithError(err).Error("session failed")
				return err
			}
			entry.Info("session ended")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "env file to load before reading HMS_* variables")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides HMS_LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "rotating log file, overrides HMS_LOG_FILE")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func Execute() error {
	return NewRootCommand().Execute()
}
