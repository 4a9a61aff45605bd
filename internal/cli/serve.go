package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/IRM/internal/config"
	"github.com/JonMunkholm/IRM/internal/logging"
	"github.com/JonMunkholm/IRM/internal/web"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return LeafCommand{
		Use:   "serve",
		Short: "Start the evaluation web form",
		Long: `Start the evaluation web form.

Settings come from the environment and an optional .env file. Flags
override the listen address and default language.`,
		Args: cobra.NoArgs,
		StrFlags: []StringFlag{
			{Name: "host", Usage: "interface to bind (overrides SERVER_HOST)"},
			{Name: "lang", Usage: "default label language KO or EN (overrides APP_DEFAULT_LANGUAGE)"},
			{Name: "env-file", Usage: "dotenv file to load", Default: ".env"},
		},
		IntFlags: []IntFlag{
			{Name: "port", Usage: "port to listen on (overrides SERVER_PORT)"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := serveConfig(cmd)
			if err != nil {
				return err
			}

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			slog.Info("configuration loaded", "addr", cfg.Server.Addr(), "default_language", cfg.App.DefaultLanguage)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return web.Run(ctx, cfg)
		},
	}.Build()
}

// serveConfig loads configuration and applies flag overrides.
func serveConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			slog.Debug("no env file loaded", "path", envFile, "error", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt64("port")
		cfg.Server.Port = int(port)
	}
	if cmd.Flags().Changed("lang") {
		cfg.App.DefaultLanguage, _ = cmd.Flags().GetString("lang")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
