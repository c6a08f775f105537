package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/yeskala/dayplan/internal/ai"
	"github.com/yeskala/dayplan/internal/config"
	"github.com/yeskala/dayplan/internal/db"
	"github.com/yeskala/dayplan/internal/gcal"
	"github.com/yeskala/dayplan/internal/logger"
	"github.com/yeskala/dayplan/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planner web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		logger.Init(debug)

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		aiClient := ai.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		calendarCfg := gcal.NewConfig(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURI)

		if cfg.OpenAI.APIKey == "" {
			logger.Warn("no OpenAI API key configured; plan generation will fail")
		}
		if !calendarCfg.Enabled() {
			logger.Info("Google Calendar sync disabled (no client credentials)")
		}

		server := web.New(cfg, store, aiClient, calendarCfg)

		logger.Info("starting HTTP server", "listen", "http://"+cfg.Listen)
		return http.ListenAndServe(cfg.Listen, server.Handler())
	},
}

func init() {
	serveCmd.Flags().StringP("config", "c", "dayplan.yaml", "Path to the YAML config file")
	serveCmd.Flags().Bool("debug", false, "Enable debug logging")
}
