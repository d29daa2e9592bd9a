package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the screening HTTP API",
	Run: func(cmd *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default :8080)")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	a := newAgent(cfg, logger)
	server := api.NewServer(a, logger)

	logger.Info("starting the resume screener API",
		zap.String("listen", cfg.Listen),
		zap.String("version", version))

	if err := http.ListenAndServe(cfg.Listen, server.Router()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
