package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch resume attachments from Gmail into the uploads directory",
	Run: func(cmd *cobra.Command, _ []string) {
		ingest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringP("gmail-subject", "s", "", "subject filter for emails carrying resume attachments")
	ingestCmd.MarkFlagRequired("gmail-subject")
}

func ingest(cmd *cobra.Command) {
	ctx := context.Background()
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	subject, _ := cmd.Flags().GetString("gmail-subject")

	gh, err := ingestion.NewGmailHandler(ctx, cfg.Gmail.CredentialsFile, cfg.Gmail.TokenFile, cfg.UploadsDir, logger)
	if err != nil {
		logger.Fatal("initializing Gmail handler", zap.Error(err))
	}

	saved, err := gh.FetchAttachments(ctx, subject)
	if err != nil {
		logger.Fatal("fetching attachments", zap.Error(err))
	}

	logger.Info("fetched resume attachments",
		zap.Int("count", saved),
		zap.String("uploads_dir", cfg.UploadsDir))
}
