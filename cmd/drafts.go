package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/drafts"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List saved reply drafts",
	Run: func(_ *cobra.Command, _ []string) {
		listDrafts()
	},
}

func init() {
	rootCmd.AddCommand(draftsCmd)
}

func listDrafts() {
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store := drafts.NewStore(cfg.DraftsFile)
	saved := store.Load()
	if len(saved) == 0 {
		logger.Info("no drafts found", zap.String("path", store.Path()))
		return
	}

	for i, d := range saved {
		fmt.Printf("--- Draft %d ---\n", i+1)
		fmt.Printf("Candidate File: %s\n", d.CandidateFile)
		fmt.Printf("Classification: %s\n", d.Classification)
		fmt.Printf("Match %%: %v\n", d.MatchPct)
		fmt.Printf("Saved at: %s\n\n", d.SavedAt)
		fmt.Println(d.Reply)
		fmt.Println()
	}
}
