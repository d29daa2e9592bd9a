package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-screener/internal/export"
	"github.com/fmuoria/resume-screener/internal/models"
)

var screenCmd = &cobra.Command{
	Use:   "screen [files...]",
	Short: "Screen resumes against the configured skill lists",
	Long: `Screen extracts text from the given resume files (or every supported file
in the uploads directory when none are given), matches it against the
required and critical skill lists and prints the classification for each
candidate.`,
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringP("required", "r", "", "comma-separated required skills")
	screenCmd.Flags().StringP("critical", "c", "", "comma-separated critical skills whose absence forces rejection")
	screenCmd.Flags().String("csv", "", "write results to a CSV file")
	screenCmd.Flags().String("xlsx", "", "write a styled Excel report")
	screenCmd.Flags().Bool("reply", false, "print a generated reply for each candidate")
	screenCmd.Flags().Bool("save-drafts", false, "save a generated reply draft for each candidate")

	viper.BindPFlag("required-skills", screenCmd.Flags().Lookup("required"))
	viper.BindPFlag("critical-skills", screenCmd.Flags().Lookup("critical"))
}

func screen(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	a := newAgent(cfg, logger)

	var added int
	if len(args) > 0 {
		added = a.AddResumeFiles(args)
	} else {
		added, err = a.IngestUploads()
		if err != nil {
			logger.Fatal("ingesting uploads", zap.Error(err))
		}
	}
	if added == 0 {
		logger.Fatal("no resumes to screen",
			zap.String("hint", "pass resume files as arguments or place them in the uploads directory"))
	}
	logger.Info("ingested resumes", zap.Int("count", added))

	required := models.ParseSkillList(cfg.RequiredSkills)
	critical := models.ParseSkillList(cfg.CriticalSkills)
	if len(required) == 0 {
		logger.Warn("no required skills configured, every candidate scores 0%")
	}

	a.ScreenAll(required, critical)
	results := a.Results()
	printResults(results)

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		if err := export.ExportCSV(results, path); err != nil {
			logger.Fatal("exporting CSV", zap.Error(err))
		}
		logger.Info("exported results", zap.String("path", path))
	}
	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		if err := export.ExportToExcel(results, path); err != nil {
			logger.Fatal("exporting Excel report", zap.Error(err))
		}
		logger.Info("exported report", zap.String("path", path))
	}

	printReplies, _ := cmd.Flags().GetBool("reply")
	saveDrafts, _ := cmd.Flags().GetBool("save-drafts")
	if !printReplies && !saveDrafts {
		return
	}

	for _, c := range a.Candidates() {
		body, err := a.GenerateReply(c.ID)
		if err != nil {
			logger.Warn("generating reply", zap.String("file", c.Name), zap.Error(err))
			continue
		}
		if printReplies {
			fmt.Printf("\n--- Reply for %s ---\n%s\n", c.Name, body)
		}
		if saveDrafts {
			if _, err := a.SaveDraft(c.ID, body); err != nil {
				logger.Warn("saving draft", zap.String("file", c.Name), zap.Error(err))
			}
		}
	}
}

func printResults(results []models.ScreeningResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tCLASSIFICATION\tMATCH %\tREASON")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", r.Name, r.Classification, r.MatchPct, r.Reason)
	}
	w.Flush()
}
