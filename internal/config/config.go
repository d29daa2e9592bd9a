// Package config declares the application configuration, resolved through
// viper from config file, environment and flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults mirror the classic screening setup: the stock required-skill
// list, drafts next to the working directory and the standard CSV name.
const (
	DefaultRequiredSkills = "python, machine learning, sql, aws"
	DefaultCriticalSkills = ""
	DefaultUploadsDir     = "uploads"
	DefaultDraftsFile     = "resume_reply_drafts.json"
	DefaultExportCSV      = "screening_results.csv"
	DefaultListenAddr     = ":8080"
)

// Config holds application configuration.
type Config struct {
	RequiredSkills string      `mapstructure:"required-skills"`
	CriticalSkills string      `mapstructure:"critical-skills"`
	UploadsDir     string      `mapstructure:"uploads-dir"`
	DraftsFile     string      `mapstructure:"drafts-file"`
	ExportCSV      string      `mapstructure:"export-csv"`
	Listen         string      `mapstructure:"listen"`
	Gmail          GmailConfig `mapstructure:"gmail"`
}

// GmailConfig configures Gmail attachment ingestion.
type GmailConfig struct {
	CredentialsFile string `mapstructure:"credentials-file"`
	TokenFile       string `mapstructure:"token-file"`
}

// SetDefaults registers default values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("required-skills", DefaultRequiredSkills)
	v.SetDefault("critical-skills", DefaultCriticalSkills)
	v.SetDefault("uploads-dir", DefaultUploadsDir)
	v.SetDefault("drafts-file", DefaultDraftsFile)
	v.SetDefault("export-csv", DefaultExportCSV)
	v.SetDefault("listen", DefaultListenAddr)
	v.SetDefault("gmail.credentials-file", "credentials.json")
	v.SetDefault("gmail.token-file", "token.json")
}

// Load unmarshals the resolved configuration.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
