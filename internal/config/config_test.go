package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.RequiredSkills != DefaultRequiredSkills {
		t.Errorf("RequiredSkills = %q, want %q", cfg.RequiredSkills, DefaultRequiredSkills)
	}
	if cfg.DraftsFile != DefaultDraftsFile {
		t.Errorf("DraftsFile = %q, want %q", cfg.DraftsFile, DefaultDraftsFile)
	}
	if cfg.Listen != DefaultListenAddr {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListenAddr)
	}
	if cfg.Gmail.CredentialsFile != "credentials.json" {
		t.Errorf("Gmail.CredentialsFile = %q", cfg.Gmail.CredentialsFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("required-skills", "go, kubernetes")
	v.Set("gmail.token-file", "/tmp/token.json")

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.RequiredSkills != "go, kubernetes" {
		t.Errorf("RequiredSkills = %q", cfg.RequiredSkills)
	}
	if cfg.Gmail.TokenFile != "/tmp/token.json" {
		t.Errorf("Gmail.TokenFile = %q", cfg.Gmail.TokenFile)
	}
}
