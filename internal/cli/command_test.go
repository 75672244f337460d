package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "vymova [text]" {
		t.Errorf("Expected Use to be 'vymova [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "IPA") {
		t.Errorf("Expected Short description to mention IPA")
	}

	if cmd.Version == "" {
		t.Error("Expected a version")
	}

	// Test that flags are set up
	flagNames := []string{
		"config",
		"batch",
		"output-dir",
		"output",
		"format",
		"save",
		"archive",
		"list-models",
		"verbose",
		"workers",
		"lexicon",
		"no-lexicon",
		"legacy",
		"check-accent",
		"strip-grave",
		"crosscheck",
		"crosscheck-model",
	}

	for _, name := range flagNames {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag
			if name == "config" {
				flag = cmd.PersistentFlags().Lookup(name)
			} else {
				flag = cmd.Flags().Lookup(name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	outputFlag := cmd.Flags().Lookup("output-dir")
	if outputFlag == nil {
		t.Fatal("output-dir flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".local", "state", "vymova", "exports")
	if outputFlag.DefValue != expectedDefault {
		t.Errorf("Expected default output dir to be %s, got %s", expectedDefault, outputFlag.DefValue)
	}

	lexiconFlag := cmd.Flags().Lookup("lexicon")
	if lexiconFlag == nil {
		t.Fatal("lexicon flag not found")
	}
	if !strings.HasSuffix(lexiconFlag.DefValue, filepath.Join("vymova", "lexicon.db")) {
		t.Errorf("Unexpected default lexicon path %s", lexiconFlag.DefValue)
	}

	formatFlag := cmd.Flags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("Expected default format to be text, got %s", formatFlag.DefValue)
	}
}

func TestInitConfig(t *testing.T) {
	defer viper.Reset()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				tmpDir := t.TempDir()
				cfgPath := filepath.Join(tmpDir, "test-config.yaml")
				content := `transcribe:
  legacy: true
  check_accent: true
crosscheck:
  openai_key: test-key
output:
  directory: /test/output`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			cfgPath := tt.setupFunc(t)
			InitConfig(cfgPath)

			// Test environment variable prefix
			t.Setenv("VYMOVA_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if cfgPath != "" {
				if !viper.GetBool("transcribe.legacy") {
					t.Error("Expected transcribe.legacy from config file")
				}
				if viper.GetString("output.directory") != "/test/output" {
					t.Errorf("Expected output.directory from config, got %s", viper.GetString("output.directory"))
				}
			}
		})
	}
}

func TestApplyConfigFromEnvironment(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("batch:\n  workers: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	t.Setenv("VYMOVA_TRANSCRIBE_LEGACY", "true")
	t.Setenv("VYMOVA_TRANSCRIBE_STRIP_GRAVE", "true")
	t.Setenv("VYMOVA_OUTPUT_FORMAT", "csv")
	t.Setenv("VYMOVA_BATCH_WORKERS", "5")
	t.Setenv("VYMOVA_CROSSCHECK_PROVIDER", "openai")

	InitConfig(cfgPath)
	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)
	ApplyConfig(flags)

	if !flags.Legacy {
		t.Error("Expected legacy from VYMOVA_TRANSCRIBE_LEGACY")
	}
	if !flags.StripGrave {
		t.Error("Expected strip-grave from VYMOVA_TRANSCRIBE_STRIP_GRAVE")
	}
	if flags.Format != "csv" {
		t.Errorf("Expected format csv from the environment, got %s", flags.Format)
	}
	if flags.Workers != 5 {
		t.Errorf("Expected the environment to win over the config file, got %d workers", flags.Workers)
	}
	if flags.CrossCheck != "openai" {
		t.Errorf("Expected openai cross-check, got %s", flags.CrossCheck)
	}
}

func TestGetAPIKeys(t *testing.T) {
	defer viper.Reset()

	tests := []struct {
		name      string
		provider  string
		envVar    string
		configKey string
		envValue  string
		cfgValue  string
		expected  string
	}{
		{"openai from environment", "openai", "OPENAI_API_KEY", "crosscheck.openai_key", "env-key", "config-key", "env-key"},
		{"openai from config", "openai", "OPENAI_API_KEY", "crosscheck.openai_key", "", "config-key", "config-key"},
		{"gemini from environment", "gemini", "GEMINI_API_KEY", "crosscheck.gemini_key", "env-key", "config-key", "env-key"},
		{"gemini from config", "gemini", "GEMINI_API_KEY", "crosscheck.gemini_key", "", "config-key", "config-key"},
		{"empty when neither set", "openai", "OPENAI_API_KEY", "crosscheck.openai_key", "", "", ""},
		{"unknown provider", "claude", "OPENAI_API_KEY", "crosscheck.openai_key", "env-key", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			// t.Setenv with an empty value still shadows a key from the
			// developer's environment
			t.Setenv(tt.envVar, tt.envValue)
			if tt.cfgValue != "" {
				viper.Set(tt.configKey, tt.cfgValue)
			}

			if got := GetAPIKey(tt.provider); got != tt.expected {
				t.Errorf("GetAPIKey(%s) = %q, want %q", tt.provider, got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("output-dir", "/test/output")
	cmd.Flags().Set("format", "csv")
	cmd.Flags().Set("legacy", "true")
	cmd.Flags().Set("crosscheck-model", "gpt-4o")

	bindFlagsToViper(cmd)

	// Test that values are bound
	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}

	if viper.GetString("output.format") != "csv" {
		t.Errorf("Expected output.format to be csv, got %s", viper.GetString("output.format"))
	}

	if !viper.GetBool("transcribe.legacy") {
		t.Error("Expected transcribe.legacy to be true")
	}

	if viper.GetString("crosscheck.model") != "gpt-4o" {
		t.Errorf("Expected crosscheck.model to be gpt-4o, got %s", viper.GetString("crosscheck.model"))
	}
}
