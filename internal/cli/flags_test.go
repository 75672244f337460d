package cli

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", flags.Format, "text"},
		{"Workers", flags.Workers, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Legacy", flags.Legacy},
		{"CheckAccent", flags.CheckAccent},
		{"StripGrave", flags.StripGrave},
		{"Save", flags.Save},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
		{"Verbose", flags.Verbose},
		{"NoLexicon", flags.NoLexicon},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"OutputPath", flags.OutputPath},
		{"CrossCheck", flags.CrossCheck},
		{"CrossCheckModel", flags.CrossCheckModel},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %q, want empty", tt.name, tt.value)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Values from a config file
	viper.Set("transcribe.legacy", true)
	viper.Set("output.format", "yaml")
	viper.Set("batch.workers", 3)
	viper.Set("crosscheck.provider", "gemini")

	// A flag given on the command line wins over the config
	if err := cmd.Flags().Set("check-accent", "true"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}

	ApplyConfig(flags)

	if !flags.Legacy {
		t.Error("Expected legacy from config")
	}
	if !flags.CheckAccent {
		t.Error("Expected check-accent from flag")
	}
	if flags.Format != "yaml" {
		t.Errorf("Expected format yaml, got %s", flags.Format)
	}
	if flags.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", flags.Workers)
	}
	if flags.CrossCheck != "gemini" {
		t.Errorf("Expected gemini cross-check, got %s", flags.CrossCheck)
	}
}
