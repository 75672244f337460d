package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vymova/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vymova [text]",
		Short: "Ukrainian to IPA transcriber",
		Long: `vymova transcribes Ukrainian text into the International Phonetic Alphabet.

Mark the stressed vowel with a combining acute accent (U+0301) placed
after it, and a secondary stress with a combining grave (U+0300).

Examples:
  vymova "Сполу́чені Шта́ти"          # Transcribe a phrase
  vymova --check-accent бік          # Stress monosyllables, require accents
  vymova --legacy ма́ма              # Use the single-sequence variant
  vymova --batch words.txt -f csv    # Transcribe a file, one text per line`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// StateDir is where exports and the lexicon live by default
func StateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "vymova")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	defaultOutputDir := filepath.Join(StateDir(), "exports")
	defaultLexicon := filepath.Join(StateDir(), "lexicon.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.vymova.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Transcribe texts from file (one per line, optional '= expected IPA')")
	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "d", defaultOutputDir, "Directory for saved exports")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Write batch results to this file instead of stdout")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Export format (text, csv or yaml)")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "Save batch results into the output directory")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory into the archive")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a line per batch entry")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of parallel batch workers")
	cmd.Flags().StringVar(&flags.LexiconPath, "lexicon", defaultLexicon, "SQLite lexicon of stored transcriptions")
	cmd.Flags().BoolVar(&flags.NoLexicon, "no-lexicon", false, "Do not read or write the lexicon")

	// Transcription flags
	cmd.Flags().BoolVar(&flags.Legacy, "legacy", false, "Use the legacy single-sequence variant")
	cmd.Flags().BoolVar(&flags.CheckAccent, "check-accent", false, "Require an accent in polysyllabic text and stress monosyllables")
	cmd.Flags().BoolVar(&flags.StripGrave, "strip-grave", false, "Drop grave accents (secondary stress) before transcribing")

	// Cross-check flags
	cmd.Flags().StringVar(&flags.CrossCheck, "crosscheck", "", "Compare with a reference transcription from a model: openai or gemini")
	cmd.Flags().StringVar(&flags.CrossCheckModel, "crosscheck-model", "", "Model used for the cross-check (default per provider)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("transcribe.legacy", cmd.Flags().Lookup("legacy"))
	viper.BindPFlag("transcribe.check_accent", cmd.Flags().Lookup("check-accent"))
	viper.BindPFlag("transcribe.strip_grave", cmd.Flags().Lookup("strip-grave"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("lexicon.path", cmd.Flags().Lookup("lexicon"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("crosscheck.provider", cmd.Flags().Lookup("crosscheck"))
	viper.BindPFlag("crosscheck.model", cmd.Flags().Lookup("crosscheck-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".vymova" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vymova")
	}

	// Environment variables, VYMOVA_OUTPUT_FORMAT sets output.format
	viper.SetEnvPrefix("VYMOVA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("crosscheck.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("crosscheck.gemini_key")
}

// GetAPIKey returns the key for a cross-check provider
func GetAPIKey(provider string) string {
	switch provider {
	case "openai":
		return GetOpenAIKey()
	case "gemini":
		return GetGeminiKey()
	}
	return ""
}
