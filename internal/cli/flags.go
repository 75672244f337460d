package cli

import (
	"runtime"

	"github.com/spf13/viper"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	BatchFile   string
	OutputDir   string
	OutputPath  string
	Format      string
	Save        bool
	Archive     bool
	ListModels  bool
	Verbose     bool
	Workers     int
	LexiconPath string
	NoLexicon   bool

	// Transcription flags
	Legacy      bool
	CheckAccent bool
	StripGrave  bool

	// Cross-check flags
	CrossCheck      string
	CrossCheckModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:  "text",
		Workers: runtime.NumCPU(),
	}
}

// ApplyConfig copies the bound viper values into flags, so settings from the
// config file or environment apply where no flag was given
func ApplyConfig(flags *Flags) {
	flags.Legacy = viper.GetBool("transcribe.legacy")
	flags.CheckAccent = viper.GetBool("transcribe.check_accent")
	flags.StripGrave = viper.GetBool("transcribe.strip_grave")

	if format := viper.GetString("output.format"); format != "" {
		flags.Format = format
	}
	if path := viper.GetString("output.path"); path != "" {
		flags.OutputPath = path
	}
	if dir := viper.GetString("output.directory"); dir != "" {
		flags.OutputDir = dir
	}
	if path := viper.GetString("lexicon.path"); path != "" {
		flags.LexiconPath = path
	}
	if workers := viper.GetInt("batch.workers"); workers > 0 {
		flags.Workers = workers
	}
	if provider := viper.GetString("crosscheck.provider"); provider != "" {
		flags.CrossCheck = provider
	}
	if model := viper.GetString("crosscheck.model"); model != "" {
		flags.CrossCheckModel = model
	}
}
