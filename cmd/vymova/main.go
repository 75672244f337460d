package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vymova/internal/archive"
	"codeberg.org/snonux/vymova/internal/cli"
	"codeberg.org/snonux/vymova/internal/crosscheck"
	"codeberg.org/snonux/vymova/internal/lexicon"
	"codeberg.org/snonux/vymova/internal/models"
	"codeberg.org/snonux/vymova/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)
	ctx := cmd.Context()

	// Handle --archive flag
	if flags.Archive {
		exportsDir := flags.OutputDir
		if exportsDir == "" {
			exportsDir = filepath.Join(cli.StateDir(), "exports")
		}
		path, err := archive.ArchiveExports(exportsDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exports directory archived to: %s\n", path)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels(ctx, cmd.OutOrStdout())
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return fmt.Errorf("nothing to transcribe: pass a text or --batch <file>")
	}

	// Create processor
	proc := processor.NewProcessor(flags)
	proc.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !flags.NoLexicon && flags.LexiconPath != "" {
		store, err := lexicon.Open(flags.LexiconPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: lexicon disabled: %v\n", err)
		} else {
			defer store.Close()
			proc.SetLexicon(store)
		}
	}

	if flags.CrossCheck != "" {
		checker, err := crosscheck.New(ctx, crosscheck.Config{
			Provider: flags.CrossCheck,
			Model:    flags.CrossCheckModel,
			APIKey:   cli.GetAPIKey(flags.CrossCheck),
			Timeout:  viper.GetDuration("crosscheck.timeout"),
		})
		if err != nil {
			return fmt.Errorf("failed to set up cross-check: %w", err)
		}
		proc.SetCrossCheck(checker)
	}

	// Handle batch processing
	if flags.BatchFile != "" {
		_, err := proc.ProcessBatch(ctx)
		return err
	}

	// All arguments form one text, so unquoted phrases work too
	return proc.ProcessSingleText(ctx, strings.Join(args, " "))
}
