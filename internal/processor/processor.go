package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"

	"codeberg.org/snonux/vymova"
	"codeberg.org/snonux/vymova/internal"
	"codeberg.org/snonux/vymova/internal/accent"
	"codeberg.org/snonux/vymova/internal/batch"
	"codeberg.org/snonux/vymova/internal/cli"
	"codeberg.org/snonux/vymova/internal/crosscheck"
	"codeberg.org/snonux/vymova/internal/export"
	"codeberg.org/snonux/vymova/internal/lexicon"
)

// Lexicon is the persistent store consulted before transcribing
type Lexicon interface {
	Get(ctx context.Context, text, variant string, checkAccent bool) (lexicon.Entry, bool, error)
	Put(ctx context.Context, e lexicon.Entry) error
	BeginRun() string
}

// Source tells where a result came from
type Source string

const (
	SourceRules   Source = "rules"
	SourceCache   Source = "cache"
	SourceLexicon Source = "lexicon"
)

// Result is the outcome for one batch entry
type Result struct {
	Entry  batch.Entry
	IPA    string
	Err    error
	Source Source

	// Comparison is set when a cross-check provider answered
	Comparison *crosscheck.Comparison
	// CheckErr is the cross-check failure, if any
	CheckErr error
}

// Status classifies the result against its expected transcription
func (r Result) Status() string {
	switch {
	case r.Err != nil:
		return export.StatusError
	case r.Entry.Expected == "":
		return export.StatusOK
	case r.Entry.Expected == r.IPA:
		return export.StatusMatch
	}
	return export.StatusMismatch
}

// Record converts the result for export
func (r Result) Record() export.Record {
	rec := export.Record{
		Text:     r.Entry.Text,
		IPA:      r.IPA,
		Expected: r.Entry.Expected,
		Status:   r.Status(),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	if r.Comparison != nil {
		rec.Reference = r.Comparison.Reference
		rec.Distance = r.Comparison.Distance
	}
	return rec
}

// Summary counts the outcomes of a batch run
type Summary struct {
	RunID        string
	Total        int
	Transcribed  int
	Reused       int
	Matched      int
	Mismatched   int
	Failed       int
	CrossChecked int
	// Output is the export file, empty when written to stdout
	Output string
}

func (s *Summary) add(r Result) {
	s.Total++
	switch {
	case r.Err != nil:
		s.Failed++
	case r.Source == SourceRules:
		s.Transcribed++
	default:
		s.Reused++
	}

	switch r.Status() {
	case export.StatusMatch:
		s.Matched++
	case export.StatusMismatch:
		s.Mismatched++
	}
	if r.Comparison != nil {
		s.CrossChecked++
	}
}

// Processor handles the main transcription logic
type Processor struct {
	flags       *cli.Flags
	transcriber *vymova.Transcriber
	cache       *TranscriptionCache
	lexicon     Lexicon
	checker     crosscheck.Provider

	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a new processor for flags
func NewProcessor(flags *cli.Flags) *Processor {
	opts := []vymova.Option{vymova.WithCheckAccent(flags.CheckAccent)}
	if flags.Legacy {
		opts = append(opts, vymova.WithLegacy())
	}

	return &Processor{
		flags:       flags,
		transcriber: vymova.New(opts...),
		cache:       NewTranscriptionCache(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

// SetOutput redirects normal and error output
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// SetLexicon enables the persistent lexicon
func (p *Processor) SetLexicon(l Lexicon) {
	p.lexicon = l
}

// SetCrossCheck enables comparison against a reference provider
func (p *Processor) SetCrossCheck(provider crosscheck.Provider) {
	p.checker = provider
}

// Cache returns the in-memory transcription cache
func (p *Processor) Cache() *TranscriptionCache {
	return p.cache
}

// ProcessSingleText transcribes one text from the command line
func (p *Processor) ProcessSingleText(ctx context.Context, text string) error {
	if p.lexicon != nil {
		p.lexicon.BeginRun()
	}

	res := p.process(ctx, batch.Entry{Text: text, Line: 1})
	if res.Err != nil {
		return fmt.Errorf("failed to transcribe %q: %w", text, res.Err)
	}

	fmt.Fprintln(p.stdout, res.IPA)
	p.printCrossCheck(p.stdout, res)
	return nil
}

// ProcessBatch transcribes every entry of the batch file and writes the export
func (p *Processor) ProcessBatch(ctx context.Context) (Summary, error) {
	if err := export.ValidateFormat(p.flags.Format); err != nil {
		return Summary{}, err
	}

	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{RunID: p.beginRun()}
	summary.Output = p.exportPath(summary.RunID)

	// Progress goes to stderr when stdout carries the export
	progress := p.stdout
	if summary.Output == "" {
		progress = p.stderr
	}
	fmt.Fprintf(progress, "Transcribing %d entries (%s, %d workers)\n",
		len(entries), p.transcriber.Variant(), p.workers())

	results := p.Transcribe(ctx, entries)

	exporter := export.NewExporter(&export.Options{
		Format:         p.flags.Format,
		IncludeHeaders: true,
	})

	var errs error
	for _, res := range results {
		summary.add(res)
		exporter.Add(res.Record())

		if res.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", res.Entry.Line, res.Err))
			fmt.Fprintf(p.stderr, "Error on line %d (%s): %v\n", res.Entry.Line, res.Entry.Text, res.Err)
			continue
		}
		if res.CheckErr != nil {
			fmt.Fprintf(p.stderr, "Warning: cross-check failed for '%s': %v\n", res.Entry.Text, res.CheckErr)
		}
		if p.flags.Verbose {
			fmt.Fprintf(progress, "%4d  %-24s %s  [%s]\n", res.Entry.Line, res.Entry.Text, res.IPA, res.Source)
			p.printCrossCheck(progress, res)
		}
		if res.Status() == export.StatusMismatch {
			fmt.Fprintf(progress, "Mismatch on line %d: %s\n  expected: %s\n  got:      %s\n",
				res.Entry.Line, res.Entry.Text, res.Entry.Expected, res.IPA)
		}
	}

	if summary.Output == "" {
		if err := exporter.Write(p.stdout); err != nil {
			return summary, fmt.Errorf("failed to write export: %w", err)
		}
	} else {
		if err := exporter.WriteFile(summary.Output); err != nil {
			return summary, err
		}
		fmt.Fprintf(progress, "Export written to: %s\n", summary.Output)
	}

	printSummary(progress, summary)
	return summary, errs
}

// Transcribe resolves entries on the worker pool. Results keep the order of
// entries.
func (p *Processor) Transcribe(ctx context.Context, entries []batch.Entry) []Result {
	results := make([]Result, len(entries))

	wp := pool.New().WithMaxGoroutines(p.workers())
	for i, entry := range entries {
		wp.Go(func() {
			results[i] = p.process(ctx, entry)
		})
	}
	wp.Wait()

	return results
}

func (p *Processor) process(ctx context.Context, entry batch.Entry) Result {
	res := Result{Entry: entry}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	text := accent.RemovePronNotations(entry.Text, p.flags.StripGrave)
	res.IPA, res.Source, res.Err = p.resolve(ctx, text)
	if res.Err != nil || p.checker == nil {
		return res
	}

	ref, err := p.checker.Transcribe(ctx, text)
	if err != nil {
		res.CheckErr = err
		return res
	}
	cmp := crosscheck.Compare(res.IPA, ref)
	res.Comparison = &cmp
	return res
}

// resolve consults the cache, then the lexicon, and transcribes on a miss
func (p *Processor) resolve(ctx context.Context, text string) (string, Source, error) {
	if out, ok := p.cache.Get(text); ok {
		return out.IPA, SourceCache, out.Err
	}

	variant := p.transcriber.Variant()
	check := p.transcriber.CheckAccent()

	if p.lexicon != nil {
		entry, found, err := p.lexicon.Get(ctx, text, variant, check)
		if err != nil {
			fmt.Fprintf(p.stderr, "Warning: %v\n", err)
		} else if found {
			p.cache.Add(text, entry.IPA, nil)
			return entry.IPA, SourceLexicon, nil
		}
	}

	ipa, err := p.transcriber.Transcribe(text)
	p.cache.Add(text, ipa, err)
	if err != nil {
		return "", SourceRules, err
	}

	if p.lexicon != nil {
		err := p.lexicon.Put(ctx, lexicon.Entry{
			Text:        text,
			IPA:         ipa,
			Variant:     variant,
			CheckAccent: check,
		})
		if err != nil {
			fmt.Fprintf(p.stderr, "Warning: %v\n", err)
		}
	}
	return ipa, SourceRules, nil
}

func (p *Processor) beginRun() string {
	if p.lexicon != nil {
		return p.lexicon.BeginRun()
	}
	return uuid.New().String()
}

func (p *Processor) workers() int {
	if p.flags.Workers < 1 {
		return 1
	}
	return p.flags.Workers
}

// exportPath returns the file the export goes to, empty for stdout
func (p *Processor) exportPath(runID string) string {
	if p.flags.OutputPath != "" {
		return p.flags.OutputPath
	}
	if !p.flags.Save {
		return ""
	}

	base := filepath.Base(p.flags.BatchFile)
	name := internal.SanitizeFilename(strings.TrimSuffix(base, filepath.Ext(base)))
	if name == "" {
		name = "batch"
	}
	if len(runID) > 8 {
		runID = runID[:8]
	}

	dir := p.flags.OutputDir
	if dir == "" {
		dir = filepath.Join(cli.StateDir(), "exports")
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.%s", name, runID, export.Extension(p.flags.Format)))
}

func (p *Processor) printCrossCheck(w io.Writer, res Result) {
	if res.Comparison == nil {
		return
	}
	fmt.Fprintf(w, "  reference (%s): %s  distance %d, similarity %.0f%%\n",
		p.checker.Name(), res.Comparison.Reference, res.Comparison.Distance, res.Comparison.Similarity*100)
}

func printSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\n=== Batch Transcription Summary ===\n")
	fmt.Fprintf(w, "Run: %s\n", s.RunID)
	fmt.Fprintf(w, "Total entries: %d\n", s.Total)
	fmt.Fprintf(w, "Transcribed: %d\n", s.Transcribed)
	fmt.Fprintf(w, "Reused (cache or lexicon): %d\n", s.Reused)
	if s.Matched+s.Mismatched > 0 {
		fmt.Fprintf(w, "Matched expected: %d\n", s.Matched)
		fmt.Fprintf(w, "Mismatched: %d\n", s.Mismatched)
	}
	if s.CrossChecked > 0 {
		fmt.Fprintf(w, "Cross-checked: %d\n", s.CrossChecked)
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "Errors: %d\n", s.Failed)
	}
	fmt.Fprintf(w, "===================================\n")
}
