package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported export formats
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Record statuses
const (
	StatusOK       = "ok"
	StatusMatch    = "match"
	StatusMismatch = "mismatch"
	StatusError    = "error"
)

// Record is one exported transcription
type Record struct {
	Text     string `yaml:"text"`
	IPA      string `yaml:"ipa"`
	Expected string `yaml:"expected,omitempty"`
	Status   string `yaml:"status"`
	Error    string `yaml:"error,omitempty"`
	// Reference is an optional cross-check transcription
	Reference string `yaml:"reference,omitempty"`
	Distance  int    `yaml:"distance,omitempty"`
}

// Options configures the export
type Options struct {
	Format         string // text, csv or yaml
	IncludeHeaders bool   // Include the CSV header row
}

// DefaultOptions returns sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Format:         FormatText,
		IncludeHeaders: true,
	}
}

// ValidateFormat checks that format is supported
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatCSV, FormatYAML:
		return nil
	}
	return fmt.Errorf("unsupported export format %q (use text, csv or yaml)", format)
}

// Extension returns the file extension for format
func Extension(format string) string {
	if format == FormatText {
		return "tsv"
	}
	return format
}

// Exporter collects records and writes them in one format
type Exporter struct {
	options *Options
	records []Record
}

// NewExporter creates a new exporter
func NewExporter(options *Options) *Exporter {
	if options == nil {
		options = DefaultOptions()
	}
	return &Exporter{
		options: options,
		records: make([]Record, 0),
	}
}

// Add appends a record
func (e *Exporter) Add(r Record) {
	e.records = append(e.records, r)
}

// Records returns the collected records
func (e *Exporter) Records() []Record {
	return e.records
}

// Write writes all records to w
func (e *Exporter) Write(w io.Writer) error {
	switch e.options.Format {
	case FormatText:
		return e.writeText(w)
	case FormatCSV:
		return e.writeCSV(w)
	case FormatYAML:
		return e.writeYAML(w)
	}
	return ValidateFormat(e.options.Format)
}

// WriteFile writes all records to path, creating parent directories
func (e *Exporter) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := e.Write(file); err != nil {
		return err
	}
	return file.Close()
}

func (e *Exporter) writeText(w io.Writer) error {
	for _, r := range e.records {
		ipa := r.IPA
		if r.Status == StatusError {
			ipa = "!" + r.Error
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Text, strings.ReplaceAll(ipa, "\n", " ")); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

func (e *Exporter) writeCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if e.options.IncludeHeaders {
		if err := writer.Write([]string{"text", "ipa", "expected", "status", "reference", "distance"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, r := range e.records {
		// distance stays empty when no reference was fetched
		var distance string
		if r.Reference != "" {
			distance = strconv.Itoa(r.Distance)
		}
		if err := writer.Write([]string{r.Text, r.IPA, r.Expected, r.Status, r.Reference, distance}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (e *Exporter) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e.records); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
