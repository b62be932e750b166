package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// ValidateOutputFormat checks a --output value
func ValidateOutputFormat(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	default:
		return NewError(ErrCodeInvalidInput, fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

// WriteJSON encodes v as indented JSON
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteYAML encodes v as YAML
func WriteYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(v)
}

// ReportMessage is a report entry prepared for output
type ReportMessage struct {
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
}

// ReportSummary is a report prepared for output
type ReportSummary struct {
	Header   string          `json:"header" yaml:"header"`
	Infos    int             `json:"infos" yaml:"infos"`
	Warnings int             `json:"warnings" yaml:"warnings"`
	Errors   int             `json:"errors" yaml:"errors"`
	Messages []ReportMessage `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// NewReportSummary converts a report, dropping info entries unless verbose
func NewReportSummary(report types.Report, verbose bool) ReportSummary {
	summary := ReportSummary{
		Header:   report.Header,
		Infos:    report.Infos,
		Warnings: report.Warnings,
		Errors:   report.Errors,
	}
	for _, e := range report.Entries {
		if e.Severity == types.SeverityInfo && !verbose {
			continue
		}
		summary.Messages = append(summary.Messages, ReportMessage{Severity: e.Severity.String(), Message: e.Message})
	}
	return summary
}

// WriteReportTable prints the report messages below a table
func WriteReportTable(w io.Writer, summary ReportSummary) {
	fmt.Fprintf(w, "\n%s: %d errors, %d warnings, %d infos\n", summary.Header, summary.Errors, summary.Warnings, summary.Infos)
	for _, m := range summary.Messages {
		fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(m.Severity), m.Message)
	}
}
