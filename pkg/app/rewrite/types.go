package rewrite

import (
	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// Request represents a rewrite of an initial field file to a new location
type Request struct {
	Source app.FileTarget
	Target app.FileTarget

	// ModelPath is an optional model definition the source is read into
	ModelPath string

	// SwitchTo points imported operations at their copied data files
	SwitchTo bool
}

// Response represents the rewrite results
type Response struct {
	Source     string            `json:"source" yaml:"source"`
	Target     string            `json:"target" yaml:"target"`
	Skipped    bool              `json:"skipped" yaml:"skipped"`
	Records    []WrittenRecord   `json:"records" yaml:"records"`
	Switched   []SwitchedImport  `json:"switched,omitempty" yaml:"switched,omitempty"`
	ReadReport app.ReportSummary `json:"read_report" yaml:"read_report"`
}

// WrittenRecord describes one record of the written file
type WrittenRecord struct {
	Group        string `json:"group" yaml:"group"`
	Quantity     string `json:"quantity" yaml:"quantity"`
	DataFile     string `json:"data_file" yaml:"data_file"`
	DataFileType string `json:"data_file_type" yaml:"data_file_type"`
	Operation    string `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// SwitchedImport records an import operation that now refers to its copy
type SwitchedImport struct {
	Operation string `json:"operation" yaml:"operation"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
}
