package inspect

import (
	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// Request represents an initial field inspection request
type Request struct {
	Target app.FileTarget

	// ModelPath is an optional model definition; without one an empty model is used
	ModelPath string
}

// Response represents the inspection results
type Response struct {
	File              string            `json:"file" yaml:"file"`
	ParentFile        string            `json:"parent_file" yaml:"parent_file"`
	Records           []RecordResult    `json:"records" yaml:"records"`
	InitialConditions int               `json:"initial_conditions" yaml:"initial_conditions"`
	Parameters        int               `json:"parameters" yaml:"parameters"`
	Imported          int               `json:"imported" yaml:"imported"`
	Invalid           int               `json:"invalid" yaml:"invalid"`
	Model             ModelSummary      `json:"model" yaml:"model"`
	Report            app.ReportSummary `json:"report" yaml:"report"`
}

// RecordResult describes one record of the initial field file
type RecordResult struct {
	Group         string   `json:"group" yaml:"group"`
	Quantity      string   `json:"quantity" yaml:"quantity"`
	DataFile      string   `json:"data_file" yaml:"data_file"`
	DataFileType  string   `json:"data_file_type" yaml:"data_file_type"`
	Interpolation string   `json:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Operand       string   `json:"operand,omitempty" yaml:"operand,omitempty"`
	Location      string   `json:"location" yaml:"location"`
	Value         *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Valid         bool     `json:"valid" yaml:"valid"`
	Reason        string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Imported      bool     `json:"imported" yaml:"imported"`
	Operation     string   `json:"operation,omitempty" yaml:"operation,omitempty"`
}

// ModelSummary describes the model after the file was read into it
type ModelSummary struct {
	FrictionType       string         `json:"friction_type" yaml:"friction_type"`
	InitialCondition2D string         `json:"initial_condition_2d" yaml:"initial_condition_2d"`
	InitialCondition1D string         `json:"initial_condition_1d" yaml:"initial_condition_1d"`
	InitialValue1D     float64        `json:"initial_value_1d" yaml:"initial_value_1d"`
	Operations         map[string]int `json:"operations" yaml:"operations"`
}

// Status returns a short record state for table output
func (r *RecordResult) Status() string {
	switch {
	case !r.Valid:
		return "invalid"
	case r.Imported:
		return "imported"
	case r.DataFileType == "1dField":
		return "1d"
	default:
		return "skipped"
	}
}
