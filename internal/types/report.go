package types

import "fmt"

// Severity of a report entry
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lower case severity name
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ReportEntry is one message collected during a read or write
type ReportEntry struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// Report is the consolidated outcome of one operation
type Report struct {
	Header   string        `json:"header" yaml:"header"`
	Entries  []ReportEntry `json:"entries" yaml:"entries"`
	Infos    int           `json:"infos" yaml:"infos"`
	Warnings int           `json:"warnings" yaml:"warnings"`
	Errors   int           `json:"errors" yaml:"errors"`
}

// HasErrors reports whether any error entry was collected
func (r Report) HasErrors() bool {
	return r.Errors > 0
}

// ValidationReason enumerates why a record was rejected
type ValidationReason int

const (
	ReasonNone ValidationReason = iota
	ReasonUnsupportedQuantity
	ReasonUnsupportedAveragingType
	ReasonFrictionTypeMismatch
)

// String returns a short identifier for the reason
func (r ValidationReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnsupportedQuantity:
		return "unsupported_quantity"
	case ReasonUnsupportedAveragingType:
		return "unsupported_averaging_type"
	case ReasonFrictionTypeMismatch:
		return "friction_type_mismatch"
	default:
		return fmt.Sprintf("ValidationReason(%d)", int(r))
	}
}

// ValidationResult is the outcome of validating one record
type ValidationResult struct {
	Valid   bool
	Reason  ValidationReason
	Message string
}

// ValidationSuccess returns a passing result
func ValidationSuccess() ValidationResult {
	return ValidationResult{Valid: true, Reason: ReasonNone}
}

// ValidationFailure returns a failing result with a formatted message
func ValidationFailure(reason ValidationReason, format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason, Message: fmt.Sprintf(format, args...)}
}
