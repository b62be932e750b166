// Package report collects messages raised while reading or writing an initial field
// file and emits them as one consolidated report.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Handler implements interfaces.LogHandler on top of a structured logger
type Handler struct {
	logger  *slog.Logger
	entries []types.ReportEntry
}

// NewHandler creates a handler, a nil logger falls back to slog.Default()
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// ReportInfo records an informational entry
func (h *Handler) ReportInfo(format string, args ...any) {
	h.add(types.SeverityInfo, format, args...)
}

// ReportWarning records a warning entry
func (h *Handler) ReportWarning(format string, args ...any) {
	h.add(types.SeverityWarning, format, args...)
}

// ReportError records an error entry
func (h *Handler) ReportError(format string, args ...any) {
	h.add(types.SeverityError, format, args...)
}

// Entries returns the entries collected so far
func (h *Handler) Entries() []types.ReportEntry {
	out := make([]types.ReportEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// LogReport emits a summary of the collected entries and resets the handler
func (h *Handler) LogReport(header string) types.Report {
	r := types.Report{Header: header, Entries: h.Entries()}
	for _, e := range r.Entries {
		switch e.Severity {
		case types.SeverityInfo:
			r.Infos++
		case types.SeverityWarning:
			r.Warnings++
		case types.SeverityError:
			r.Errors++
		}
	}
	h.entries = nil

	if len(r.Entries) == 0 {
		return r
	}

	level := slog.LevelInfo
	switch {
	case r.Errors > 0:
		level = slog.LevelError
	case r.Warnings > 0:
		level = slog.LevelWarn
	}
	h.logger.Log(context.Background(), level, header,
		"infos", r.Infos,
		"warnings", r.Warnings,
		"errors", r.Errors,
	)
	return r
}

func (h *Handler) add(severity types.Severity, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	h.entries = append(h.entries, types.ReportEntry{Severity: severity, Message: msg})

	switch severity {
	case types.SeverityWarning:
		h.logger.Warn(msg)
	case types.SeverityError:
		h.logger.Error(msg)
	default:
		h.logger.Debug(msg)
	}
}
