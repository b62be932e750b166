package report

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

func TestHandler_LogReport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := NewHandler(logger)

	h.ReportInfo("read %d fields", 3)
	h.ReportWarning("unknown key %q", "unit")
	h.ReportError("missing %s", "quantity")

	r := h.LogReport("Reading initial field file")
	require.Len(t, r.Entries, 3)
	assert.Equal(t, 1, r.Infos)
	assert.Equal(t, 1, r.Warnings)
	assert.Equal(t, 1, r.Errors)
	assert.True(t, r.HasErrors())
	assert.Equal(t, "read 3 fields", r.Entries[0].Message)
	assert.Equal(t, types.SeverityWarning, r.Entries[1].Severity)

	assert.Contains(t, buf.String(), "Reading initial field file")
	assert.Contains(t, buf.String(), "errors=1")

	// the handler starts over after a report
	again := h.LogReport("second")
	assert.Empty(t, again.Entries)
	assert.False(t, again.HasErrors())
}

func TestNewHandler_NilLogger(t *testing.T) {
	h := NewHandler(nil)
	h.ReportInfo("hello")
	assert.Len(t, h.Entries(), 1)
}
