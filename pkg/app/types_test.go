package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

func TestFileTarget(t *testing.T) {
	tests := []struct {
		name    string
		target  FileTarget
		wantErr bool
		parent  string
	}{
		{name: "file only", target: FileTarget{FilePath: "/m/fields.ini"}, parent: "/m/fields.ini"},
		{name: "with parent", target: FileTarget{FilePath: "/m/fields.ini", ParentFilePath: "/m/model.mdu"}, parent: "/m/model.mdu"},
		{name: "upper case extension", target: FileTarget{FilePath: "/m/FIELDS.INI"}, parent: "/m/FIELDS.INI"},
		{name: "empty", target: FileTarget{}, wantErr: true},
		{name: "wrong extension", target: FileTarget{FilePath: "/m/fields.txt"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.parent, tt.target.Parent())
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "missing file", err: errors.WrapInvalid(fmt.Errorf("%w: x", errors.ErrFileNotFound), "C", "M", "open"), code: ErrCodeFileNotFound},
		{name: "parse failure", err: fmt.Errorf("%w: bad", errors.ErrParsingFailed), code: ErrCodeParseFailure},
		{name: "invalid argument", err: errors.InvalidArgument("C", "M", "path"), code: ErrCodeInvalidInput},
		{name: "unsupported", err: errors.Unsupported("C", "M", "subtract"), code: ErrCodeUnsupported},
		{name: "deadline", err: context.DeadlineExceeded, code: ErrCodeTimeout},
		{name: "other", err: fmt.Errorf("disk full"), code: ErrCodeWriteFailure},
		{name: "already classified", err: NewError(ErrCodeInvalidInput, "bad", nil), code: ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := ClassifyError("operation failed", tt.err)
			assert.Equal(t, tt.code, ce.Code)
		})
	}
}

func TestNewReportSummary(t *testing.T) {
	report := types.Report{
		Header: "Reading x",
		Entries: []types.ReportEntry{
			{Severity: types.SeverityInfo, Message: "imported"},
			{Severity: types.SeverityWarning, Message: "unknown key"},
			{Severity: types.SeverityError, Message: "bad record"},
		},
		Infos: 1, Warnings: 1, Errors: 1,
	}

	quiet := NewReportSummary(report, false)
	assert.Len(t, quiet.Messages, 2)
	assert.Equal(t, "warning", quiet.Messages[0].Severity)

	verbose := NewReportSummary(report, true)
	assert.Len(t, verbose.Messages, 3)

	var buf bytes.Buffer
	WriteReportTable(&buf, quiet)
	assert.Contains(t, buf.String(), "Reading x: 1 errors, 1 warnings, 1 infos")
	assert.Contains(t, buf.String(), "[ERROR] bad record")
}

func TestWriteEncoders(t *testing.T) {
	value := map[string]int{"records": 2}

	var js bytes.Buffer
	require.NoError(t, WriteJSON(&js, value))
	assert.JSONEq(t, `{"records": 2}`, js.String())

	var ym bytes.Buffer
	require.NoError(t, WriteYAML(&ym, value))
	assert.YAMLEq(t, "records: 2\n", ym.String())

	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestContext_Logging(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		quiet     bool
		wantInfo  bool
		wantError bool
	}{
		{name: "default", wantError: true},
		{name: "verbose", verbose: true, wantInfo: true, wantError: true},
		{name: "quiet", quiet: true},
		{name: "quiet wins over verbose", verbose: true, quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := NewContext()
			ctx.Logger = slog.New(slog.NewTextHandler(&buf, nil))
			ctx.Verbose = tt.verbose
			ctx.Quiet = tt.quiet

			ctx.Log("progress")
			ctx.Error("failure", "file", "fields.ini")

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("msg=progress")))
			assert.Equal(t, tt.wantError, bytes.Contains(buf.Bytes(), []byte("msg=failure file=fields.ini")))
		})
	}
}
