package rewrite

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-initfield/pkg/app"
)

const sourceIni = `[General]
fileVersion = 2.00
fileType = iniField

[Initial]
quantity = bedlevel
dataFileName = bed.xyz
dataFileType = sample
interpolationMethod = triangulation

[Initial]
quantity = waterdepth
dataFileName = Depth Zone.pol
dataFileType = polygon
interpolationMethod = constant
operand = +
value = 0.5
`

const zonePolygon = `zone
    3    2
0 0
1 0
1 1
`

func newTestContext(t *testing.T, ini string) (*app.Context, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/src/fields.ini":     ini,
		"/src/bed.xyz":        "0 0 1\n5 5 2\n",
		"/src/Depth Zone.pol": zonePolygon,
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	ctx := app.NewContext()
	ctx.Fs = fs
	ctx.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx.Quiet = true
	return ctx, fs
}

func TestHandle(t *testing.T) {
	ctx, fs := newTestContext(t, sourceIni)

	resp, err := Handle(ctx, &Request{
		Source: app.FileTarget{FilePath: "/src/fields.ini"},
		Target: app.FileTarget{FilePath: "/dst/fields.ini", ParentFilePath: "/dst/data/model.mdu"},
	})
	require.NoError(t, err)
	assert.False(t, resp.Skipped)
	assert.Empty(t, resp.Switched)

	// 1D record, then the two operations with their original names
	require.Len(t, resp.Records, 3)
	assert.Equal(t, "1dField", resp.Records[0].DataFileType)
	assert.Equal(t, "bed.xyz", resp.Records[1].DataFile)
	assert.Equal(t, "Depth Zone.pol", resp.Records[2].DataFile)

	for _, path := range []string{"/dst/fields.ini", "/dst/data/bed.xyz", "/dst/data/Depth Zone.pol", "/dst/data/InitialWaterLevel.ini"} {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}

	content, err := afero.ReadFile(fs, "/dst/fields.ini")
	require.NoError(t, err)
	assert.Regexp(t, `operand\s*=\s*\+`, string(content))
}

func TestHandle_SwitchTo(t *testing.T) {
	ctx, _ := newTestContext(t, sourceIni)

	resp, err := Handle(ctx, &Request{
		Source:   app.FileTarget{FilePath: "/src/fields.ini"},
		Target:   app.FileTarget{FilePath: "/dst/fields.ini"},
		SwitchTo: true,
	})
	require.NoError(t, err)

	require.Len(t, resp.Switched, 1)
	assert.Equal(t, "bed", resp.Switched[0].Operation)
	assert.Equal(t, "/src/bed.xyz", resp.Switched[0].From)
	assert.Equal(t, "/dst/bed.xyz", resp.Switched[0].To)
}

func TestHandle_NothingToWrite(t *testing.T) {
	ctx, fs := newTestContext(t, "[General]\nfileType = iniField\n")

	resp, err := Handle(ctx, &Request{
		Source: app.FileTarget{FilePath: "/src/fields.ini"},
		Target: app.FileTarget{FilePath: "/dst/fields.ini"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Skipped)

	exists, err := afero.Exists(fs, "/dst/fields.ini")
	require.NoError(t, err)
	assert.False(t, exists)

	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, resp, "table"))
	assert.Contains(t, buf.String(), "Nothing to write")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		request *Request
		errCode string
	}{
		{
			name:    "same source and target",
			request: &Request{Source: app.FileTarget{FilePath: "/src/fields.ini"}, Target: app.FileTarget{FilePath: "/src/./fields.ini"}},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "missing target",
			request: &Request{Source: app.FileTarget{FilePath: "/src/fields.ini"}},
			errCode: app.ErrCodeInvalidInput,
		},
		{
			name:    "missing source",
			request: &Request{Source: app.FileTarget{FilePath: "/src/none.ini"}, Target: app.FileTarget{FilePath: "/dst/fields.ini"}},
			errCode: app.ErrCodeFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t, sourceIni)
			_, err := Handle(ctx, tt.request)
			require.Error(t, err)
			var ce *app.CommonError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.errCode, ce.Code)
		})
	}
}

func TestFormatOutput(t *testing.T) {
	resp := &Response{
		Source: "/src/fields.ini",
		Target: "/dst/fields.ini",
		Records: []WrittenRecord{
			{Group: "Initial", Quantity: "bedlevel", DataFile: "bed.xyz", DataFileType: "sample", Operation: "bed"},
		},
		Switched: []SwitchedImport{{Operation: "bed", From: "/src/bed.xyz", To: "/dst/bed.xyz"}},
	}

	var table bytes.Buffer
	require.NoError(t, FormatOutput(&table, resp, "table"))
	assert.Contains(t, table.String(), "Wrote 1 records to /dst/fields.ini")
	assert.Contains(t, table.String(), "bed now reads /dst/bed.xyz")

	var yml bytes.Buffer
	require.NoError(t, FormatOutput(&yml, resp, "yaml"))
	assert.Contains(t, yml.String(), "target: /dst/fields.ini")

	assert.Error(t, FormatOutput(&bytes.Buffer{}, resp, "csv"))
}
