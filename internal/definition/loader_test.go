package definition

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

const modelYAML = `friction_type: manning
initial_condition:
  quantity_2d: waterdepth
  quantity_1d: waterdepth
  value_1d: 1.5
network:
  nodes:
    - {name: n1, x: 0, y: 0}
    - {name: n2, x: 100, y: 0}
  branches:
    - {name: b1, source: n1, target: n2, length: 100}
spatial_operations:
  - quantity: bedlevel
    kind: import_samples
    file: data/bathymetry.xyz
    interpolation_method: averaging
    averaging_type: invDist
    min_sample_points: 3
    operand: "+"
  - quantity: Initial Water Depth
    kind: set_value
    name: harbour
    value: 1.2
    operation: maximum
    polygon_file: harbour.pol
  - quantity: frictioncoefficient
    kind: set_value
    value: 0.03
    polygons:
      - name: inline
        points:
          - {x: 0, y: 0}
          - {x: 5, y: 0}
          - {x: 5, y: 5}
  - quantity: InfiltrationCapacity
    kind: add_samples
    samples_file: measured.xyz
    samples:
      - {x: 9, y: 9, value: 0.1}
`

const harbourPolygon = `harbour
    3    2
0 0
1 0
1 1
`

func newDefinitionFs(t *testing.T, name, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/"+name, []byte(content), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/project/harbour.pol", []byte(harbourPolygon), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/project/measured.xyz", []byte("1 2 0.5\n3 4 0.6\n"), 0o644))
	return fs
}

func TestLoad_YAML(t *testing.T) {
	fs := newDefinitionFs(t, "model.yaml", modelYAML)

	def, err := Load(fs, "/project/model.yaml", nil)
	require.NoError(t, err)

	assert.Equal(t, types.FrictionManning, def.FrictionType())
	assert.Equal(t, types.InitialConditionWaterDepth, def.InitialConditionQuantity2D())
	assert.Equal(t, types.InitialConditionWaterDepth, def.InitialConditionQuantity1D())
	assert.InDelta(t, 1.5, def.InitialConditionValue1D(), 1e-9)
	assert.Equal(t, 2, def.Network().VertexCount())
	assert.Equal(t, 1, def.Network().EdgeCount())

	bed := def.SpatialOperations(quantities.BedLevelDataItemName)
	require.Len(t, bed, 1)
	imported, ok := bed[0].(*model.ImportSamplesOperation)
	require.True(t, ok)
	assert.Equal(t, "/project/data/bathymetry.xyz", imported.FilePath)
	assert.Equal(t, "bathymetry", imported.Name())
	assert.Equal(t, types.InterpolationAveraging, imported.InterpolationMethod)
	assert.Equal(t, types.AveragingInverseWeightedDistance, imported.AveragingType)
	assert.Equal(t, 3, imported.MinSamplePoints)
	assert.InDelta(t, types.DefaultAveragingRelSize, imported.RelativeSearchCellSize, 1e-9)
	assert.Equal(t, types.OperandAdd, imported.Operand)

	depth := def.SpatialOperations(quantities.InitialWaterDepthDataItemName)
	require.Len(t, depth, 1)
	harbour, ok := depth[0].(*model.SetValueOperation)
	require.True(t, ok)
	assert.Equal(t, "harbour", harbour.Name())
	assert.Equal(t, model.PointwiseMaximum, harbour.OperationType)
	require.Len(t, harbour.Mask, 1)
	assert.Len(t, harbour.Mask[0].Points, 3)

	friction := def.SpatialOperations(quantities.FrictionCoefficientDataItemName)
	require.Len(t, friction, 1)
	inline, ok := friction[0].(*model.SetValueOperation)
	require.True(t, ok)
	assert.Equal(t, "operation", inline.Name())
	assert.Equal(t, model.PointwiseOverwrite, inline.OperationType)
	require.Len(t, inline.Mask, 1)
	assert.Equal(t, "inline", inline.Mask[0].Name)

	infiltration := def.SpatialOperations(quantities.InfiltrationCapacityDataItemName)
	require.Len(t, infiltration, 1)
	added, ok := infiltration[0].(*model.AddSamplesOperation)
	require.True(t, ok)
	assert.Equal(t, "measured", added.Name())
	assert.Len(t, added.Samples, 3)
}

func TestLoad_JSONDefaults(t *testing.T) {
	fs := newDefinitionFs(t, "model.json", `{"friction_type": 2}`)

	def, err := Load(fs, "/project/model.json", nil)
	require.NoError(t, err)

	assert.Equal(t, types.FrictionWhiteColebrook, def.FrictionType())
	assert.Equal(t, types.InitialConditionWaterLevel, def.InitialConditionQuantity2D())
	assert.Equal(t, types.InitialConditionWaterLevel, def.InitialConditionQuantity1D())
	assert.True(t, def.Network().IsEmpty())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		path     string
		sentinel error
	}{
		{name: "empty path", path: "", sentinel: errors.ErrInvalidArgument},
		{name: "missing file", path: "/project/absent.yaml", sentinel: errors.ErrFileNotFound},
		{name: "unknown friction type", content: "friction_type: darcy\n", sentinel: errors.ErrParsingFailed},
		{name: "unknown quantity", content: "spatial_operations:\n  - quantity: salinity\n    kind: add_samples\n", sentinel: errors.ErrUnsupportedValue},
		{name: "unknown kind", content: "spatial_operations:\n  - quantity: bedlevel\n    kind: interpolate\n", sentinel: errors.ErrParsingFailed},
		{name: "missing polygon file", content: "spatial_operations:\n  - quantity: bedlevel\n    kind: set_value\n    polygon_file: nope.pol\n", sentinel: errors.ErrFileNotFound},
		{name: "import without file", content: "spatial_operations:\n  - quantity: bedlevel\n    kind: import_samples\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newDefinitionFs(t, "model.yaml", tt.content)
			path := tt.path
			if path == "" && tt.content != "" {
				path = "/project/model.yaml"
			}

			_, err := Load(fs, path, nil)
			require.Error(t, err)
			assert.True(t, errors.IsInvalid(err))
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel), err.Error())
			}
		})
	}
}

func TestResolveDataItemName(t *testing.T) {
	registry := quantities.DefaultRegistry()

	name, err := resolveDataItemName(registry, "waterlevel")
	require.NoError(t, err)
	assert.Equal(t, quantities.InitialWaterLevelDataItemName, name)

	name, err = resolveDataItemName(registry, "bed level")
	require.NoError(t, err)
	assert.Equal(t, quantities.BedLevelDataItemName, name)

	_, err = resolveDataItemName(registry, "")
	assert.Error(t, err)
}
