// Package definition loads model definitions from YAML, JSON or TOML files.
//
// A definition file describes everything the initial field file needs from a model:
//
//	friction_type: manning
//	initial_condition:
//	  quantity_2d: waterlevel
//	  quantity_1d: waterdepth
//	  value_1d: 1.5
//	network:
//	  nodes: [{name: n1, x: 0, y: 0}]
//	spatial_operations:
//	  - quantity: bedlevel
//	    kind: import_samples
//	    file: bathymetry.xyz
//	  - quantity: Initial Water Level
//	    kind: set_value
//	    name: harbour
//	    value: 1.2
//	    operation: maximum
//	    polygon_file: harbour.pol
//
// Relative file references resolve against the directory of the definition file.
package definition

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/parsers/polygon"
	"github.com/deploymenttheory/go-initfield/internal/parsers/samples"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

type definitionFile struct {
	FrictionType      types.FrictionType `mapstructure:"friction_type"`
	InitialCondition  initialCondition   `mapstructure:"initial_condition"`
	Network           model.Network      `mapstructure:"network"`
	SpatialOperations []operationEntry   `mapstructure:"spatial_operations"`
}

type initialCondition struct {
	Quantity2D types.InitialConditionQuantity `mapstructure:"quantity_2d"`
	Quantity1D types.InitialConditionQuantity `mapstructure:"quantity_1d"`
	Value1D    float64                        `mapstructure:"value_1d"`
}

// operationEntry is the union of the settings of every operation kind; pointers mark
// settings whose default is not the zero value.
type operationEntry struct {
	Quantity string              `mapstructure:"quantity"`
	Kind     model.OperationKind `mapstructure:"kind"`
	Name     string              `mapstructure:"name"`

	File                   string                     `mapstructure:"file"`
	InterpolationMethod    *types.InterpolationMethod `mapstructure:"interpolation_method"`
	AveragingType          types.AveragingType        `mapstructure:"averaging_type"`
	RelativeSearchCellSize *float64                   `mapstructure:"relative_search_cell_size"`
	MinSamplePoints        *int                       `mapstructure:"min_sample_points"`
	AveragingPercentile    float64                    `mapstructure:"averaging_percentile"`
	Extrapolate            bool                       `mapstructure:"extrapolate"`
	Operand                types.Operand              `mapstructure:"operand"`

	Value       float64                      `mapstructure:"value"`
	Operation   model.PointwiseOperationType `mapstructure:"operation"`
	Polygons    []types.Polygon              `mapstructure:"polygons"`
	PolygonFile string                       `mapstructure:"polygon_file"`

	Samples     []types.Point `mapstructure:"samples"`
	SamplesFile string        `mapstructure:"samples_file"`
}

// Load reads a model definition from path on fs. A nil registry selects the default one.
func Load(fs afero.Fs, path string, registry *quantities.Registry) (*model.Definition, error) {
	if path == "" {
		return nil, errors.InvalidArgument("definition", "Load", "path")
	}
	if registry == nil {
		registry = quantities.DefaultRegistry()
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetDefault("friction_type", "chezy")
	v.SetDefault("initial_condition.quantity_2d", "waterlevel")
	v.SetDefault("initial_condition.quantity_1d", "waterlevel")

	if err := v.ReadInConfig(); err != nil {
		if exists, _ := afero.Exists(fs, path); !exists {
			return nil, errors.WrapInvalid(fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
				"definition", "Load", "read model definition")
		}
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"definition", "Load", "read model definition")
	}

	var file definitionFile
	if err := v.Unmarshal(&file, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		enumHook(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"definition", "Load", "decode model definition")
	}

	def := model.NewDefinition()
	def.SetFrictionType(file.FrictionType)
	def.SetInitialConditionQuantity2D(file.InitialCondition.Quantity2D)
	def.SetInitialConditionQuantity1D(file.InitialCondition.Quantity1D)
	def.SetInitialConditionValue1D(file.InitialCondition.Value1D)
	network := file.Network
	def.SetNetwork(&network)

	baseDir := filepath.Dir(path)
	for i, entry := range file.SpatialOperations {
		dataItemName, err := resolveDataItemName(registry, entry.Quantity)
		if err != nil {
			return nil, errors.WrapInvalid(err, "definition", "Load", fmt.Sprintf("spatial operation %d", i+1))
		}
		op, err := buildOperation(fs, baseDir, entry)
		if err != nil {
			return nil, errors.WrapInvalid(err, "definition", "Load", fmt.Sprintf("spatial operation %d", i+1))
		}
		def.AddSpatialOperation(dataItemName, op)
	}

	return def, nil
}

// enumHook decodes enumeration names into their typed values
func enumHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimSpace(reflect.ValueOf(data).String())

		switch to {
		case reflect.TypeOf(types.FrictionType(0)):
			return types.ParseFrictionType(s)
		case reflect.TypeOf(types.InitialConditionQuantity(0)):
			return types.ParseInitialConditionQuantity(s)
		case reflect.TypeOf(types.InterpolationMethod(0)):
			return types.ParseInterpolationMethod(s)
		case reflect.TypeOf(types.AveragingType(0)):
			return types.ParseAveragingType(s)
		case reflect.TypeOf(types.Operand(0)):
			return types.ParseOperand(s)
		case reflect.TypeOf(model.OperationKind(0)):
			return model.ParseOperationKind(strings.ToLower(s))
		case reflect.TypeOf(model.PointwiseOperationType(0)):
			return model.ParsePointwiseOperationType(strings.ToLower(s))
		}
		return data, nil
	}
}

// resolveDataItemName accepts a quantity token or a data item name
func resolveDataItemName(registry *quantities.Registry, s string) (string, error) {
	if q, err := types.ParseQuantity(s); err == nil {
		if name, ok := registry.DataItemName(q); ok {
			return name, nil
		}
		return "", fmt.Errorf("%w: quantity %s", errors.ErrUnsupportedValue, q)
	}
	for _, e := range registry.Entries() {
		if strings.EqualFold(strings.TrimSpace(s), e.DataItemName) {
			return e.DataItemName, nil
		}
	}
	return "", fmt.Errorf("%w: quantity %q", errors.ErrUnsupportedValue, s)
}

func buildOperation(fs afero.Fs, baseDir string, entry operationEntry) (model.SpatialOperation, error) {
	switch entry.Kind {
	case model.KindImportSamples:
		if entry.File == "" {
			return nil, fmt.Errorf("import_samples needs a file")
		}
		path := resolvePath(baseDir, entry.File)
		op := model.NewImportSamplesOperation(nameOr(entry.Name, path), path)
		if entry.InterpolationMethod != nil {
			op.InterpolationMethod = *entry.InterpolationMethod
		}
		if entry.RelativeSearchCellSize != nil {
			op.RelativeSearchCellSize = *entry.RelativeSearchCellSize
		}
		if entry.MinSamplePoints != nil {
			op.MinSamplePoints = *entry.MinSamplePoints
		}
		op.AveragingType = entry.AveragingType
		op.AveragingPercentile = entry.AveragingPercentile
		op.Extrapolate = entry.Extrapolate
		op.Operand = entry.Operand
		return op, nil

	case model.KindSetValue:
		mask := entry.Polygons
		if entry.PolygonFile != "" {
			path := resolvePath(baseDir, entry.PolygonFile)
			polygons, err := readWith(fs, path, polygon.Read)
			if err != nil {
				return nil, err
			}
			mask = append(mask, polygons...)
		}
		return model.NewSetValueOperation(nameOr(entry.Name, entry.PolygonFile), entry.Value, entry.Operation, mask...), nil

	case model.KindAddSamples:
		points := entry.Samples
		if entry.SamplesFile != "" {
			path := resolvePath(baseDir, entry.SamplesFile)
			read, err := readWith(fs, path, samples.Read)
			if err != nil {
				return nil, err
			}
			points = append(points, read...)
		}
		return model.NewAddSamplesOperation(nameOr(entry.Name, entry.SamplesFile), points...), nil

	default:
		return nil, fmt.Errorf("%w: kind %s", errors.ErrUnsupportedOperation, entry.Kind)
	}
}

func readWith[T any](fs afero.Fs, path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}
	defer file.Close()

	items, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrParsingFailed, path, err)
	}
	return items, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" || baseDir == "." {
		return path
	}
	return filepath.Join(baseDir, path)
}

// nameOr falls back to the base name of file without its extension
func nameOr(name, file string) string {
	if name != "" {
		return name
	}
	base := filepath.Base(file)
	if file == "" || base == "." {
		return "operation"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
