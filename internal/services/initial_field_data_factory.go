package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hashicorp/go-set/v2"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/parsers/onedfield"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

const (
	polygonExtension = ".pol"
	samplesExtension = ".xyz"
)

// InitialFieldDataFactory builds initial field records from a model definition
type InitialFieldDataFactory struct {
	registry *quantities.Registry
}

// NewInitialFieldDataFactory creates a factory for the quantities in registry
func NewInitialFieldDataFactory(registry *quantities.Registry) *InitialFieldDataFactory {
	if registry == nil {
		registry = quantities.DefaultRegistry()
	}
	return &InitialFieldDataFactory{registry: registry}
}

// CreateFromModelDefinition returns the 1D field record followed by one record per spatial
// operation. Names remembered in fileNames are restored; all other names are made unique
// within this call.
func (f *InitialFieldDataFactory) CreateFromModelDefinition(def interfaces.ModelDefinition, fileNames *FileNameContext) (*types.InitialFieldFileData, error) {
	if def == nil {
		return nil, errors.InvalidArgument("InitialFieldDataFactory", "CreateFromModelDefinition", "model definition")
	}

	names := newFileNameTracker()
	data := types.NewInitialFieldFileData()

	oneD := createOneDField(def)
	names.reserve(oneD.DataFileName)
	data.Add(oneD)

	var pending []*types.InitialFieldData
	for _, entry := range f.registry.Entries() {
		if !isActiveQuantity(entry.Quantity, def) {
			continue
		}
		for _, op := range def.SpatialOperations(entry.DataItemName) {
			field, err := createFieldFromOperation(entry, op, def)
			if err != nil {
				return nil, err
			}
			if original, ok := fileNames.Lookup(op.ID()); ok {
				field.DataFileName = original
				names.reserve(original)
			} else {
				pending = append(pending, field)
			}
			data.Add(field)
		}
	}

	for _, field := range pending {
		field.DataFileName = names.unique(field.DataFileName)
	}

	return data, nil
}

// isActiveQuantity filters water level and water depth operations on the global 2D setting
func isActiveQuantity(q types.Quantity, def interfaces.ModelDefinition) bool {
	if _, ok := types.InitialConditionQuantityFor(q); !ok {
		return true
	}
	return def.InitialConditionQuantity2D().Quantity() == q
}

func createOneDField(def interfaces.ModelDefinition) *types.InitialFieldData {
	q := def.InitialConditionQuantity1D()
	field := types.NewInitialFieldData(q.Quantity())
	field.LocationType = types.LocationTypeOneD
	field.DataFileType = types.DataFileTypeOneDField
	field.DataFileName = onedfield.FileName(q)
	return field
}

func createFieldFromOperation(entry quantities.Entry, op model.SpatialOperation, def interfaces.ModelDefinition) (*types.InitialFieldData, error) {
	field := types.NewInitialFieldData(entry.Quantity)
	field.LocationType = types.LocationTypeTwoD
	field.SpatialOperationName = op.Name()
	field.SpatialOperationQuantity = entry.DataItemName
	field.SpatialOperationID = op.ID()

	switch op := op.(type) {
	case *model.ImportSamplesOperation:
		field.DataFileName = filepath.Base(op.FilePath)
		field.DataFileType = dataFileTypeFromExtension(op.FilePath)
		field.InterpolationMethod = op.InterpolationMethod
		field.AveragingType = op.AveragingType
		field.AveragingRelSize = op.RelativeSearchCellSize
		field.AveragingNumMin = op.MinSamplePoints
		field.AveragingPercentile = op.AveragingPercentile
		field.ExtrapolationMethod = op.Extrapolate
		field.Operand = op.Operand

	case *model.SetValueOperation:
		operand, err := operandFromPointwise(op.OperationType)
		if err != nil {
			return nil, err
		}
		field.DataFileName = generatedFileName(entry.Quantity, op.Name(), polygonExtension)
		field.DataFileType = types.DataFileTypePolygon
		field.InterpolationMethod = types.InterpolationConstant
		field.Operand = operand
		field.SetValue(op.Value)

	case *model.AddSamplesOperation:
		field.DataFileName = generatedFileName(entry.Quantity, op.Name(), samplesExtension)
		field.DataFileType = types.DataFileTypeSample
		field.InterpolationMethod = types.InterpolationAveraging
		field.AveragingType = types.AveragingNearestNeighbor
		field.AveragingRelSize = 1.0
		field.AveragingNumMin = 1
		field.Operand = types.OperandOverride

	default:
		return nil, errors.WrapFatal(fmt.Errorf("%w: %T", errors.ErrUnsupportedOperation, op),
			"InitialFieldDataFactory", "createFieldFromOperation", "convert spatial operation")
	}

	if entry.Quantity == types.QuantityFrictionCoefficient {
		field.SetFrictionType(def.FrictionType())
	}
	return field, nil
}

func operandFromPointwise(p model.PointwiseOperationType) (types.Operand, error) {
	switch p {
	case model.PointwiseOverwrite:
		return types.OperandOverride, nil
	case model.PointwiseOverwriteWhereMissing:
		return types.OperandAppend, nil
	case model.PointwiseAdd:
		return types.OperandAdd, nil
	case model.PointwiseMultiply:
		return types.OperandMultiply, nil
	case model.PointwiseMaximum:
		return types.OperandMaximum, nil
	case model.PointwiseMinimum:
		return types.OperandMinimum, nil
	default:
		return 0, errors.Unsupported("InitialFieldDataFactory", "operandFromPointwise", p)
	}
}

func dataFileTypeFromExtension(path string) types.DataFileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc":
		return types.DataFileTypeArcInfo
	case ".tif":
		return types.DataFileTypeGeoTIFF
	default:
		return types.DataFileTypeSample
	}
}

func generatedFileName(q types.Quantity, operationName, extension string) string {
	return strings.ToLower(q.String()) + "_" + sanitizeFileName(operationName) + extension
}

// sanitizeFileName replaces everything but letters, digits, '-', '_' and '.' with '_'
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "operation"
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// fileNameTracker hands out file names that are unique within one write, ignoring case
type fileNameTracker struct {
	used *set.Set[string]
}

func newFileNameTracker() *fileNameTracker {
	return &fileNameTracker{used: set.New[string](0)}
}

func (t *fileNameTracker) reserve(name string) {
	t.used.Insert(strings.ToLower(name))
}

func (t *fileNameTracker) unique(name string) string {
	if t.used.Insert(strings.ToLower(name)) {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if t.used.Insert(strings.ToLower(candidate)) {
			return candidate
		}
	}
}
