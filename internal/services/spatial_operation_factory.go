package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/parsers/polygon"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// spatialOperationFactory implements the SpatialOperationFactory interface
type spatialOperationFactory struct {
	fs afero.Fs
}

// NewSpatialOperationFactory creates a factory that loads polygon files from fs
func NewSpatialOperationFactory(fs afero.Fs) interfaces.SpatialOperationFactory {
	return &spatialOperationFactory{fs: fs}
}

// CreateSpatialOperation converts a validated spatial record into an operation
func (f *spatialOperationFactory) CreateSpatialOperation(field *types.InitialFieldData) (model.SpatialOperation, error) {
	if field == nil {
		return nil, errors.InvalidArgument("spatialOperationFactory", "CreateSpatialOperation", "field")
	}

	name := operationNameFromFile(field.DataFileName)

	switch field.DataFileType {
	case types.DataFileTypeSample, types.DataFileTypeArcInfo, types.DataFileTypeGeoTIFF:
		op := model.NewImportSamplesOperation(name, field.DataFilePath())
		op.InterpolationMethod = field.InterpolationMethod
		op.AveragingType = field.AveragingType
		op.RelativeSearchCellSize = field.AveragingRelSize
		op.MinSamplePoints = field.AveragingNumMin
		op.AveragingPercentile = field.AveragingPercentile
		op.Extrapolate = field.ExtrapolationMethod
		op.Operand = field.Operand
		return op, nil

	case types.DataFileTypePolygon:
		if field.Value == nil {
			return nil, errors.WrapInvalid(fmt.Errorf("polygon field %s has no value", field.DataFileName),
				"spatialOperationFactory", "CreateSpatialOperation", "read value")
		}
		opType, err := pointwiseOperationType(field.Operand)
		if err != nil {
			return nil, err
		}
		mask, err := f.readPolygons(field.DataFilePath())
		if err != nil {
			return nil, err
		}
		return model.NewSetValueOperation(name, *field.Value, opType, mask...), nil

	default:
		return nil, errors.Unsupported("spatialOperationFactory", "CreateSpatialOperation", field.DataFileType)
	}
}

func (f *spatialOperationFactory) readPolygons(path string) ([]types.Polygon, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
			"spatialOperationFactory", "readPolygons", "open polygon file")
	}
	defer file.Close()

	polygons, err := polygon.Read(file)
	if err != nil {
		return nil, errors.WrapInvalid(err, "spatialOperationFactory", "readPolygons", "parse polygon file")
	}
	return polygons, nil
}

func pointwiseOperationType(o types.Operand) (model.PointwiseOperationType, error) {
	switch o {
	case types.OperandOverride:
		return model.PointwiseOverwrite, nil
	case types.OperandAppend:
		return model.PointwiseOverwriteWhereMissing, nil
	case types.OperandAdd:
		return model.PointwiseAdd, nil
	case types.OperandMultiply:
		return model.PointwiseMultiply, nil
	case types.OperandMaximum:
		return model.PointwiseMaximum, nil
	case types.OperandMinimum:
		return model.PointwiseMinimum, nil
	default:
		return 0, errors.Unsupported("spatialOperationFactory", "pointwiseOperationType", o)
	}
}

func operationNameFromFile(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
