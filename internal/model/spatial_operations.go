package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// OperationKind identifies the concrete spatial operation type
type OperationKind int

const (
	KindImportSamples OperationKind = iota
	KindSetValue
	KindAddSamples
)

// String returns the kind name
func (k OperationKind) String() string {
	switch k {
	case KindImportSamples:
		return "import_samples"
	case KindSetValue:
		return "set_value"
	case KindAddSamples:
		return "add_samples"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(k))
	}
}

// ParseOperationKind parses a snake case kind name
func ParseOperationKind(s string) (OperationKind, error) {
	for _, k := range []OperationKind{KindImportSamples, KindSetValue, KindAddSamples} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown spatial operation kind %q", s)
}

// SpatialOperation is implemented only by the operation types in this package.
// Consumers switch on the concrete type and must treat any other type as unsupported.
type SpatialOperation interface {
	ID() uuid.UUID
	Name() string
	Kind() OperationKind
	sealed()
}

type operationBase struct {
	id   uuid.UUID
	name string
}

func newOperationBase(name string) operationBase {
	return operationBase{id: uuid.New(), name: name}
}

// ID returns the identity of the operation
func (b *operationBase) ID() uuid.UUID { return b.id }

// Name returns the operation name
func (b *operationBase) Name() string { return b.name }

func (b *operationBase) sealed() {}

// ImportSamplesOperation interpolates an external sample or grid file onto the domain
type ImportSamplesOperation struct {
	operationBase

	FilePath               string
	InterpolationMethod    types.InterpolationMethod
	AveragingType          types.AveragingType
	RelativeSearchCellSize float64
	MinSamplePoints        int
	AveragingPercentile    float64
	Extrapolate            bool
	Operand                types.Operand
}

// NewImportSamplesOperation creates an import operation with triangulation and override
func NewImportSamplesOperation(name, filePath string) *ImportSamplesOperation {
	return &ImportSamplesOperation{
		operationBase:          newOperationBase(name),
		FilePath:               filePath,
		InterpolationMethod:    types.InterpolationTriangulation,
		AveragingType:          types.AveragingMean,
		RelativeSearchCellSize: types.DefaultAveragingRelSize,
		MinSamplePoints:        types.DefaultAveragingNumMin,
		Operand:                types.OperandOverride,
	}
}

// Kind implements SpatialOperation
func (o *ImportSamplesOperation) Kind() OperationKind { return KindImportSamples }

// PointwiseOperationType describes how a set-value operation combines with existing values
type PointwiseOperationType int

const (
	PointwiseOverwrite PointwiseOperationType = iota
	PointwiseOverwriteWhereMissing
	PointwiseAdd
	PointwiseSubtract
	PointwiseMultiply
	PointwiseDivide
	PointwiseMaximum
	PointwiseMinimum
)

var pointwiseNames = map[PointwiseOperationType]string{
	PointwiseOverwrite:             "overwrite",
	PointwiseOverwriteWhereMissing: "overwrite_where_missing",
	PointwiseAdd:                   "add",
	PointwiseSubtract:              "subtract",
	PointwiseMultiply:              "multiply",
	PointwiseDivide:                "divide",
	PointwiseMaximum:               "maximum",
	PointwiseMinimum:               "minimum",
}

// String returns the snake case operation type name
func (p PointwiseOperationType) String() string {
	if s, ok := pointwiseNames[p]; ok {
		return s
	}
	return fmt.Sprintf("PointwiseOperationType(%d)", int(p))
}

// ParsePointwiseOperationType parses a snake case operation type name
func ParsePointwiseOperationType(s string) (PointwiseOperationType, error) {
	for p, name := range pointwiseNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown pointwise operation type %q", s)
}

// SetValueOperation assigns a constant value inside a set of polygons
type SetValueOperation struct {
	operationBase

	Value         float64
	OperationType PointwiseOperationType
	Mask          []types.Polygon
}

// NewSetValueOperation creates a polygon backed constant value operation
func NewSetValueOperation(name string, value float64, opType PointwiseOperationType, mask ...types.Polygon) *SetValueOperation {
	return &SetValueOperation{
		operationBase: newOperationBase(name),
		Value:         value,
		OperationType: opType,
		Mask:          mask,
	}
}

// Kind implements SpatialOperation
func (o *SetValueOperation) Kind() OperationKind { return KindSetValue }

// AddSamplesOperation holds samples added directly to the model
type AddSamplesOperation struct {
	operationBase

	Samples []types.Point
}

// NewAddSamplesOperation creates an operation holding in-memory samples
func NewAddSamplesOperation(name string, samples ...types.Point) *AddSamplesOperation {
	return &AddSamplesOperation{
		operationBase: newOperationBase(name),
		Samples:       samples,
	}
}

// Kind implements SpatialOperation
func (o *AddSamplesOperation) Kind() OperationKind { return KindAddSamples }
