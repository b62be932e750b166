// File: internal/interfaces/initial_field.go
package interfaces

import (
	"io"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// SpatialOperationSource exposes the spatial operations registered per data item
type SpatialOperationSource interface {
	// SpatialOperations returns the operations registered for a data item name
	SpatialOperations(dataItemName string) []model.SpatialOperation
}

// ModelDefinition is the model configuration the initial field file is read into and written from
type ModelDefinition interface {
	SpatialOperationSource

	// AddSpatialOperation registers an operation under a data item name
	AddSpatialOperation(dataItemName string, op model.SpatialOperation)

	// FindSpatialOperation looks an operation up by identity
	FindSpatialOperation(dataItemName string, id uuid.UUID) (model.SpatialOperation, bool)

	// FrictionType returns the globally configured friction type
	FrictionType() types.FrictionType

	// InitialConditionQuantity2D returns the quantity of the global 2D initial condition
	InitialConditionQuantity2D() types.InitialConditionQuantity

	// SetInitialConditionQuantity2D sets the quantity of the global 2D initial condition
	SetInitialConditionQuantity2D(q types.InitialConditionQuantity)

	// InitialConditionQuantity1D returns the quantity of the global 1D initial condition
	InitialConditionQuantity1D() types.InitialConditionQuantity

	// SetInitialConditionQuantity1D sets the quantity of the global 1D initial condition
	SetInitialConditionQuantity1D(q types.InitialConditionQuantity)

	// InitialConditionValue1D returns the global 1D initial condition value
	InitialConditionValue1D() float64

	// SetInitialConditionValue1D sets the global 1D initial condition value
	SetInitialConditionValue1D(v float64)
}

// Network is the part of a 1D network the writer needs to decide whether to write
type Network interface {
	EdgeCount() int
	VertexCount() int
}

// LogHandler collects messages during one operation and reports them together
type LogHandler interface {
	ReportInfo(format string, args ...any)
	ReportWarning(format string, args ...any)
	ReportError(format string, args ...any)

	// LogReport emits the collected entries as one report and resets the handler
	LogReport(header string) types.Report
}

// InitialFieldParser converts an initial field file stream into records
type InitialFieldParser interface {
	Parse(r io.Reader, log LogHandler) (*types.InitialFieldFileData, error)
}

// InitialFieldSerializer writes records in the initial field file format
type InitialFieldSerializer interface {
	Serialize(w io.Writer, data *types.InitialFieldFileData) error
}

// FieldValidator checks a record against a model configuration
type FieldValidator interface {
	Validate(field *types.InitialFieldData, def ModelDefinition) types.ValidationResult
}

// SpatialOperationFactory turns a validated record into a spatial operation
type SpatialOperationFactory interface {
	CreateSpatialOperation(field *types.InitialFieldData) (model.SpatialOperation, error)
}

// SpatialDataFileWriter writes the data files referenced by initial field records
type SpatialDataFileWriter interface {
	// WriteDataFiles writes every referenced data file into targetDir. With switchTo set,
	// operations referring to external files are re-pointed to the written copies.
	WriteDataFiles(targetDir string, data *types.InitialFieldFileData, def ModelDefinition, switchTo bool) error
}
