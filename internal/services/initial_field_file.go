package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/parsers/initialfield"
	"github.com/deploymenttheory/go-initfield/internal/parsers/onedfield"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/report"
	"github.com/deploymenttheory/go-initfield/internal/types"
	"github.com/deploymenttheory/go-initfield/internal/validation"
)

// InitialFieldFile reads initial field files into a model definition and writes them back
type InitialFieldFile struct {
	fs               afero.Fs
	logger           *slog.Logger
	registry         *quantities.Registry
	parser           interfaces.InitialFieldParser
	serializer       interfaces.InitialFieldSerializer
	validator        interfaces.FieldValidator
	operationFactory interfaces.SpatialOperationFactory
	dataFactory      *InitialFieldDataFactory
	dataWriter       interfaces.SpatialDataFileWriter
}

// Option configures an InitialFieldFile
type Option func(*InitialFieldFile)

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(f *InitialFieldFile) { f.logger = logger }
}

// WithRegistry replaces the default quantity registry
func WithRegistry(registry *quantities.Registry) Option {
	return func(f *InitialFieldFile) { f.registry = registry }
}

// WithSpatialOperationFactory replaces the record to operation conversion
func WithSpatialOperationFactory(factory interfaces.SpatialOperationFactory) Option {
	return func(f *InitialFieldFile) { f.operationFactory = factory }
}

// WithSpatialDataFileWriter replaces the data file writer
func WithSpatialDataFileWriter(writer interfaces.SpatialDataFileWriter) Option {
	return func(f *InitialFieldFile) { f.dataWriter = writer }
}

// NewInitialFieldFile creates the service on fs
func NewInitialFieldFile(fs afero.Fs, opts ...Option) *InitialFieldFile {
	f := &InitialFieldFile{
		fs:         fs,
		logger:     slog.Default(),
		registry:   quantities.DefaultRegistry(),
		parser:     initialfield.NewInitialFieldReader(),
		serializer: initialfield.NewInitialFieldWriter(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.fs == nil {
		f.fs = afero.NewOsFs()
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.registry == nil {
		f.registry = quantities.DefaultRegistry()
	}
	if f.operationFactory == nil {
		f.operationFactory = NewSpatialOperationFactory(f.fs)
	}
	if f.dataWriter == nil {
		f.dataWriter = NewSpatialDataFileWriter(f.fs, f.logger)
	}
	f.validator = validation.NewFieldValidator(f.registry)
	f.dataFactory = NewInitialFieldDataFactory(f.registry)
	return f
}

// Registry returns the quantity registry in use
func (f *InitialFieldFile) Registry() *quantities.Registry {
	return f.registry
}

// ReadRequest holds the arguments of Read
type ReadRequest struct {
	FilePath       string
	ParentFilePath string
	Model          interfaces.ModelDefinition
}

// FieldResult is the outcome of processing one record
type FieldResult struct {
	Field       *types.InitialFieldData
	Validation  types.ValidationResult
	OperationID uuid.UUID
	Imported    bool
}

// ReadResult holds everything a read produced
type ReadResult struct {
	// Data holds every parsed record, including the ones that failed validation
	Data      *types.InitialFieldFileData
	Fields    []FieldResult
	FileNames *FileNameContext
	Report    types.Report
}

// Read parses an initial field file, validates its records and registers a spatial
// operation on the model for every valid spatial record.
func (f *InitialFieldFile) Read(ctx context.Context, req ReadRequest) (*ReadResult, error) {
	if req.FilePath == "" {
		return nil, errors.InvalidArgument("InitialFieldFile", "Read", "file path")
	}
	if req.ParentFilePath == "" {
		return nil, errors.InvalidArgument("InitialFieldFile", "Read", "parent file path")
	}
	if req.Model == nil {
		return nil, errors.InvalidArgument("InitialFieldFile", "Read", "model definition")
	}

	exists, err := afero.Exists(f.fs, req.FilePath)
	if err != nil || !exists {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %s", errors.ErrFileNotFound, req.FilePath),
			"InitialFieldFile", "Read", "locate file")
	}

	fileNames := NewFileNameContext()
	log := report.NewHandler(f.logger)

	data, err := f.parse(req.FilePath, log)
	if err != nil {
		return nil, err
	}

	parentDir := directoryOf(req.ParentFilePath)
	for _, field := range data.All() {
		field.ParentDataDirectory = parentDir
	}

	setInitialConditionQuantity2D(data, req.Model)

	result := &ReadResult{Data: data, FileNames: fileNames}
	for _, field := range data.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fr := FieldResult{Field: field, Validation: f.validator.Validate(field, req.Model)}
		if !fr.Validation.Valid {
			log.ReportError("%s", fr.Validation.Message)
			result.Fields = append(result.Fields, fr)
			continue
		}

		if field.Quantity == types.QuantityFrictionCoefficient && field.FrictionType == nil {
			log.ReportWarning("No friction type set for %s, not checked against the model friction type %s",
				field, req.Model.FrictionType())
		}

		if !field.IsSpatial() {
			f.readOneDField(field, req.Model, log)
			result.Fields = append(result.Fields, fr)
			continue
		}

		dataItemName, _ := f.registry.DataItemName(field.Quantity)
		op, err := f.operationFactory.CreateSpatialOperation(field)
		if err != nil {
			if errors.IsFatal(err) {
				return nil, err
			}
			log.ReportError("Could not create spatial operation for %s: %v", field, err)
			result.Fields = append(result.Fields, fr)
			continue
		}

		req.Model.AddSpatialOperation(dataItemName, op)
		fileNames.Remember(op.ID(), field.DataFileName)

		field.SpatialOperationName = op.Name()
		field.SpatialOperationQuantity = dataItemName
		field.SpatialOperationID = op.ID()

		fr.OperationID = op.ID()
		fr.Imported = true
		result.Fields = append(result.Fields, fr)
		log.ReportInfo("Imported %s as %s", field, dataItemName)
	}

	result.Report = log.LogReport(fmt.Sprintf("Reading initial field file %s", req.FilePath))
	return result, nil
}

func (f *InitialFieldFile) parse(path string, log interfaces.LogHandler) (*types.InitialFieldFileData, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "InitialFieldFile", "Read", "open file")
	}
	defer file.Close()

	return f.parser.Parse(file, log)
}

// readOneDField applies a 1dField record to the global 1D initial condition of the model
func (f *InitialFieldFile) readOneDField(field *types.InitialFieldData, def interfaces.ModelDefinition, log interfaces.LogHandler) {
	q, ok := types.InitialConditionQuantityFor(field.Quantity)
	if !ok {
		log.ReportWarning("1D field quantity %s is not supported, expected waterlevel or waterdepth", field.Quantity)
		return
	}
	def.SetInitialConditionQuantity1D(q)

	file, err := f.fs.Open(field.DataFilePath())
	if err != nil {
		log.ReportWarning("1D field file %s not found, keeping the current global value", field.DataFilePath())
		return
	}
	defer file.Close()

	global, err := onedfield.Read(file)
	if err != nil {
		log.ReportError("Could not read 1D field file %s: %v", field.DataFilePath(), err)
		return
	}
	if global.Quantity != q {
		log.ReportWarning("1D field file %s holds %s, expected %s", field.DataFilePath(), global.Quantity, q)
	}
	def.SetInitialConditionValue1D(global.Value)
}

// setInitialConditionQuantity2D selects water level when the file has a 2D water level
// field, otherwise water depth when it has a 2D water depth field.
func setInitialConditionQuantity2D(data *types.InitialFieldFileData, def interfaces.ModelDefinition) {
	var hasLevel, hasDepth bool
	for _, field := range data.All() {
		if field.LocationType != types.LocationTypeTwoD || !field.IsSpatial() {
			continue
		}
		switch field.Quantity {
		case types.QuantityWaterLevel:
			hasLevel = true
		case types.QuantityWaterDepth:
			hasDepth = true
		}
	}

	switch {
	case hasLevel:
		def.SetInitialConditionQuantity2D(types.InitialConditionWaterLevel)
	case hasDepth:
		def.SetInitialConditionQuantity2D(types.InitialConditionWaterDepth)
	}
}

// ShouldWrite reports whether there is anything to write: a non-empty network or at
// least one spatial operation on a supported quantity.
func (f *InitialFieldFile) ShouldWrite(def interfaces.SpatialOperationSource, network interfaces.Network) bool {
	if network != nil && (network.EdgeCount() > 0 || network.VertexCount() > 0) {
		return true
	}
	return f.registry.ContainsSupportedSpatialOperations(def)
}

// WriteRequest holds the arguments of Write
type WriteRequest struct {
	FilePath       string
	ParentFilePath string
	SwitchTo       bool
	Model          interfaces.ModelDefinition

	// FileNames restores the file names of operations read earlier, may be nil
	FileNames *FileNameContext
}

// Write serializes the model to an initial field file and writes the referenced data files
// next to the parent file. A failure while writing data files leaves the initial field file
// in place.
func (f *InitialFieldFile) Write(ctx context.Context, req WriteRequest) (*types.InitialFieldFileData, error) {
	if req.FilePath == "" {
		return nil, errors.InvalidArgument("InitialFieldFile", "Write", "file path")
	}
	if req.ParentFilePath == "" {
		return nil, errors.InvalidArgument("InitialFieldFile", "Write", "parent file path")
	}
	if req.Model == nil {
		return nil, errors.InvalidArgument("InitialFieldFile", "Write", "model definition")
	}

	data, err := f.dataFactory.CreateFromModelDefinition(req.Model, req.FileNames)
	if err != nil {
		return nil, err
	}

	dataDir := directoryOf(req.ParentFilePath)
	for _, dir := range []string{directoryOf(req.FilePath), dataDir} {
		if err := ensureDirectory(f.fs, dir); err != nil {
			return nil, err
		}
	}

	if err := f.serialize(req.FilePath, data); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := f.dataWriter.WriteDataFiles(dataDir, data, req.Model, req.SwitchTo); err != nil {
		return nil, err
	}

	f.logger.Info("wrote initial field file",
		"path", req.FilePath,
		"fields", data.Len(),
		"parameters", len(data.Parameters()),
	)
	return data, nil
}

func (f *InitialFieldFile) serialize(path string, data *types.InitialFieldFileData) (err error) {
	file, err := f.fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "InitialFieldFile", "Write", "create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "InitialFieldFile", "Write", "close file")
		}
	}()

	return f.serializer.Serialize(file, data)
}

// directoryOf returns the directory of path, or "" when path has no directory component
func directoryOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}

func ensureDirectory(fs afero.Fs, dir string) error {
	if dir == "" {
		return nil
	}
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return errors.Wrap(err, "InitialFieldFile", "Write", "create directory "+dir)
	}
	return nil
}
