package services

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/model"
	"github.com/deploymenttheory/go-initfield/internal/parsers/onedfield"
	"github.com/deploymenttheory/go-initfield/internal/parsers/polygon"
	"github.com/deploymenttheory/go-initfield/internal/parsers/samples"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// spatialDataFileWriter implements the SpatialDataFileWriter interface
type spatialDataFileWriter struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewSpatialDataFileWriter creates a writer emitting data files on fs
func NewSpatialDataFileWriter(fs afero.Fs, logger *slog.Logger) interfaces.SpatialDataFileWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &spatialDataFileWriter{fs: fs, logger: logger}
}

// WriteDataFiles writes one data file per record into targetDir
func (w *spatialDataFileWriter) WriteDataFiles(targetDir string, data *types.InitialFieldFileData, def interfaces.ModelDefinition, switchTo bool) error {
	if data == nil {
		return errors.InvalidArgument("spatialDataFileWriter", "WriteDataFiles", "data")
	}
	if def == nil {
		return errors.InvalidArgument("spatialDataFileWriter", "WriteDataFiles", "model definition")
	}

	for _, field := range data.All() {
		target := filepath.Join(targetDir, field.DataFileName)

		if !field.IsSpatial() {
			global := onedfield.Global{
				Quantity: def.InitialConditionQuantity1D(),
				Value:    def.InitialConditionValue1D(),
			}
			if err := w.create(target, func(dst io.Writer) error { return onedfield.Write(dst, global) }); err != nil {
				return err
			}
			continue
		}

		op, ok := def.FindSpatialOperation(field.SpatialOperationQuantity, field.SpatialOperationID)
		if !ok {
			return errors.WrapInvalid(fmt.Errorf("no spatial operation %q in %s", field.SpatialOperationName, field.SpatialOperationQuantity),
				"spatialDataFileWriter", "WriteDataFiles", "resolve operation")
		}

		if err := w.writeOperation(op, target, switchTo); err != nil {
			return err
		}
	}
	return nil
}

func (w *spatialDataFileWriter) writeOperation(op model.SpatialOperation, target string, switchTo bool) error {
	switch op := op.(type) {
	case *model.ImportSamplesOperation:
		if err := w.copy(op.FilePath, target); err != nil {
			return err
		}
		if switchTo {
			op.FilePath = target
		}
		return nil

	case *model.SetValueOperation:
		return w.create(target, func(dst io.Writer) error { return polygon.Write(dst, op.Mask) })

	case *model.AddSamplesOperation:
		return w.create(target, func(dst io.Writer) error { return samples.Write(dst, op.Samples) })

	default:
		return errors.WrapFatal(fmt.Errorf("%w: %T", errors.ErrUnsupportedOperation, op),
			"spatialDataFileWriter", "writeOperation", "write data file")
	}
}

func (w *spatialDataFileWriter) copy(source, target string) error {
	if filepath.Clean(source) == filepath.Clean(target) {
		return nil
	}

	src, err := w.fs.Open(source)
	if err != nil {
		return errors.WrapInvalid(fmt.Errorf("%w: %s", errors.ErrFileNotFound, source),
			"spatialDataFileWriter", "copy", "open source")
	}
	defer src.Close()

	return w.create(target, func(dst io.Writer) error {
		_, err := io.Copy(dst, src)
		return err
	})
}

func (w *spatialDataFileWriter) create(path string, write func(io.Writer) error) (err error) {
	file, err := w.fs.Create(path)
	if err != nil {
		return errors.Wrap(err, "spatialDataFileWriter", "create", "create "+path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "spatialDataFileWriter", "create", "close "+path)
		}
	}()

	if err := write(file); err != nil {
		return errors.Wrap(err, "spatialDataFileWriter", "create", "write "+path)
	}
	w.logger.Debug("wrote data file", "path", path)
	return nil
}
