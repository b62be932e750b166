package initialfield

import (
	"io"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// initialFieldWriter implements the InitialFieldSerializer interface
type initialFieldWriter struct{}

// NewInitialFieldWriter creates a serializer for initial field files
func NewInitialFieldWriter() interfaces.InitialFieldSerializer {
	return &initialFieldWriter{}
}

// Serialize writes the [General] header followed by all initial conditions and then all parameters
func (w *initialFieldWriter) Serialize(dst io.Writer, data *types.InitialFieldFileData) error {
	if dst == nil {
		return errors.InvalidArgument("initialFieldWriter", "Serialize", "writer")
	}
	if data == nil {
		return errors.InvalidArgument("initialFieldWriter", "Serialize", "data")
	}

	file := ini.Empty(ini.LoadOptions{AllowNonUniqueSections: true})

	general, err := file.NewSection(GeneralSection)
	if err != nil {
		return errors.Wrap(err, "initialFieldWriter", "Serialize", "create general section")
	}
	setKey(general, FileVersionKey, FileVersion)
	setKey(general, FileTypeKey, FileType)

	for _, field := range data.InitialConditions() {
		if err := addFieldSection(file, InitialSection, field); err != nil {
			return err
		}
	}
	for _, field := range data.Parameters() {
		if err := addFieldSection(file, ParameterSection, field); err != nil {
			return err
		}
	}

	if _, err := file.WriteTo(dst); err != nil {
		return errors.Wrap(err, "initialFieldWriter", "Serialize", "write")
	}
	return nil
}

func addFieldSection(file *ini.File, name string, field *types.InitialFieldData) error {
	sec, err := file.NewSection(name)
	if err != nil {
		return errors.Wrap(err, "initialFieldWriter", "Serialize", "create field section")
	}

	setKey(sec, QuantityKey, field.Quantity.String())
	setKey(sec, DataFileNameKey, field.DataFileName)
	setKey(sec, DataFileTypeKey, field.DataFileType.String())

	if field.DataFileType == types.DataFileTypeOneDField {
		return nil
	}

	setKey(sec, InterpolationMethodKey, field.InterpolationMethod.String())
	setKey(sec, OperandKey, field.Operand.String())

	if field.UsesAveraging() {
		setKey(sec, AveragingTypeKey, field.AveragingType.String())
		setKey(sec, AveragingRelSizeKey, formatFloat(field.AveragingRelSize))
		setKey(sec, AveragingNumMinKey, strconv.Itoa(field.AveragingNumMin))
		setKey(sec, AveragingPercentileKey, formatFloat(field.AveragingPercentile))
	}

	setKey(sec, ExtrapolationKey, formatBool(field.ExtrapolationMethod))
	setKey(sec, LocationTypeKey, field.LocationType.String())

	if field.Value != nil {
		setKey(sec, ValueKey, formatFloat(*field.Value))
	}
	if field.Quantity == types.QuantityFrictionCoefficient && field.FrictionType != nil {
		setKey(sec, FrictionTypeKey, strconv.Itoa(field.FrictionType.Code()))
	}
	return nil
}

// setKey ignores the error of NewKey, which only fails for empty key names
func setKey(sec *ini.Section, name, value string) {
	_, _ = sec.NewKey(name, value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
