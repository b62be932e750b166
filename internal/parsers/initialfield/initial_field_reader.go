package initialfield

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/deploymenttheory/go-initfield/internal/errors"
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Section and key names of the initial field file format
const (
	GeneralSection   = "General"
	InitialSection   = "Initial"
	ParameterSection = "Parameter"

	FileVersionKey         = "fileVersion"
	FileTypeKey            = "fileType"
	QuantityKey            = "quantity"
	DataFileNameKey        = "dataFileName"
	DataFileTypeKey        = "dataFileType"
	InterpolationMethodKey = "interpolationMethod"
	OperandKey             = "operand"
	AveragingTypeKey       = "averagingType"
	AveragingRelSizeKey    = "averagingRelSize"
	AveragingNumMinKey     = "averagingNumMin"
	AveragingPercentileKey = "averagingPercentile"
	ExtrapolationKey       = "extrapolationMethod"
	LocationTypeKey        = "locationType"
	ValueKey               = "value"
	FrictionTypeKey        = "ifrctyp"

	FileVersion = "2.00"
	FileType    = "iniField"
)

var knownFieldKeys = map[string]bool{}

func init() {
	for _, k := range []string{
		QuantityKey, DataFileNameKey, DataFileTypeKey, InterpolationMethodKey, OperandKey,
		AveragingTypeKey, AveragingRelSizeKey, AveragingNumMinKey, AveragingPercentileKey,
		ExtrapolationKey, LocationTypeKey, ValueKey, FrictionTypeKey,
	} {
		knownFieldKeys[strings.ToLower(k)] = true
	}
}

// initialFieldReader implements the InitialFieldParser interface
type initialFieldReader struct{}

// NewInitialFieldReader creates a parser for initial field files
func NewInitialFieldReader() interfaces.InitialFieldParser {
	return &initialFieldReader{}
}

// Parse reads every field section of the stream. Sections with missing or malformed
// required keys are reported through log and skipped; only stream and tokenizer
// failures are returned as errors.
func (r *initialFieldReader) Parse(src io.Reader, log interfaces.LogHandler) (*types.InitialFieldFileData, error) {
	if src == nil {
		return nil, errors.InvalidArgument("initialFieldReader", "Parse", "reader")
	}
	if log == nil {
		return nil, errors.InvalidArgument("initialFieldReader", "Parse", "log handler")
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.WrapInvalid(err, "initialFieldReader", "Parse", "read stream")
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		AllowNonUniqueSections: true,
		InsensitiveKeys:        true,
	}, content)
	if err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrParsingFailed, err),
			"initialFieldReader", "Parse", "tokenize")
	}

	data := types.NewInitialFieldFileData()
	fieldIndex := 0
	for _, sec := range file.Sections() {
		switch {
		case sec.Name() == ini.DefaultSection:
			if len(sec.Keys()) > 0 {
				log.ReportWarning("Ignoring %d key(s) outside of any section", len(sec.Keys()))
			}
		case strings.EqualFold(sec.Name(), GeneralSection):
			parseGeneral(sec, log)
		case strings.EqualFold(sec.Name(), InitialSection), strings.EqualFold(sec.Name(), ParameterSection):
			fieldIndex++
			field, err := parseField(sec)
			if err != nil {
				log.ReportError("Skipping [%s] section %d: %v", sec.Name(), fieldIndex, err)
				continue
			}
			reportUnknownKeys(sec, fieldIndex, log)
			checkGroup(sec, field, fieldIndex, log)
			data.Add(field)
		default:
			log.ReportWarning("Skipping unknown section [%s]", sec.Name())
		}
	}

	return data, nil
}

func parseGeneral(sec *ini.Section, log interfaces.LogHandler) {
	key, err := sec.GetKey(FileTypeKey)
	if err != nil {
		log.ReportWarning("[%s] section has no %s", GeneralSection, FileTypeKey)
		return
	}
	if !strings.EqualFold(key.String(), FileType) {
		log.ReportWarning("Unexpected %s %q, expected %q", FileTypeKey, key.String(), FileType)
	}
}

func parseField(sec *ini.Section) (*types.InitialFieldData, error) {
	quantityToken, err := requiredValue(sec, QuantityKey)
	if err != nil {
		return nil, err
	}
	quantity, err := types.ParseQuantity(quantityToken)
	if err != nil {
		return nil, err
	}

	field := types.NewInitialFieldData(quantity)

	if field.DataFileName, err = requiredValue(sec, DataFileNameKey); err != nil {
		return nil, err
	}

	fileTypeToken, err := requiredValue(sec, DataFileTypeKey)
	if err != nil {
		return nil, err
	}
	if field.DataFileType, err = types.ParseDataFileType(fileTypeToken); err != nil {
		return nil, err
	}

	if field.DataFileType == types.DataFileTypeOneDField {
		field.LocationType = types.LocationTypeOneD
	} else {
		method, err := requiredValue(sec, InterpolationMethodKey)
		if err != nil {
			return nil, err
		}
		if field.InterpolationMethod, err = types.ParseInterpolationMethod(method); err != nil {
			return nil, err
		}
	}

	if v, ok := optionalValue(sec, LocationTypeKey); ok {
		if field.LocationType, err = types.ParseLocationType(v); err != nil {
			return nil, err
		}
	}

	if v, ok := optionalValue(sec, OperandKey); ok {
		if field.Operand, err = types.ParseOperand(v); err != nil {
			return nil, err
		}
	}

	if err := parseAveraging(sec, field); err != nil {
		return nil, err
	}

	if key, err := sec.GetKey(ExtrapolationKey); err == nil {
		b, err := key.Bool()
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", ExtrapolationKey, key.String())
		}
		field.ExtrapolationMethod = b
	}

	if key, err := sec.GetKey(ValueKey); err == nil {
		v, err := key.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", ValueKey, key.String())
		}
		field.SetValue(v)
	} else if field.DataFileType == types.DataFileTypePolygon {
		return nil, fmt.Errorf("missing required key %q for polygon data", ValueKey)
	}

	if key, err := sec.GetKey(FrictionTypeKey); err == nil {
		f, err := types.ParseFrictionType(key.String())
		if err != nil {
			return nil, err
		}
		field.SetFrictionType(f)
	}

	return field, nil
}

func parseAveraging(sec *ini.Section, field *types.InitialFieldData) error {
	var err error
	if v, ok := optionalValue(sec, AveragingTypeKey); ok {
		if field.AveragingType, err = types.ParseAveragingType(v); err != nil {
			return err
		}
	}
	if key, err := sec.GetKey(AveragingRelSizeKey); err == nil {
		if field.AveragingRelSize, err = key.Float64(); err != nil {
			return fmt.Errorf("invalid %s %q", AveragingRelSizeKey, key.String())
		}
	}
	if key, err := sec.GetKey(AveragingNumMinKey); err == nil {
		if field.AveragingNumMin, err = key.Int(); err != nil {
			return fmt.Errorf("invalid %s %q", AveragingNumMinKey, key.String())
		}
	}
	if key, err := sec.GetKey(AveragingPercentileKey); err == nil {
		if field.AveragingPercentile, err = key.Float64(); err != nil {
			return fmt.Errorf("invalid %s %q", AveragingPercentileKey, key.String())
		}
	}
	return nil
}

func requiredValue(sec *ini.Section, name string) (string, error) {
	v, ok := optionalValue(sec, name)
	if !ok {
		return "", fmt.Errorf("missing required key %q", name)
	}
	return v, nil
}

func optionalValue(sec *ini.Section, name string) (string, bool) {
	key, err := sec.GetKey(name)
	if err != nil {
		return "", false
	}
	v := strings.TrimSpace(key.String())
	return v, v != ""
}

func reportUnknownKeys(sec *ini.Section, index int, log interfaces.LogHandler) {
	for _, key := range sec.Keys() {
		if !knownFieldKeys[strings.ToLower(key.Name())] {
			log.ReportWarning("Ignoring unknown key %q in [%s] section %d", key.Name(), sec.Name(), index)
		}
	}
}

func checkGroup(sec *ini.Section, field *types.InitialFieldData, index int, log interfaces.LogHandler) {
	inParameters := strings.EqualFold(sec.Name(), ParameterSection)
	if inParameters != field.IsParameter() {
		log.ReportWarning("Quantity %s found in [%s] section %d", field.Quantity, sec.Name(), index)
	}
}
