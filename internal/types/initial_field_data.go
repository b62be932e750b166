package types

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Averaging defaults applied when an averaging field omits the corresponding keys
const (
	DefaultAveragingRelSize    = 1.01
	DefaultAveragingNumMin     = 1
	DefaultAveragingPercentile = 0.0
)

// InitialFieldData is one [Initial] or [Parameter] entry of an initial field file
type InitialFieldData struct {
	Quantity            Quantity
	LocationType        LocationType
	DataFileName        string
	DataFileType        DataFileType
	InterpolationMethod InterpolationMethod

	// Averaging settings, only meaningful when InterpolationMethod is InterpolationAveraging
	AveragingType       AveragingType
	AveragingRelSize    float64
	AveragingNumMin     int
	AveragingPercentile float64

	ExtrapolationMethod bool
	Operand             Operand
	Value               *float64

	// FrictionType is only meaningful for QuantityFrictionCoefficient
	FrictionType *FrictionType

	// Bookkeeping, never written to the file
	ParentDataDirectory      string
	SpatialOperationName     string
	SpatialOperationQuantity string
	SpatialOperationID       uuid.UUID
}

// NewInitialFieldData returns a record with the file format defaults applied
func NewInitialFieldData(quantity Quantity) *InitialFieldData {
	return &InitialFieldData{
		Quantity:            quantity,
		LocationType:        LocationTypeTwoD,
		Operand:             OperandOverride,
		AveragingType:       AveragingMean,
		AveragingRelSize:    DefaultAveragingRelSize,
		AveragingNumMin:     DefaultAveragingNumMin,
		AveragingPercentile: DefaultAveragingPercentile,
	}
}

// UsesAveraging reports whether the averaging settings apply to this record
func (d *InitialFieldData) UsesAveraging() bool {
	return d.InterpolationMethod == InterpolationAveraging
}

// IsParameter reports whether the record belongs to the [Parameter] group
func (d *InitialFieldData) IsParameter() bool {
	return d.Quantity == QuantityFrictionCoefficient
}

// IsSpatial reports whether the record is backed by a spatial data file rather than a 1D field
func (d *InitialFieldData) IsSpatial() bool {
	return d.DataFileType != DataFileTypeOneDField
}

// DataFilePath resolves the data file against the parent data directory
func (d *InitialFieldData) DataFilePath() string {
	if d.ParentDataDirectory == "" {
		return d.DataFileName
	}
	return filepath.Join(d.ParentDataDirectory, d.DataFileName)
}

// SetValue stores a constant value
func (d *InitialFieldData) SetValue(v float64) {
	d.Value = &v
}

// SetFrictionType stores the friction type tag
func (d *InitialFieldData) SetFrictionType(f FrictionType) {
	d.FrictionType = &f
}

// String returns a short description used in log entries
func (d *InitialFieldData) String() string {
	return fmt.Sprintf("%s (%s, %s)", d.Quantity.DisplayName(), d.DataFileName, d.DataFileType)
}

// InitialFieldFileData is the ordered content of an initial field file
type InitialFieldFileData struct {
	fields []*InitialFieldData
}

// NewInitialFieldFileData creates file data holding the given records
func NewInitialFieldFileData(fields ...*InitialFieldData) *InitialFieldFileData {
	data := &InitialFieldFileData{}
	for _, f := range fields {
		data.Add(f)
	}
	return data
}

// Add appends a record, nil records are ignored
func (fd *InitialFieldFileData) Add(field *InitialFieldData) {
	if field == nil {
		return
	}
	fd.fields = append(fd.fields, field)
}

// All returns every record in file order
func (fd *InitialFieldFileData) All() []*InitialFieldData {
	out := make([]*InitialFieldData, len(fd.fields))
	copy(out, fd.fields)
	return out
}

// Len returns the number of records
func (fd *InitialFieldFileData) Len() int {
	return len(fd.fields)
}

// InitialConditions returns the records describing global state quantities
func (fd *InitialFieldFileData) InitialConditions() []*InitialFieldData {
	var out []*InitialFieldData
	for _, f := range fd.fields {
		if !f.IsParameter() {
			out = append(out, f)
		}
	}
	return out
}

// Parameters returns the records describing model parameters
func (fd *InitialFieldFileData) Parameters() []*InitialFieldData {
	var out []*InitialFieldData
	for _, f := range fd.fields {
		if f.IsParameter() {
			out = append(out, f)
		}
	}
	return out
}

// InitialConditionQuantity is the quantity a model uses for its global initial condition
type InitialConditionQuantity int

const (
	InitialConditionWaterLevel InitialConditionQuantity = iota
	InitialConditionWaterDepth
)

// Quantity returns the initial field quantity matching the setting
func (q InitialConditionQuantity) Quantity() Quantity {
	if q == InitialConditionWaterDepth {
		return QuantityWaterDepth
	}
	return QuantityWaterLevel
}

// String returns the lower case setting name
func (q InitialConditionQuantity) String() string {
	if q == InitialConditionWaterDepth {
		return "waterdepth"
	}
	return "waterlevel"
}

// ParseInitialConditionQuantity parses "waterlevel" or "waterdepth", ignoring case
func ParseInitialConditionQuantity(s string) (InitialConditionQuantity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "waterlevel", "water_level":
		return InitialConditionWaterLevel, nil
	case "waterdepth", "water_depth":
		return InitialConditionWaterDepth, nil
	default:
		return 0, fmt.Errorf("unknown initial condition quantity %q", s)
	}
}

// InitialConditionQuantityFor maps a field quantity onto the global setting
func InitialConditionQuantityFor(q Quantity) (InitialConditionQuantity, bool) {
	switch q {
	case QuantityWaterLevel:
		return InitialConditionWaterLevel, true
	case QuantityWaterDepth:
		return InitialConditionWaterDepth, true
	default:
		return 0, false
	}
}
