package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity identifies the physical quantity an initial field describes
type Quantity int

const (
	QuantityBedLevel Quantity = iota
	QuantityWaterLevel
	QuantityWaterDepth
	QuantityFrictionCoefficient
	QuantityInfiltrationCapacity
)

var quantityTokens = map[Quantity]string{
	QuantityBedLevel:             "bedlevel",
	QuantityWaterLevel:           "waterlevel",
	QuantityWaterDepth:           "waterdepth",
	QuantityFrictionCoefficient:  "frictioncoefficient",
	QuantityInfiltrationCapacity: "InfiltrationCapacity",
}

var quantityNames = map[Quantity]string{
	QuantityBedLevel:             "BedLevel",
	QuantityWaterLevel:           "WaterLevel",
	QuantityWaterDepth:           "WaterDepth",
	QuantityFrictionCoefficient:  "FrictionCoefficient",
	QuantityInfiltrationCapacity: "InfiltrationCapacity",
}

// AllQuantities lists every quantity in declaration order
func AllQuantities() []Quantity {
	return []Quantity{
		QuantityBedLevel,
		QuantityWaterLevel,
		QuantityWaterDepth,
		QuantityFrictionCoefficient,
		QuantityInfiltrationCapacity,
	}
}

// String returns the token used in the initial field file
func (q Quantity) String() string {
	if s, ok := quantityTokens[q]; ok {
		return s
	}
	return fmt.Sprintf("Quantity(%d)", int(q))
}

// DisplayName returns the human readable quantity name, e.g. "WaterLevel"
func (q Quantity) DisplayName() string {
	if s, ok := quantityNames[q]; ok {
		return s
	}
	return q.String()
}

// IsValid reports whether q is one of the declared quantities
func (q Quantity) IsValid() bool {
	_, ok := quantityTokens[q]
	return ok
}

// ParseQuantity parses a quantity token, ignoring case
func ParseQuantity(s string) (Quantity, error) {
	for q, token := range quantityTokens {
		if strings.EqualFold(strings.TrimSpace(s), token) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quantity %q", s)
}

// LocationType is the dimensionality of the grid a field applies to
type LocationType int

const (
	LocationTypeTwoD LocationType = iota
	LocationTypeOneD
)

// String returns the token used in the initial field file
func (l LocationType) String() string {
	switch l {
	case LocationTypeOneD:
		return "1d"
	case LocationTypeTwoD:
		return "2d"
	default:
		return fmt.Sprintf("LocationType(%d)", int(l))
	}
}

// ParseLocationType parses a location type token, ignoring case
func ParseLocationType(s string) (LocationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1d":
		return LocationTypeOneD, nil
	case "2d":
		return LocationTypeTwoD, nil
	default:
		return 0, fmt.Errorf("unknown location type %q", s)
	}
}

// DataFileType describes the format of the data file a field refers to
type DataFileType int

const (
	DataFileTypeSample DataFileType = iota
	DataFileTypePolygon
	DataFileTypeArcInfo
	DataFileTypeGeoTIFF
	DataFileTypeOneDField
)

var dataFileTypeTokens = map[DataFileType]string{
	DataFileTypeSample:    "sample",
	DataFileTypePolygon:   "polygon",
	DataFileTypeArcInfo:   "arcinfo",
	DataFileTypeGeoTIFF:   "GeoTIFF",
	DataFileTypeOneDField: "1dField",
}

// String returns the token used in the initial field file
func (d DataFileType) String() string {
	if s, ok := dataFileTypeTokens[d]; ok {
		return s
	}
	return fmt.Sprintf("DataFileType(%d)", int(d))
}

// ParseDataFileType parses a data file type token, ignoring case
func ParseDataFileType(s string) (DataFileType, error) {
	for d, token := range dataFileTypeTokens {
		if strings.EqualFold(strings.TrimSpace(s), token) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown data file type %q", s)
}

// InterpolationMethod describes how data file values are mapped onto the grid
type InterpolationMethod int

const (
	InterpolationConstant InterpolationMethod = iota
	InterpolationTriangulation
	InterpolationAveraging
)

// String returns the token used in the initial field file
func (m InterpolationMethod) String() string {
	switch m {
	case InterpolationConstant:
		return "constant"
	case InterpolationTriangulation:
		return "triangulation"
	case InterpolationAveraging:
		return "averaging"
	default:
		return fmt.Sprintf("InterpolationMethod(%d)", int(m))
	}
}

// ParseInterpolationMethod parses an interpolation method token, ignoring case
func ParseInterpolationMethod(s string) (InterpolationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "constant":
		return InterpolationConstant, nil
	case "triangulation":
		return InterpolationTriangulation, nil
	case "averaging":
		return InterpolationAveraging, nil
	default:
		return 0, fmt.Errorf("unknown interpolation method %q", s)
	}
}

// AveragingType selects how samples inside a cell are aggregated
type AveragingType int

const (
	AveragingMean AveragingType = iota
	AveragingNearestNeighbor
	AveragingMax
	AveragingMin
	AveragingInverseWeightedDistance
	AveragingMinAbs
	AveragingMedian
)

var averagingTypeTokens = map[AveragingType]string{
	AveragingMean:                    "mean",
	AveragingNearestNeighbor:         "nearestNb",
	AveragingMax:                     "max",
	AveragingMin:                     "min",
	AveragingInverseWeightedDistance: "invDist",
	AveragingMinAbs:                  "minAbs",
	AveragingMedian:                  "median",
}

// String returns the token used in the initial field file
func (a AveragingType) String() string {
	if s, ok := averagingTypeTokens[a]; ok {
		return s
	}
	return fmt.Sprintf("AveragingType(%d)", int(a))
}

// ParseAveragingType parses an averaging type token, ignoring case
func ParseAveragingType(s string) (AveragingType, error) {
	for a, token := range averagingTypeTokens {
		if strings.EqualFold(strings.TrimSpace(s), token) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown averaging type %q", s)
}

// Operand describes how a field is combined with values already on the grid
type Operand int

const (
	OperandOverride Operand = iota
	OperandAppend
	OperandAdd
	OperandMultiply
	OperandMaximum
	OperandMinimum
)

var operandTokens = map[Operand]string{
	OperandOverride: "O",
	OperandAppend:   "A",
	OperandAdd:      "+",
	OperandMultiply: "*",
	OperandMaximum:  "X",
	OperandMinimum:  "N",
}

// String returns the token used in the initial field file
func (o Operand) String() string {
	if s, ok := operandTokens[o]; ok {
		return s
	}
	return fmt.Sprintf("Operand(%d)", int(o))
}

// ParseOperand parses an operand token, ignoring case
func ParseOperand(s string) (Operand, error) {
	for o, token := range operandTokens {
		if strings.EqualFold(strings.TrimSpace(s), token) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown operand %q", s)
}

// FrictionType is the roughness formulation, stored in files as an integer code
type FrictionType int

const (
	FrictionChezy            FrictionType = 0
	FrictionManning          FrictionType = 1
	FrictionWhiteColebrook   FrictionType = 2
	FrictionWallLawNikuradse FrictionType = 3
)

var frictionTypeNames = map[FrictionType]string{
	FrictionChezy:            "chezy",
	FrictionManning:          "manning",
	FrictionWhiteColebrook:   "whitecolebrook",
	FrictionWallLawNikuradse: "walllawnikuradse",
}

// Code returns the integer code written to the ifrctyp key
func (f FrictionType) Code() int {
	return int(f)
}

// String returns the lower case friction type name
func (f FrictionType) String() string {
	if s, ok := frictionTypeNames[f]; ok {
		return s
	}
	return fmt.Sprintf("FrictionType(%d)", int(f))
}

// ParseFrictionType accepts either the integer code or the friction type name
func ParseFrictionType(s string) (FrictionType, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		f := FrictionType(code)
		if _, ok := frictionTypeNames[f]; !ok {
			return 0, fmt.Errorf("unknown friction type code %d", code)
		}
		return f, nil
	}
	for f, name := range frictionTypeNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown friction type %q", s)
}
