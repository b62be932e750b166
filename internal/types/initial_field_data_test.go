package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialFieldData_Defaults(t *testing.T) {
	d := NewInitialFieldData(QuantityBedLevel)

	assert.Equal(t, QuantityBedLevel, d.Quantity)
	assert.Equal(t, LocationTypeTwoD, d.LocationType)
	assert.InDelta(t, DefaultAveragingRelSize, d.AveragingRelSize, 1e-9)
	assert.Equal(t, DefaultAveragingNumMin, d.AveragingNumMin)
	assert.InDelta(t, DefaultAveragingPercentile, d.AveragingPercentile, 1e-9)
	assert.Nil(t, d.Value)
	assert.Nil(t, d.FrictionType)
	assert.True(t, d.IsSpatial())
	assert.False(t, d.IsParameter())
}

func TestInitialFieldData_DataFilePath(t *testing.T) {
	d := NewInitialFieldData(QuantityBedLevel)
	d.DataFileName = "bed.xyz"
	assert.Equal(t, "bed.xyz", d.DataFilePath())

	d.ParentDataDirectory = "/model"
	assert.Equal(t, filepath.Join("/model", "bed.xyz"), d.DataFilePath())
}

func TestInitialFieldFileData_Partition(t *testing.T) {
	var all []*InitialFieldData
	for _, q := range AllQuantities() {
		all = append(all, NewInitialFieldData(q), NewInitialFieldData(q))
	}
	data := NewInitialFieldFileData(all...)
	data.Add(nil)

	initial := data.InitialConditions()
	params := data.Parameters()

	require.Equal(t, data.Len(), len(initial)+len(params))
	assert.Len(t, params, 2)
	for _, f := range params {
		assert.Equal(t, QuantityFrictionCoefficient, f.Quantity)
	}
	for _, f := range initial {
		assert.NotEqual(t, QuantityFrictionCoefficient, f.Quantity)
	}

	// partitions follow later additions
	data.Add(NewInitialFieldData(QuantityFrictionCoefficient))
	assert.Len(t, data.Parameters(), 3)
	assert.Len(t, data.InitialConditions(), len(initial))
}

func TestInitialFieldFileData_AllReturnsCopy(t *testing.T) {
	data := NewInitialFieldFileData(NewInitialFieldData(QuantityBedLevel))
	fields := data.All()
	fields[0] = nil
	assert.NotNil(t, data.All()[0])
}

func TestParseTokens(t *testing.T) {
	t.Run("quantity", func(t *testing.T) {
		for _, q := range AllQuantities() {
			parsed, err := ParseQuantity(q.String())
			require.NoError(t, err)
			assert.Equal(t, q, parsed)
		}
		q, err := ParseQuantity("infiltrationcapacity")
		require.NoError(t, err)
		assert.Equal(t, QuantityInfiltrationCapacity, q)
		_, err = ParseQuantity("salinity")
		assert.Error(t, err)
	})

	t.Run("data file type", func(t *testing.T) {
		dt, err := ParseDataFileType("geotiff")
		require.NoError(t, err)
		assert.Equal(t, DataFileTypeGeoTIFF, dt)
		dt, err = ParseDataFileType("1DFIELD")
		require.NoError(t, err)
		assert.Equal(t, DataFileTypeOneDField, dt)
	})

	t.Run("operand", func(t *testing.T) {
		tests := map[string]Operand{"O": OperandOverride, "a": OperandAppend, "+": OperandAdd, "*": OperandMultiply, "x": OperandMaximum, "N": OperandMinimum}
		for token, want := range tests {
			got, err := ParseOperand(token)
			require.NoError(t, err, token)
			assert.Equal(t, want, got, token)
		}
		_, err := ParseOperand("-")
		assert.Error(t, err)
	})

	t.Run("averaging type", func(t *testing.T) {
		got, err := ParseAveragingType("NEARESTNB")
		require.NoError(t, err)
		assert.Equal(t, AveragingNearestNeighbor, got)
		assert.Equal(t, "invDist", AveragingInverseWeightedDistance.String())
	})

	t.Run("friction type", func(t *testing.T) {
		tests := map[string]FrictionType{"0": FrictionChezy, "1": FrictionManning, "WhiteColebrook": FrictionWhiteColebrook, " 3 ": FrictionWallLawNikuradse}
		for token, want := range tests {
			got, err := ParseFrictionType(token)
			require.NoError(t, err, token)
			assert.Equal(t, want, got, token)
		}
		_, err := ParseFrictionType("7")
		assert.Error(t, err)
		assert.Equal(t, 2, FrictionWhiteColebrook.Code())
	})

	t.Run("location type", func(t *testing.T) {
		got, err := ParseLocationType("1D")
		require.NoError(t, err)
		assert.Equal(t, LocationTypeOneD, got)
	})
}

func TestInitialConditionQuantityFor(t *testing.T) {
	q, ok := InitialConditionQuantityFor(QuantityWaterDepth)
	assert.True(t, ok)
	assert.Equal(t, InitialConditionWaterDepth, q)
	assert.Equal(t, QuantityWaterDepth, q.Quantity())

	_, ok = InitialConditionQuantityFor(QuantityBedLevel)
	assert.False(t, ok)

	parsed, err := ParseInitialConditionQuantity("Water_Level")
	require.NoError(t, err)
	assert.Equal(t, InitialConditionWaterLevel, parsed)
}
