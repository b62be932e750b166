// Package quantities maps initial field quantities onto model data item names.
package quantities

import (
	"fmt"

	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Data item names used by the default registry
const (
	BedLevelDataItemName             = "Bed Level"
	InitialWaterLevelDataItemName    = "Initial Water Level"
	InitialWaterDepthDataItemName    = "Initial Water Depth"
	FrictionCoefficientDataItemName  = "Friction Coefficient"
	InfiltrationCapacityDataItemName = "Infiltration Capacity"
)

// Entry associates a quantity with a data item name
type Entry struct {
	Quantity     types.Quantity
	DataItemName string
}

// Registry is an immutable quantity to data item name mapping
type Registry struct {
	entries []Entry
	byQty   map[types.Quantity]string
}

// NewRegistry builds a registry, rejecting duplicate quantities and empty names
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byQty: make(map[types.Quantity]string, len(entries))}
	for _, e := range entries {
		if !e.Quantity.IsValid() {
			return nil, fmt.Errorf("invalid quantity %d", int(e.Quantity))
		}
		if e.DataItemName == "" {
			return nil, fmt.Errorf("empty data item name for quantity %s", e.Quantity)
		}
		if _, exists := r.byQty[e.Quantity]; exists {
			return nil, fmt.Errorf("duplicate quantity %s", e.Quantity)
		}
		r.byQty[e.Quantity] = e.DataItemName
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// DefaultRegistry returns the five supported quantities
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		Entry{types.QuantityBedLevel, BedLevelDataItemName},
		Entry{types.QuantityWaterLevel, InitialWaterLevelDataItemName},
		Entry{types.QuantityWaterDepth, InitialWaterDepthDataItemName},
		Entry{types.QuantityFrictionCoefficient, FrictionCoefficientDataItemName},
		Entry{types.QuantityInfiltrationCapacity, InfiltrationCapacityDataItemName},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// SupportedQuantities returns a copy of the quantity to data item name mapping
func (r *Registry) SupportedQuantities() map[types.Quantity]string {
	out := make(map[types.Quantity]string, len(r.byQty))
	for q, name := range r.byQty {
		out[q] = name
	}
	return out
}

// Entries returns the entries in registration order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Supports reports whether the quantity is registered
func (r *Registry) Supports(q types.Quantity) bool {
	_, ok := r.byQty[q]
	return ok
}

// DataItemName returns the data item name for a quantity
func (r *Registry) DataItemName(q types.Quantity) (string, bool) {
	name, ok := r.byQty[q]
	return name, ok
}

// ContainsSupportedSpatialOperations reports whether any registered data item has operations
func (r *Registry) ContainsSupportedSpatialOperations(source interfaces.SpatialOperationSource) bool {
	if source == nil {
		return false
	}
	for _, e := range r.entries {
		if len(source.SpatialOperations(e.DataItemName)) > 0 {
			return true
		}
	}
	return false
}
