package model

import (
	"github.com/google/uuid"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Definition holds the model settings the initial field file reads and writes.
// It is not safe for concurrent use.
type Definition struct {
	frictionType               types.FrictionType
	initialConditionQuantity2D types.InitialConditionQuantity
	initialConditionQuantity1D types.InitialConditionQuantity
	initialConditionValue1D    float64

	network    *Network
	operations map[string][]SpatialOperation
}

// NewDefinition creates an empty definition with Chezy friction and water level initial conditions
func NewDefinition() *Definition {
	return &Definition{
		frictionType: types.FrictionChezy,
		network:      &Network{},
		operations:   make(map[string][]SpatialOperation),
	}
}

// FrictionType returns the globally configured friction type
func (d *Definition) FrictionType() types.FrictionType { return d.frictionType }

// SetFrictionType sets the global friction type
func (d *Definition) SetFrictionType(f types.FrictionType) { d.frictionType = f }

// InitialConditionQuantity2D returns the quantity used for the 2D initial condition
func (d *Definition) InitialConditionQuantity2D() types.InitialConditionQuantity {
	return d.initialConditionQuantity2D
}

// SetInitialConditionQuantity2D sets the quantity used for the 2D initial condition
func (d *Definition) SetInitialConditionQuantity2D(q types.InitialConditionQuantity) {
	d.initialConditionQuantity2D = q
}

// InitialConditionQuantity1D returns the quantity used for the 1D initial condition
func (d *Definition) InitialConditionQuantity1D() types.InitialConditionQuantity {
	return d.initialConditionQuantity1D
}

// SetInitialConditionQuantity1D sets the quantity used for the 1D initial condition
func (d *Definition) SetInitialConditionQuantity1D(q types.InitialConditionQuantity) {
	d.initialConditionQuantity1D = q
}

// InitialConditionValue1D returns the global 1D initial condition value
func (d *Definition) InitialConditionValue1D() float64 { return d.initialConditionValue1D }

// SetInitialConditionValue1D sets the global 1D initial condition value
func (d *Definition) SetInitialConditionValue1D(v float64) { d.initialConditionValue1D = v }

// Network returns the 1D network of the model, never nil
func (d *Definition) Network() *Network {
	if d.network == nil {
		d.network = &Network{}
	}
	return d.network
}

// SetNetwork replaces the 1D network
func (d *Definition) SetNetwork(n *Network) { d.network = n }

// SpatialOperations returns the operations registered for a data item
func (d *Definition) SpatialOperations(dataItemName string) []SpatialOperation {
	ops := d.operations[dataItemName]
	out := make([]SpatialOperation, len(ops))
	copy(out, ops)
	return out
}

// AddSpatialOperation appends an operation to a data item
func (d *Definition) AddSpatialOperation(dataItemName string, op SpatialOperation) {
	if op == nil {
		return
	}
	if d.operations == nil {
		d.operations = make(map[string][]SpatialOperation)
	}
	d.operations[dataItemName] = append(d.operations[dataItemName], op)
}

// FindSpatialOperation looks an operation up by identity within a data item
func (d *Definition) FindSpatialOperation(dataItemName string, id uuid.UUID) (SpatialOperation, bool) {
	for _, op := range d.operations[dataItemName] {
		if op.ID() == id {
			return op, true
		}
	}
	return nil, false
}
