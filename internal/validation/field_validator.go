// Package validation checks initial field records against a model configuration.
package validation

import (
	"github.com/deploymenttheory/go-initfield/internal/interfaces"
	"github.com/deploymenttheory/go-initfield/internal/quantities"
	"github.com/deploymenttheory/go-initfield/internal/types"
)

// fieldValidator implements the FieldValidator interface
type fieldValidator struct {
	registry *quantities.Registry
}

// NewFieldValidator creates a validator for the quantities in registry
func NewFieldValidator(registry *quantities.Registry) interfaces.FieldValidator {
	if registry == nil {
		registry = quantities.DefaultRegistry()
	}
	return &fieldValidator{registry: registry}
}

// Validate applies the rules in order and returns the first failure
func (v *fieldValidator) Validate(field *types.InitialFieldData, def interfaces.ModelDefinition) types.ValidationResult {
	if field == nil {
		return types.ValidationFailure(types.ReasonUnsupportedQuantity, "Missing initial field")
	}

	if !v.registry.Supports(field.Quantity) {
		return types.ValidationFailure(types.ReasonUnsupportedQuantity,
			"Quantity %s is not supported, skipping %s", field.Quantity.DisplayName(), field.DataFileName)
	}

	if field.AveragingType == types.AveragingMedian {
		return types.ValidationFailure(types.ReasonUnsupportedAveragingType,
			"Averaging type %s is not supported, skipping %s", field.AveragingType, field.DataFileName)
	}

	if field.Quantity == types.QuantityFrictionCoefficient && field.FrictionType != nil && def != nil {
		if field.FrictionType.Code() != def.FrictionType().Code() {
			return types.ValidationFailure(types.ReasonFrictionTypeMismatch,
				"Friction type %s (%d) of %s does not match the model friction type %s (%d)",
				field.FrictionType, field.FrictionType.Code(), field.DataFileName,
				def.FrictionType(), def.FrictionType().Code())
		}
	}

	return types.ValidationSuccess()
}
