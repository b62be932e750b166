package app

import (
	"github.com/deploymenttheory/go-initfield/internal/definition"
	"github.com/deploymenttheory/go-initfield/internal/model"
)

// LoadModel reads the model definition at path, or returns an empty model when path is empty
func LoadModel(ctx *Context, path string) (*model.Definition, error) {
	if path == "" {
		ctx.Log("no model definition given, using an empty model")
		return model.NewDefinition(), nil
	}

	def, err := definition.Load(ctx.Fs, path, nil)
	if err != nil {
		return nil, ClassifyError("failed to load model definition", err)
	}
	ctx.Log("loaded model definition", "path", path, "friction_type", def.FrictionType().String())
	return def, nil
}
