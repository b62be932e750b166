package inspect

import (
	"path/filepath"
	"strings"

	"github.com/deploymenttheory/go-initfield/pkg/app"
)

var modelExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
	".toml": true,
}

// Validate validates an inspection request
func (r *Request) Validate() error {
	if err := r.Target.Validate(); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid initial field file", err)
	}

	if r.ModelPath != "" && !modelExtensions[strings.ToLower(filepath.Ext(r.ModelPath))] {
		return app.NewError(app.ErrCodeInvalidInput, "model definition must be a yaml, json or toml file", nil)
	}

	return nil
}
