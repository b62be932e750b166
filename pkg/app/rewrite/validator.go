package rewrite

import (
	"path/filepath"

	"github.com/deploymenttheory/go-initfield/pkg/app"
)

// Validate validates a rewrite request
func (r *Request) Validate() error {
	if err := r.Source.Validate(); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid source file", err)
	}
	if err := r.Target.Validate(); err != nil {
		return app.NewError(app.ErrCodeInvalidInput, "invalid target file", err)
	}

	if filepath.Clean(r.Source.FilePath) == filepath.Clean(r.Target.FilePath) {
		return app.NewError(app.ErrCodeInvalidInput, "source and target must differ", nil)
	}

	return nil
}
