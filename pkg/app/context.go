package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Common timeouts
	DefaultTimeout time.Duration

	Logger *slog.Logger
	Fs     afero.Fs
	Out    io.Writer
}

// NewContext creates a new application context on the host file system
func NewContext() *Context {
	return &Context{
		Context:        context.Background(),
		OutputFormat:   "table",
		DefaultTimeout: 30 * time.Second,
		Logger:         slog.Default(),
		Fs:             afero.NewOsFs(),
		Out:            os.Stdout,
	}
}

// WithTimeout creates a context with timeout
func (c *Context) WithTimeout(timeout time.Duration) (*Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.Context, timeout)
	newCtx := *c
	newCtx.Context = ctx
	return &newCtx, cancel
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string, args ...any) {
	if !c.Quiet && c.Verbose {
		c.Logger.Info(message, args...)
	}
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string, args ...any) {
	if !c.Quiet {
		c.Logger.Error(message, args...)
	}
}
