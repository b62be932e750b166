package services

import "github.com/google/uuid"

// FileNameContext remembers the data file name each spatial operation was read from,
// so writing an unchanged model reproduces the original file names.
//
// Read returns a fresh context, Write consumes one. A context is not safe for concurrent use.
type FileNameContext struct {
	names map[uuid.UUID]string
}

// NewFileNameContext creates an empty context
func NewFileNameContext() *FileNameContext {
	return &FileNameContext{names: make(map[uuid.UUID]string)}
}

// Remember stores the original data file name of an operation
func (c *FileNameContext) Remember(id uuid.UUID, fileName string) {
	if c.names == nil {
		c.names = make(map[uuid.UUID]string)
	}
	c.names[id] = fileName
}

// Lookup returns the original data file name of an operation, nil contexts hold nothing
func (c *FileNameContext) Lookup(id uuid.UUID) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.names[id]
	return name, ok
}

// Len returns the number of remembered operations
func (c *FileNameContext) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}
