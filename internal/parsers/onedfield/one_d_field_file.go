// Package onedfield reads and writes the global 1D initial condition file
// (Initial{WaterLevel|WaterDepth}.ini) that a 1dField record refers to.
package onedfield

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

const (
	fileVersion = "2.00"
	fileType    = "1dField"
)

// FileName returns the conventional file name for a 1D initial condition quantity
func FileName(q types.InitialConditionQuantity) string {
	return "Initial" + q.Quantity().DisplayName() + ".ini"
}

// Global is the content of the [Global] section
type Global struct {
	Quantity types.InitialConditionQuantity
	Unit     string
	Value    float64
}

// Read parses the [Global] section of a 1D field file
func Read(r io.Reader) (*Global, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read 1D field file: %w", err)
	}
	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse 1D field file: %w", err)
	}

	sec, err := file.GetSection("global")
	if err != nil {
		return nil, fmt.Errorf("1D field file has no [Global] section")
	}

	g := &Global{Unit: sec.Key("unit").String()}
	if g.Quantity, err = types.ParseInitialConditionQuantity(sec.Key("quantity").String()); err != nil {
		return nil, err
	}
	if g.Value, err = sec.Key("value").Float64(); err != nil {
		return nil, fmt.Errorf("invalid 1D field value %q", sec.Key("value").String())
	}
	return g, nil
}

// Write emits a 1D field file holding a single global value
func Write(w io.Writer, g Global) error {
	file := ini.Empty()

	general, err := file.NewSection("General")
	if err != nil {
		return err
	}
	_, _ = general.NewKey("fileVersion", fileVersion)
	_, _ = general.NewKey("fileType", fileType)

	global, err := file.NewSection("Global")
	if err != nil {
		return err
	}
	unit := g.Unit
	if unit == "" {
		unit = "m"
	}
	_, _ = global.NewKey("quantity", g.Quantity.String())
	_, _ = global.NewKey("unit", unit)
	_, _ = global.NewKey("value", strconv.FormatFloat(g.Value, 'f', -1, 64))

	_, err = file.WriteTo(w)
	return err
}
