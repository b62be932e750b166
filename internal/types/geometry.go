package types

// Point is a sample location with an optional value
type Point struct {
	X     float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y     float64 `json:"y" yaml:"y" mapstructure:"y"`
	Value float64 `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
}

// Polygon is a named closed ring of points
type Polygon struct {
	Name   string  `json:"name" yaml:"name" mapstructure:"name"`
	Points []Point `json:"points" yaml:"points" mapstructure:"points"`
}
