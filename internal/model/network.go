package model

// Node is a network vertex
type Node struct {
	Name string  `mapstructure:"name" yaml:"name" json:"name"`
	X    float64 `mapstructure:"x" yaml:"x" json:"x"`
	Y    float64 `mapstructure:"y" yaml:"y" json:"y"`
}

// Branch is a network edge between two nodes
type Branch struct {
	Name   string  `mapstructure:"name" yaml:"name" json:"name"`
	Source string  `mapstructure:"source" yaml:"source" json:"source"`
	Target string  `mapstructure:"target" yaml:"target" json:"target"`
	Length float64 `mapstructure:"length" yaml:"length" json:"length"`
}

// Network is the 1D channel network of a model
type Network struct {
	Nodes    []Node   `mapstructure:"nodes" yaml:"nodes" json:"nodes"`
	Branches []Branch `mapstructure:"branches" yaml:"branches" json:"branches"`
}

// VertexCount returns the number of nodes
func (n *Network) VertexCount() int {
	if n == nil {
		return 0
	}
	return len(n.Nodes)
}

// EdgeCount returns the number of branches
func (n *Network) EdgeCount() int {
	if n == nil {
		return 0
	}
	return len(n.Branches)
}

// IsEmpty reports whether the network has neither nodes nor branches
func (n *Network) IsEmpty() bool {
	return n.VertexCount() == 0 && n.EdgeCount() == 0
}
