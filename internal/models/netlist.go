// Package models defines the core data structures exchanged by the API.
// It includes the netlist entities and the graph and hierarchy views built from them.
package models

type Direction string

const (
	DirectionInput    Direction = "input"
	DirectionOutput   Direction = "output"
	DirectionInout    Direction = "inout"
	DirectionInternal Direction = "internal"
)

type Netlist struct {
	Modules []Module `json:"modules"`
}

type Module struct {
	Name       string           `json:"name"`
	Signals    []Signal         `json:"signals"`
	Submodules []ModuleInstance `json:"submodules"`
	Complexity int              `json:"complexity"`
}

type Signal struct {
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
	Width     int       `json:"width"`
}

// ModuleInstance is a submodule instantiation. PortConnections maps the
// instantiated module's port name to the net it is wired to in the parent.
type ModuleInstance struct {
	InstanceName    string            `json:"instanceName"`
	ModuleName      string            `json:"moduleName"`
	PortConnections map[string]string `json:"portConnections"`
}

// FindModule returns the module with the given name, or nil.
func (n *Netlist) FindModule(name string) *Module {
	for i := range n.Modules {
		if n.Modules[i].Name == name {
			return &n.Modules[i]
		}
	}
	return nil
}
