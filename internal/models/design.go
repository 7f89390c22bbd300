package models

// Design is the instance hierarchy rooted at modules nobody instantiates.
type Design struct {
	TopInstances []InstanceNode `json:"top_instances"`
}

type InstanceNode struct {
	InstanceName string         `json:"instance_name"`
	ModuleType   string         `json:"module_type"`
	Complexity   int            `json:"complexity"`
	Children     []InstanceNode `json:"children"`
}
