package netlist

import "github.com/netviz/core/internal/models"

// BuildDesign expands every top-level module (one that no other module
// instantiates) into its instance tree. Tops keep netlist order.
func BuildDesign(netlist *models.Netlist) *models.Design {
	defs := make(map[string]*models.Module, len(netlist.Modules))
	for i := range netlist.Modules {
		if _, ok := defs[netlist.Modules[i].Name]; !ok {
			defs[netlist.Modules[i].Name] = &netlist.Modules[i]
		}
	}

	design := &models.Design{TopInstances: []models.InstanceNode{}}
	for _, name := range TopLevelModules(netlist) {
		path := map[string]bool{}
		design.TopInstances = append(design.TopInstances, buildInstanceNode(defs, name, name, path))
	}

	return design
}

// TopLevelModules returns the names of modules not instantiated anywhere.
func TopLevelModules(netlist *models.Netlist) []string {
	instantiated := make(map[string]bool)
	for _, mod := range netlist.Modules {
		for _, inst := range mod.Submodules {
			instantiated[inst.ModuleName] = true
		}
	}

	seen := make(map[string]bool)
	tops := []string{}
	for _, mod := range netlist.Modules {
		if instantiated[mod.Name] || seen[mod.Name] {
			continue
		}
		seen[mod.Name] = true
		tops = append(tops, mod.Name)
	}

	return tops
}

// buildInstanceNode stops descending when moduleType is already on the
// current path, so recursive instantiations terminate.
func buildInstanceNode(defs map[string]*models.Module, instanceName, moduleType string, path map[string]bool) models.InstanceNode {
	node := models.InstanceNode{
		InstanceName: instanceName,
		ModuleType:   moduleType,
		Children:     []models.InstanceNode{},
	}

	mod, ok := defs[moduleType]
	if ok && !path[moduleType] {
		path[moduleType] = true
		for _, inst := range mod.Submodules {
			node.Children = append(node.Children, buildInstanceNode(defs, inst.InstanceName, inst.ModuleName, path))
		}
		delete(path, moduleType)
	}

	node.Complexity = len(node.Children) + 1
	return node
}
