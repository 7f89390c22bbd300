// Package netlist builds, decodes and transforms netlists.
// It produces the graph and hierarchy views served by the API.
package netlist

import (
	"fmt"

	"github.com/netviz/core/internal/models"
)

const edgeInstantiates = "instantiates"

// BuildGraph turns a netlist into one node per module and one edge per
// submodule instance, pointing from the parent to the instantiated module.
// Duplicate module names keep the first definition.
func BuildGraph(netlist *models.Netlist) *models.Graph {
	graph := &models.Graph{
		Nodes: []models.Node{},
		Edges: []models.Edge{},
	}
	nodeMap := make(map[string]bool)
	byDirection := make(map[models.Direction]int)

	for _, mod := range netlist.Modules {
		if nodeMap[mod.Name] {
			continue
		}

		graph.Nodes = append(graph.Nodes, models.Node{
			ID:         mod.Name,
			Module:     mod.Name,
			Label:      fmt.Sprintf("%s (%d signals)", mod.Name, len(mod.Signals)),
			Complexity: mod.Complexity,
			Signals:    len(mod.Signals),
			Metadata:   buildMetadata(mod),
		})
		nodeMap[mod.Name] = true

		for _, sig := range mod.Signals {
			byDirection[sig.Direction]++
		}

		for _, inst := range mod.Submodules {
			graph.Edges = append(graph.Edges, models.Edge{
				Source:   mod.Name,
				Target:   inst.ModuleName,
				Type:     edgeInstantiates,
				Instance: inst.InstanceName,
			})
		}
	}

	graph.Stats = &models.Stats{
		TotalNodes:         len(graph.Nodes),
		TotalEdges:         len(graph.Edges),
		SignalsByDirection: byDirection,
	}

	return graph
}

func buildMetadata(mod models.Module) map[string]any {
	metadata := map[string]any{}

	width := 0
	for _, sig := range mod.Signals {
		width += sig.Width
	}
	if width > 0 {
		metadata["total_width"] = width
	}

	if len(mod.Submodules) > 0 {
		instances := make([]string, 0, len(mod.Submodules))
		for _, inst := range mod.Submodules {
			instances = append(instances, inst.InstanceName)
		}
		metadata["instances"] = instances
	}

	if len(metadata) == 0 {
		return nil
	}
	return metadata
}
