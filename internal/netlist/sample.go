// Package netlist builds, decodes and transforms netlists.
// It produces the graph and hierarchy views served by the API.
package netlist

import "github.com/netviz/core/internal/models"

// Sample returns the hand-built demo netlist: an "alu" and a "cpu" that
// instantiates it once. Each call returns a fresh value.
func Sample() *models.Netlist {
	alu := models.Module{
		Name: "alu",
		Signals: []models.Signal{
			{Name: "A", Direction: models.DirectionInput, Width: 32},
			{Name: "B", Direction: models.DirectionInput, Width: 32},
			{Name: "Result", Direction: models.DirectionOutput, Width: 32},
		},
		Submodules: []models.ModuleInstance{},
		Complexity: 120,
	}

	cpu := models.Module{
		Name: "cpu",
		Signals: []models.Signal{
			{Name: "clk", Direction: models.DirectionInput, Width: 1},
			{Name: "reset", Direction: models.DirectionInput, Width: 1},
			{Name: "data_out", Direction: models.DirectionOutput, Width: 32},
		},
		Submodules: []models.ModuleInstance{
			{
				InstanceName: "alu1",
				ModuleName:   "alu",
				PortConnections: map[string]string{
					"A":      "alu_in_a",
					"B":      "alu_in_b",
					"Result": "alu_result",
				},
			},
		},
		Complexity: 500,
	}

	return &models.Netlist{
		Modules: []models.Module{alu, cpu},
	}
}
