// Package models defines the core data structures exchanged by the API.
// It includes the netlist entities and the graph and hierarchy views built from them.
package models

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

type Node struct {
	ID         string         `json:"id"`
	Module     string         `json:"module"`
	Label      string         `json:"label"`
	Complexity int            `json:"complexity"`
	Signals    int            `json:"signals"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type Edge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Type     string `json:"type"`
	Instance string `json:"instance"`
}

type Stats struct {
	TotalNodes         int               `json:"total_nodes"`
	TotalEdges         int               `json:"total_edges"`
	SignalsByDirection map[Direction]int `json:"signals_by_direction,omitempty"`
}
