// Package netlist builds, decodes and transforms netlists.
// It produces the graph and hierarchy views served by the API.
package netlist

import (
	"encoding/json"
	"fmt"

	"github.com/netviz/core/internal/models"
)

// Decode unmarshals a netlist document. Only the JSON shape is checked.
func Decode(data []byte) (*models.Netlist, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty netlist data")
	}

	var netlist models.Netlist
	if err := json.Unmarshal(data, &netlist); err != nil {
		return nil, fmt.Errorf("failed to unmarshal netlist: %w", err)
	}

	if netlist.Modules == nil {
		return nil, fmt.Errorf("invalid netlist: missing modules field")
	}

	return &netlist, nil
}
