package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Capacity is the normalized length/width/height record for a storage bin.
//
// The warehouse_layout.capacity column predates the schema cleanup and holds
// either a JSON object or a quoted dict literal left behind by the old
// importer. ParseCapacity is the only place that inconsistency is allowed to
// exist; nothing past the repository boundary sees the raw encoding.
type Capacity struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the volumetric capacity in cubic units.
func (c Capacity) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// ParseCapacity normalizes a raw capacity value of either encoding. Malformed
// input resolves to a zero-dimension capacity, never an error.
func ParseCapacity(raw []byte) Capacity {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Capacity{}
	}

	if raw[0] == '{' {
		var c Capacity
		if err := json.Unmarshal(raw, &c); err == nil {
			return c
		}
		return parseCapacityLiteral(string(raw))
	}

	// A JSONB string value wrapping the legacy literal.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseCapacityLiteral(s)
	}
	return parseCapacityLiteral(string(raw))
}

// parseCapacityLiteral decodes the legacy single-quoted dict encoding.
func parseCapacityLiteral(s string) Capacity {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Capacity{}
	}
	var c Capacity
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &c); err != nil {
		return Capacity{}
	}
	return c
}
