package models

// Bin is a physical storage slot in the warehouse layout, identified by
// zone/rack/bin coordinates. Capacity is normalized by ParseCapacity at the
// repository boundary. CurrentUtilization is a fraction of volumetric
// capacity, not an absolute volume; a missing value scans as 0. Bins are
// read-only in this service.
type Bin struct {
	ZoneID             string   `json:"zone_id" db:"zone_id"`
	RackID             string   `json:"rack_id" db:"rack_id"`
	BinID              string   `json:"bin_id" db:"bin_id"`
	Capacity           Capacity `json:"capacity" db:"capacity"`
	CurrentUtilization float64  `json:"current_utilization" db:"current_utilization"`
}

// UsedVolume returns the occupied volume implied by the utilization fraction.
func (b *Bin) UsedVolume() float64 {
	return b.Capacity.Volume() * b.CurrentUtilization
}
