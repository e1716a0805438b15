package models

// CategoryCount is one row of the category breakdown. The _id key is kept for
// wire compatibility with the previous aggregation output.
type CategoryCount struct {
	Category string `json:"_id"`
	Count    int    `json:"count"`
}

// ZoneStats reports a zone's aggregated volumetric utilization.
type ZoneStats struct {
	Name        string `json:"name"`
	Utilization string `json:"utilization"`
	Bins        int    `json:"bins"`
}

// WarehouseStats is the statistics snapshot served by /api/warehouse/stats.
type WarehouseStats struct {
	Zones        []ZoneStats     `json:"zones"`
	Categories   []CategoryCount `json:"categories"`
	TotalItems   int64           `json:"total_items"`
	ExpiringSoon int64           `json:"expiring_soon"`
}

// DashboardData backs the landing dashboard route.
type DashboardData struct {
	Items       []*Item  `json:"items"`
	TotalItems  int64    `json:"total_items"`
	Zones       []string `json:"zones"`
	Utilization string   `json:"utilization"`
}

// ItemDetails is an item enriched with its bin and recent movement history.
// BinDetails is null when the item's location does not match a known bin.
type ItemDetails struct {
	Item
	BinDetails      *Bin           `json:"bin_details"`
	MovementHistory []*MovementLog `json:"movement_history"`
}

// ReportResult describes an exported report object.
type ReportResult struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Records    int    `json:"records"`
}
