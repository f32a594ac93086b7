package model

// AdminStats aggregates inventory, lead and deal counts for the dashboard
type AdminStats struct {
	Vehicles VehicleStats `json:"vehicles"`
	Leads    LeadStats    `json:"leads"`
	Deals    DealStats    `json:"deals"`
}

type VehicleStats struct {
	Total        int64   `json:"total"`
	Available    int64   `json:"available"`
	Sold         int64   `json:"sold"`
	AveragePrice float64 `json:"average_price"`
}

type LeadStats struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}

type DealStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}
