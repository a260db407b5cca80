package models

// VehicleCostBreakdown is the per-vehicle slice of the cost report.
type VehicleCostBreakdown struct {
	VehicleID   string  `json:"vehicleId"`
	TotalCost   float64 `json:"totalCost"`
	RecordCount int     `json:"recordCount"`
}

// TypeCostBreakdown is the per-maintenance-type slice of the cost report.
type TypeCostBreakdown struct {
	Type        string  `json:"type"`
	TotalCost   float64 `json:"totalCost"`
	RecordCount int     `json:"recordCount"`
}

// MonthlyCost is the per-calendar-month slice of the cost report.
type MonthlyCost struct {
	Month     string  `json:"month"` // "2026-01"
	TotalCost float64 `json:"totalCost"`
}

// MaintenanceCostReport aggregates completed maintenance spend.
type MaintenanceCostReport struct {
	TotalCost             float64                `json:"totalCost"`
	AverageCostPerVehicle float64                `json:"averageCostPerVehicle"`
	ByVehicle             []VehicleCostBreakdown `json:"byVehicle"`
	ByType                []TypeCostBreakdown    `json:"byType"`
	ByMonth               []MonthlyCost          `json:"byMonth"`
}

// VehicleFuelEfficiency summarizes qualifying trips for one vehicle.
// AverageEfficiency is the mean of the stored per-trip ratios, not a ratio
// of the summed totals.
type VehicleFuelEfficiency struct {
	VehicleID         string  `json:"vehicleId"`
	AverageEfficiency float64 `json:"averageEfficiency"`
	TotalDistance     float64 `json:"totalDistance"`
	TotalFuelUsed     float64 `json:"totalFuelUsed"`
	TripCount         int     `json:"tripCount"`
}
