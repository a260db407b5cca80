package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// ReportService computes read-only aggregations over maintenance and trip
// records. Nothing here mutates state.
type ReportService struct {
	maintenance db.MaintenanceCollection
	trips       db.TripCollection
}

// NewReportService constructs a ReportService over the given collections.
func NewReportService(c *db.Collections) *ReportService {
	return &ReportService{maintenance: c.Maintenance, trips: c.Trips}
}

// MaintenanceCosts aggregates completed maintenance spend, optionally
// limited to completion dates within [start, end].
func (s *ReportService) MaintenanceCosts(ctx context.Context, start, end *time.Time) (*models.MaintenanceCostReport, error) {
	filter := bson.M{
		"status":          models.MaintenanceCompleted,
		"completion_date": bson.M{"$ne": nil},
	}
	records, err := s.maintenance.FindMaintenance(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &models.MaintenanceCostReport{
		ByVehicle: []models.VehicleCostBreakdown{},
		ByType:    []models.TypeCostBreakdown{},
		ByMonth:   []models.MonthlyCost{},
	}

	byVehicle := make(map[string]*models.VehicleCostBreakdown)
	byType := make(map[string]*models.TypeCostBreakdown)
	byMonth := make(map[string]float64)

	for _, rec := range records {
		if rec.CompletionDate == nil {
			continue
		}
		if start != nil && rec.CompletionDate.Before(*start) {
			continue
		}
		if end != nil && rec.CompletionDate.After(*end) {
			continue
		}

		report.TotalCost += rec.Cost

		v, ok := byVehicle[rec.VehicleID]
		if !ok {
			v = &models.VehicleCostBreakdown{VehicleID: rec.VehicleID}
			byVehicle[rec.VehicleID] = v
		}
		v.TotalCost += rec.Cost
		v.RecordCount++

		t, ok := byType[rec.Type]
		if !ok {
			t = &models.TypeCostBreakdown{Type: rec.Type}
			byType[rec.Type] = t
		}
		t.TotalCost += rec.Cost
		t.RecordCount++

		byMonth[rec.CompletionDate.Format("2006-01")] += rec.Cost
	}

	if len(byVehicle) > 0 {
		report.AverageCostPerVehicle = report.TotalCost / float64(len(byVehicle))
	}

	for _, v := range byVehicle {
		report.ByVehicle = append(report.ByVehicle, *v)
	}
	sort.SliceStable(report.ByVehicle, func(i, j int) bool {
		return report.ByVehicle[i].TotalCost > report.ByVehicle[j].TotalCost
	})

	for _, t := range byType {
		report.ByType = append(report.ByType, *t)
	}
	sort.SliceStable(report.ByType, func(i, j int) bool {
		return report.ByType[i].TotalCost > report.ByType[j].TotalCost
	})

	for month, cost := range byMonth {
		report.ByMonth = append(report.ByMonth, models.MonthlyCost{Month: month, TotalCost: cost})
	}
	sort.SliceStable(report.ByMonth, func(i, j int) bool {
		return report.ByMonth[i].Month < report.ByMonth[j].Month
	})

	return report, nil
}

// FuelEfficiency summarizes fuel use per vehicle over qualifying trips:
// those with an end mileage and positive fuel used. The average is taken
// over the stored per-trip ratios.
func (s *ReportService) FuelEfficiency(ctx context.Context) ([]models.VehicleFuelEfficiency, error) {
	trips, err := s.trips.FindTrips(ctx, bson.M{
		"end_mileage": bson.M{"$ne": nil},
		"fuel_used":   bson.M{"$gt": 0},
	})
	if err != nil {
		return nil, err
	}
	return summarizeFuelEfficiency(trips), nil
}

// FuelEfficiencyByVehicle reports one vehicle's summary, or ErrNotFound when
// the vehicle has no qualifying trips.
func (s *ReportService) FuelEfficiencyByVehicle(ctx context.Context, vehicleID string) (*models.VehicleFuelEfficiency, error) {
	trips, err := s.trips.FindTrips(ctx, bson.M{
		"vehicle_id":  vehicleID,
		"end_mileage": bson.M{"$ne": nil},
		"fuel_used":   bson.M{"$gt": 0},
	})
	if err != nil {
		return nil, err
	}

	summaries := summarizeFuelEfficiency(trips)
	if len(summaries) == 0 {
		return nil, ErrNotFound
	}
	return &summaries[0], nil
}

func summarizeFuelEfficiency(trips []models.Trip) []models.VehicleFuelEfficiency {
	type acc struct {
		ratioSum float64
		distance float64
		fuel     float64
		count    int
	}
	byVehicle := make(map[string]*acc)

	for _, t := range trips {
		if t.EndMileage == nil || t.FuelUsed == nil || *t.FuelUsed <= 0 || t.FuelEfficiency == nil {
			continue
		}
		a, ok := byVehicle[t.VehicleID]
		if !ok {
			a = &acc{}
			byVehicle[t.VehicleID] = a
		}
		a.ratioSum += *t.FuelEfficiency
		a.distance += *t.EndMileage - t.StartMileage
		a.fuel += *t.FuelUsed
		a.count++
	}

	summaries := make([]models.VehicleFuelEfficiency, 0, len(byVehicle))
	for id, a := range byVehicle {
		summaries = append(summaries, models.VehicleFuelEfficiency{
			VehicleID:         id,
			AverageEfficiency: a.ratioSum / float64(a.count),
			TotalDistance:     a.distance,
			TotalFuelUsed:     a.fuel,
			TripCount:         a.count,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].VehicleID < summaries[j].VehicleID
	})
	return summaries
}
