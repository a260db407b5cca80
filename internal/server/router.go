package server

import (
	"net/http"

	"github.com/fleetops/fleet-management/internal/handlers"
	"github.com/fleetops/fleet-management/internal/middleware"
	"github.com/fleetops/fleet-management/internal/models"
)

// Handlers bundles every HTTP handler the router dispatches to.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Vehicles    *handlers.VehicleHandler
	Trips       *handlers.TripHandler
	Maintenance *handlers.MaintenanceHandler
	Inspections *handlers.InspectionHandler
	Issues      *handlers.IssueHandler
	Parts       *handlers.PartHandler
	Reports     *handlers.ReportHandler
	Users       *handlers.UserHandler
	Health      *handlers.HealthHandler
}

// route pairs a mux pattern with its handler and allowed role set.
// Roles == nil means public; an empty slice means any authenticated user.
type route struct {
	pattern string
	handler http.HandlerFunc
	roles   []models.Role
}

// anyAuthenticated marks routes open to every valid token holder.
var anyAuthenticated = []models.Role{}

// routes is the declarative authorization policy: every operation names the
// role set permitted to invoke it. The table is consulted uniformly before
// dispatch; handlers never re-check roles.
func routes(h *Handlers) []route {
	admin := []models.Role{models.RoleAdmin}
	adminMechanic := []models.Role{models.RoleAdmin, models.RoleMechanic}
	adminMechanicFinance := []models.Role{models.RoleAdmin, models.RoleMechanic, models.RoleFinance}
	adminFinance := []models.Role{models.RoleAdmin, models.RoleFinance}
	driver := []models.Role{models.RoleDriver}

	return []route{
		{"POST /api/Auth/login", h.Auth.Login, nil},
		{"POST /api/Auth/register", h.Auth.Register, nil},
		{"GET /api/Auth/me", h.Auth.Me, anyAuthenticated},

		{"GET /api/Vehicles", h.Vehicles.List, anyAuthenticated},
		{"GET /api/Vehicles/{id}", h.Vehicles.Get, anyAuthenticated},
		{"GET /api/Vehicles/status/{status}", h.Vehicles.ListByStatus, anyAuthenticated},
		{"POST /api/Vehicles", h.Vehicles.Create, admin},
		{"PUT /api/Vehicles/{id}", h.Vehicles.Update, adminMechanic},
		{"DELETE /api/Vehicles/{id}", h.Vehicles.Delete, admin},
		{"POST /api/Vehicles/{vehicleId}/assign/{driverId}", h.Vehicles.AssignDriver, admin},

		{"GET /api/Trips", h.Trips.List, anyAuthenticated},
		{"GET /api/Trips/{id}", h.Trips.Get, anyAuthenticated},
		{"GET /api/Trips/driver/{id}", h.Trips.ListByDriver, anyAuthenticated},
		{"GET /api/Trips/vehicle/{id}", h.Trips.ListByVehicle, anyAuthenticated},
		{"POST /api/Trips", h.Trips.Start, driver},
		{"POST /api/Trips/start", h.Trips.Start, driver},
		{"POST /api/Trips/{id}/end", h.Trips.End, driver},

		{"GET /api/Maintenance", h.Maintenance.List, adminMechanicFinance},
		{"GET /api/Maintenance/{id}", h.Maintenance.Get, adminMechanicFinance},
		{"GET /api/Maintenance/vehicle/{id}", h.Maintenance.ListByVehicle, adminMechanicFinance},
		{"POST /api/Maintenance", h.Maintenance.Create, adminMechanic},
		{"POST /api/Maintenance/schedule", h.Maintenance.Create, adminMechanic},
		{"PUT /api/Maintenance/records/{id}", h.Maintenance.Update, adminMechanic},
		{"DELETE /api/Maintenance/records/{id}", h.Maintenance.Delete, adminMechanic},
		{"GET /api/Maintenance/alerts", h.Maintenance.Alerts, admin},

		{"GET /api/Inspections", h.Inspections.List, adminMechanic},
		{"GET /api/Inspections/{id}", h.Inspections.Get, adminMechanic},
		{"GET /api/Inspections/vehicle/{id}", h.Inspections.ListByVehicle, adminMechanic},
		{"GET /api/Inspections/type/{type}", h.Inspections.ListByType, adminMechanic},
		{"GET /api/Inspections/upcoming", h.Inspections.Upcoming, adminMechanic},
		{"GET /api/Inspections/alerts", h.Inspections.Alerts, adminMechanic},
		{"POST /api/Inspections", h.Inspections.Create, adminMechanic},
		{"PUT /api/Inspections/{id}", h.Inspections.Update, adminMechanic},
		{"DELETE /api/Inspections/{id}", h.Inspections.Delete, adminMechanic},

		{"GET /api/Issues", h.Issues.List, adminMechanic},
		{"GET /api/Issues/{id}", h.Issues.Get, adminMechanic},
		{"GET /api/Issues/vehicle/{id}", h.Issues.ListByVehicle, adminMechanic},
		{"GET /api/Issues/status/{status}", h.Issues.ListByStatus, adminMechanic},
		{"POST /api/Issues", h.Issues.Create, driver},
		{"PUT /api/Issues/{id}", h.Issues.Update, adminMechanic},
		{"DELETE /api/Issues/{id}", h.Issues.Delete, admin},

		{"GET /api/Parts", h.Parts.List, adminMechanic},
		{"GET /api/Parts/{id}", h.Parts.Get, adminMechanic},
		{"GET /api/Parts/low-stock", h.Parts.ListLowStock, adminMechanic},
		{"POST /api/Parts", h.Parts.Create, adminMechanic},
		{"PUT /api/Parts/{id}", h.Parts.Update, adminMechanic},
		{"POST /api/Parts/{id}/use", h.Parts.UseStock, adminMechanic},
		{"DELETE /api/Parts/{id}", h.Parts.Delete, adminMechanic},

		{"GET /api/Reports/maintenance/costs", h.Reports.MaintenanceCosts, adminFinance},
		{"GET /api/Reports/fuel-efficiency", h.Reports.FuelEfficiency, adminFinance},
		{"GET /api/Reports/fuel-efficiency/vehicle/{id}", h.Reports.FuelEfficiencyByVehicle, adminFinance},

		{"GET /api/Users", h.Users.List, admin},
		{"GET /api/Users/drivers", h.Users.ListDrivers, admin},
		{"GET /api/Users/{id}", h.Users.Get, admin},
		{"DELETE /api/Users/{id}", h.Users.Delete, admin},

		{"GET /api/Health", h.Health.Health, nil},
		{"GET /api/Health/detailed", h.Health.Detailed, nil},
	}
}

// New builds the HTTP handler: mux patterns from the policy table, every
// protected route behind Authenticate and the single role check.
func New(h *Handlers, authMW *middleware.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()
	for _, rt := range routes(h) {
		var handler http.Handler = rt.handler
		if rt.roles != nil {
			handler = authMW.Authenticate(authMW.RequireRoles(rt.roles...)(handler))
		}
		mux.Handle(rt.pattern, handler)
	}
	return middleware.RequestLogger(mux)
}
