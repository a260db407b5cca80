package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/models"
)

// UserService owns the admin-facing user queries and the delete restriction:
// a user referenced as an assigned driver or an issue reporter cannot be
// removed.
type UserService struct {
	users    db.UserCollection
	vehicles db.VehicleCollection
	issues   db.IssueCollection
}

// NewUserService constructs a UserService over the given collections.
func NewUserService(c *db.Collections) *UserService {
	return &UserService{users: c.Users, vehicles: c.Vehicles, issues: c.Issues}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindUsers(ctx, bson.M{})
}

// ListDrivers returns users with the Driver role.
func (s *UserService) ListDrivers(ctx context.Context) ([]models.User, error) {
	return s.users.FindUsers(ctx, bson.M{"role": models.RoleDriver})
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// Delete removes a user unless vehicles or issues still reference them.
func (s *UserService) Delete(ctx context.Context, id string) error {
	assigned, err := s.vehicles.FindVehicles(ctx, bson.M{"assigned_driver_id": id})
	if err != nil {
		return err
	}
	if len(assigned) > 0 {
		return ErrUserReferenced
	}

	reported, err := s.issues.CountIssuesByReporter(ctx, id)
	if err != nil {
		return err
	}
	if reported > 0 {
		return ErrUserReferenced
	}

	err = s.users.DeleteUser(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
