package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetops/fleet-management/internal/auth"
	"github.com/fleetops/fleet-management/internal/config"
	"github.com/fleetops/fleet-management/internal/db"
	"github.com/fleetops/fleet-management/internal/middleware"
	"github.com/fleetops/fleet-management/internal/models"
)

// MockUserCollection is a mock implementation of UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAuthService() *auth.Service {
	return auth.NewService(&config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: 24 * time.Hour,
	})
}

func TestAuthHandler_Login(t *testing.T) {
	authService := newTestAuthService()

	t.Run("successful login", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		passwordHash, err := authService.HashPassword("password123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Username:     "testuser",
			Email:        "test@example.com",
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
		}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "testuser").Return(user, nil)

		body, _ := json.Marshal(models.LoginRequest{Username: "testuser", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/Auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.AuthResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID.Hex(), resp.UserID)
		assert.Equal(t, "testuser", resp.Username)
		assert.Equal(t, models.RoleAdmin, resp.Role)

		claims, err := authService.ValidateToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		passwordHash, _ := authService.HashPassword("password123")
		user := &models.User{
			ID:           primitive.NewObjectID(),
			Username:     "testuser",
			PasswordHash: passwordHash,
			Role:         models.RoleDriver,
		}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "testuser").Return(user, nil)

		body, _ := json.Marshal(models.LoginRequest{Username: "testuser", Password: "wrong"})
		req := httptest.NewRequest("POST", "/api/Auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		mockUserCollection.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, db.ErrNotFound)

		body, _ := json.Marshal(models.LoginRequest{Username: "ghost", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/Auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		body, _ := json.Marshal(models.LoginRequest{Username: "testuser"})
		req := httptest.NewRequest("POST", "/api/Auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	authService := newTestAuthService()

	t.Run("successful registration", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		mockUserCollection.On("FindUserByUsername", mock.Anything, "newdriver").Return(nil, db.ErrNotFound)
		mockUserCollection.On("FindUserByEmail", mock.Anything, "driver@example.com").Return(nil, db.ErrNotFound)
		mockUserCollection.On("InsertUser", mock.Anything, mock.AnythingOfType("models.User")).Return(nil)

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "newdriver",
			Email:    "driver@example.com",
			Password: "password123",
			Role:     models.RoleDriver,
			FullName: "New Driver",
		})
		req := httptest.NewRequest("POST", "/api/Auth/register", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp models.AuthResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "newdriver", resp.Username)
		assert.Equal(t, models.RoleDriver, resp.Role)
		mockUserCollection.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		existing := &models.User{ID: primitive.NewObjectID(), Username: "taken"}
		mockUserCollection.On("FindUserByUsername", mock.Anything, "taken").Return(existing, nil)

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "taken",
			Password: "password123",
			Role:     models.RoleDriver,
		})
		req := httptest.NewRequest("POST", "/api/Auth/register", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUserCollection.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything)
	})

	t.Run("invalid role", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "newuser",
			Password: "password123",
			Role:     "Manager",
		})
		req := httptest.NewRequest("POST", "/api/Auth/register", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		mockUserCollection := new(MockUserCollection)
		handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

		body, _ := json.Marshal(models.RegisterRequest{
			Username: "newuser",
			Password: "short",
			Role:     models.RoleDriver,
		})
		req := httptest.NewRequest("POST", "/api/Auth/register", bytes.NewReader(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	authService := newTestAuthService()
	mockUserCollection := new(MockUserCollection)
	handler := NewAuthHandler(authService, db.UserCollection(mockUserCollection))

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Username: "testuser",
		Role:     models.RoleMechanic,
	}
	mockUserCollection.On("FindUserByID", mock.Anything, user.ID.Hex()).Return(user, nil)

	claims := &models.Claims{UserID: user.ID.Hex(), Username: "testuser", Role: models.RoleMechanic}
	req := httptest.NewRequest("GET", "/api/Auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	w := httptest.NewRecorder()

	handler.Me(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "testuser", got.Username)
}
