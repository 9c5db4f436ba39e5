package services

import (
	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// UserService handles business logic related to admin profiles.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService.
func NewUserService(store storage.Store) *UserService {
	return &UserService{
		store: store,
	}
}

// GetUser retrieves a user by id. Absence is (nil, nil).
func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.store.GetUser(id)
}

// UpsertUser inserts or merges a profile keyed by id.
func (s *UserService) UpsertUser(user *models.User) (*models.User, error) {
	return s.store.UpsertUser(user)
}
