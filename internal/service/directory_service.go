package service

import (
	"errors"
	"strings"

	"buggyapi/internal/entities"
	"buggyapi/internal/repository"
)

// Declared directory faults, mapped to structured 4xx responses by the
// controllers. The messages are part of the wire contract.
var (
	ErrUserNotFound   = errors.New("User not found")
	ErrInvalidName    = errors.New("Invalid name")
	ErrAPIKeyRequired = errors.New("API key required")
	ErrUnauthorized   = errors.New("Unauthorized")
)

// DirectoryService defines the interface for user directory business logic
type DirectoryService interface {
	ListUsers() []*entities.User
	GetUser(id int) (*entities.User, error)
	CreateUser(name, email string) (*entities.User, error)
	UpdateUser(id int, name, email string) (*entities.User, error)
	DeleteUser(id int, apiKey string) error
	AdminStats(adminToken string) (int, error)
}

type directoryService struct {
	repo repository.UserRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(repo repository.UserRepository) DirectoryService {
	return &directoryService{repo: repo}
}

// ListUsers returns all users in insertion order
func (s *directoryService) ListUsers() []*entities.User {
	return s.repo.List()
}

// GetUser returns the user with the given id
func (s *directoryService) GetUser(id int) (*entities.User, error) {
	user, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser inserts a new user. Name and email arrive already validated;
// the id is always max(existing ids) + 1. Two concurrent creates may compute
// the same id and one overwrite the other — the store is unsynchronized and
// that interleaving is observable contract behavior.
func (s *directoryService) CreateUser(name, email string) (*entities.User, error) {
	user := &entities.User{
		ID:    s.repo.NextID(),
		Name:  name,
		Email: email,
	}
	s.repo.Insert(user)
	return user, nil
}

// UpdateUser mutates a user in place. Empty name/email mean "not supplied"
// and leave the field untouched. The existence check precedes the
// crash-name guard.
func (s *directoryService) UpdateUser(id int, name, email string) (*entities.User, error) {
	user, ok := s.repo.FindByID(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	if name != "" && strings.Contains(strings.ToLower(name), "crash") {
		return nil, ErrInvalidName
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	return user, nil
}

// DeleteUser removes a user. The API-key presence check runs before the
// existence check, so a missing key is a 401 even for unknown ids.
func (s *directoryService) DeleteUser(id int, apiKey string) error {
	if apiKey == "" {
		return ErrAPIKeyRequired
	}
	if !s.repo.Delete(id) {
		return ErrUserNotFound
	}
	return nil
}

// AdminStats returns the directory size, gated on the static admin token
func (s *directoryService) AdminStats(adminToken string) (int, error) {
	if adminToken != "secret" {
		return 0, ErrUnauthorized
	}
	return s.repo.Count(), nil
}
