package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/validation"
)

// UserService handles business logic related to users.
type UserService struct {
	repo     repositories.UserRepository
	validate *validation.Validator
	hashCost int
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, v *validation.Validator) *UserService {
	return &UserService{
		repo:     repo,
		validate: v,
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*models.Page[models.User], error) {
	return s.repo.List(ctx, page, limit)
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateUser validates fields, hashes the password and stores the user.
func (s *UserService) CreateUser(ctx context.Context, fields models.UserFields) (*models.User, error) {
	if err := s.validate.Check(userEntity, fields); err != nil {
		return nil, err
	}
	hash, err := s.hash(*fields.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     *fields.Name,
		Email:    *fields.Email,
		Password: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, writeErr(userEntity, err)
	}
	return user, nil
}

// UpdateUser merges patch onto the stored user. The password is only validated
// and re-hashed when patch carries one.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch models.UserFields) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	fields := user.Fields().Merge(patch)

	var except []string
	if patch.Password == nil {
		except = append(except, "Password")
	}
	if err := s.validate.Check(userEntity, fields, except...); err != nil {
		return nil, err
	}

	user.Name = *fields.Name
	user.Email = *fields.Email
	if patch.Password != nil {
		if user.Password, err = s.hash(*patch.Password); err != nil {
			return nil, err
		}
	}
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, writeErr(userEntity, err)
	}
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return s.repo.Delete(ctx, id)
}

func (s *UserService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
