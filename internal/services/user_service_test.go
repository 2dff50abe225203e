package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/internal/validation"
)

func TestUserService_CreateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := service.CreateUser(context.Background(), models.UserFields{
		Name:     ptr("Ana Maria"),
		Email:    ptr("ana@example.com"),
		Password: ptr("Secret1!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", user.Name)
	assert.NotEqual(t, "Secret1!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Secret1!")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(&apperrors.DuplicateKeyError{Field: "email"}).Once()

	_, err := service.CreateUser(context.Background(), models.UserFields{
		Name:     ptr("Ana"),
		Email:    ptr("ana@example.com"),
		Password: ptr("Secret1!"),
	})
	assert.EqualError(t, err, "User validation failed: email: Email already exists.")
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	_, err := service.CreateUser(context.Background(), models.UserFields{
		Name:     ptr("Ana99"),
		Email:    ptr("ana@example.com"),
		Password: ptr("Secret1!"),
	})
	assert.EqualError(t, err, "User validation failed: name: Name should only contain letters and spaces.")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_KeepsPasswordWhenAbsent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	id := primitive.NewObjectID()
	stored := &models.User{ID: id, Name: "Ana", Email: "ana@example.com", Password: "$2a$10$existinghash"}
	mockRepo.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Ana Lucia" && u.Password == "$2a$10$existinghash"
	})).Return(stored, nil).Once()

	_, err := service.UpdateUser(context.Background(), id.Hex(), models.UserFields{Name: ptr("Ana Lucia")})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	id := primitive.NewObjectID()
	stored := &models.User{ID: id, Name: "Ana", Email: "ana@example.com", Password: "old"}
	mockRepo.On("GetByID", mock.Anything, id.Hex()).Return(stored, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("N3w!Pass")) == nil
	})).Return(stored, nil).Once()

	_, err := service.UpdateUser(context.Background(), id.Hex(), models.UserFields{Password: ptr("N3w!Pass")})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_WeakPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, validation.New())

	id := primitive.NewObjectID()
	mockRepo.On("GetByID", mock.Anything, id.Hex()).
		Return(&models.User{ID: id, Name: "Ana", Email: "ana@example.com"}, nil).Once()

	_, err := service.UpdateUser(context.Background(), id.Hex(), models.UserFields{Password: ptr("weak")})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
