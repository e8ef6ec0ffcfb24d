package services

import (
	"errors"
	"strings"

	"usergroups/internal/mapper"
	"usergroups/internal/models"
	"usergroups/internal/repositories"
)

// UserService handles business logic related to users.
type UserService struct {
	repo      repositories.UserRepository
	validator *UserValidator
	publisher EventPublisher
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, validator *UserValidator, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
	}
}

// GetAllUsers retrieves all ACTIVE users.
func (s *UserService) GetAllUsers() ([]models.UserResponse, error) {
	users, err := s.repo.FindAllByStatus(models.StatusActive)
	if err != nil {
		return nil, internal("failed to list users", err)
	}
	return mapper.ToUserResponses(users), nil
}

// GetUserByID retrieves a single ACTIVE user.
func (s *UserService) GetUserByID(id string) (models.UserResponse, error) {
	user, err := s.findActive(id)
	if err != nil {
		return models.UserResponse{}, err
	}
	return mapper.ToUserResponse(user), nil
}

// CreateUser validates and stores a new ACTIVE user.
func (s *UserService) CreateUser(input models.UserInput) (models.UserResponse, error) {
	if input.Username == nil || strings.TrimSpace(*input.Username) == "" {
		return models.UserResponse{}, invalidInput("username cannot be null or empty")
	}
	if input.Email == nil || strings.TrimSpace(*input.Email) == "" {
		return models.UserResponse{}, invalidInput("email cannot be null or empty")
	}
	if err := s.validator.ValidateUserCreation(input); err != nil {
		return models.UserResponse{}, err
	}

	user := mapper.ToUserEntity(input)
	user.Status = models.StatusActive
	if err := s.repo.Save(user); err != nil {
		return models.UserResponse{}, internal("failed to create user", err)
	}

	resp := mapper.ToUserResponse(user)
	publishEvent(s.publisher, entityUser, actionCreated, user.ID, resp)
	return resp, nil
}

// UpdateUser merges the non-nil fields of patch onto an ACTIVE user.
func (s *UserService) UpdateUser(id string, patch models.UserInput) (models.UserResponse, error) {
	user, err := s.findActive(id)
	if err != nil {
		return models.UserResponse{}, err
	}
	if err := s.validator.ValidateUserUpdate(patch, user); err != nil {
		return models.UserResponse{}, err
	}

	mapper.MergeUserPatch(user, patch)
	if err := s.repo.Save(user); err != nil {
		return models.UserResponse{}, internal("failed to update user", err)
	}

	resp := mapper.ToUserResponse(user)
	publishEvent(s.publisher, entityUser, actionUpdated, user.ID, resp)
	return resp, nil
}

// PatchUser is UpdateUser; both are partial updates.
func (s *UserService) PatchUser(id string, patch models.UserInput) (models.UserResponse, error) {
	return s.UpdateUser(id, patch)
}

// DeleteUser soft-deletes an ACTIVE user. Deleting it again reports not found.
// Groups administered by the user keep referencing it.
func (s *UserService) DeleteUser(id string) error {
	user, err := s.findActive(id)
	if err != nil {
		return err
	}

	user.Status = models.StatusDeleted
	if err := s.repo.Save(user); err != nil {
		return internal("failed to delete user", err)
	}

	publishEvent(s.publisher, entityUser, actionDeleted, user.ID, nil)
	return nil
}

func (s *UserService) findActive(id string) (*models.User, error) {
	user, err := s.repo.FindByIDAndStatus(id, models.StatusActive)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, userNotFound(id)
		}
		return nil, internal("failed to get user", err)
	}
	return user, nil
}
