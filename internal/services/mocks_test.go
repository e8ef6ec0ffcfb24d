package services_test

import (
	"usergroups/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAllByStatus(status models.Status) ([]models.User, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDAndStatus(id string, status models.Status) (*models.User, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Save(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByUsernameAndStatusActive(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailAndStatusActive(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

// MockGroupRepository is a mock implementation of repositories.GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) FindAllByStatus(status models.Status) ([]models.Group, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) FindByIDAndStatus(id string, status models.Status) (*models.Group, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) Save(group *models.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) ExistsByNameAndStatusActive(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) ExistsByNameAndStatusActiveExcludingID(name, id string) (bool, error) {
	args := m.Called(name, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) SearchByStatusAndNameContaining(status models.Status, substring string, page models.PageRequest) (models.Page[models.Group], error) {
	args := m.Called(status, substring, page)
	return args.Get(0).(models.Page[models.Group]), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
