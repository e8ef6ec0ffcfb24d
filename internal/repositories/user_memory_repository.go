package repositories

import (
	"sort"
	"sync"
	"time"

	"usergroups/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// FindAllByStatus returns every user in the given status, oldest first.
func (r *MemoryUserRepository) FindAllByStatus(status models.Status) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if u.Status == status {
			userList = append(userList, u)
		}
	}
	sort.Slice(userList, func(i, j int) bool {
		if userList[i].CreatedAt.Equal(userList[j].CreatedAt) {
			return userList[i].ID < userList[j].ID
		}
		return userList[i].CreatedAt.Before(userList[j].CreatedAt)
	})
	return userList, nil
}

// FindByIDAndStatus returns a user by id if it is in the given status.
func (r *MemoryUserRepository) FindByIDAndStatus(id string, status models.Status) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok || user.Status != status {
		return nil, ErrRecordNotFound
	}
	return &user, nil
}

// Save inserts or replaces a user.
func (r *MemoryUserRepository) Save(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt, time.Now().UTC())
	r.users[user.ID] = *user
	return nil
}

// ExistsByUsernameAndStatusActive reports whether an ACTIVE user holds username.
func (r *MemoryUserRepository) ExistsByUsernameAndStatusActive(username string) (bool, error) {
	return r.existsActive(func(u models.User) bool { return u.Username == username }), nil
}

// ExistsByEmailAndStatusActive reports whether an ACTIVE user holds email.
func (r *MemoryUserRepository) ExistsByEmailAndStatusActive(email string) (bool, error) {
	return r.existsActive(func(u models.User) bool { return u.Email == email }), nil
}

func (r *MemoryUserRepository) existsActive(match func(models.User) bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Status == models.StatusActive && match(u) {
			return true
		}
	}
	return false
}
