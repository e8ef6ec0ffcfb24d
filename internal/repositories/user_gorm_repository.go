package repositories

import (
	"errors"
	"fmt"
	"time"

	"usergroups/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// FindAllByStatus retrieves every user in the given status, oldest first.
func (r *GORMUserRepository) FindAllByStatus(status models.Status) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("status = ?", status).Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users with status %s: %w", status, err)
	}
	return users, nil
}

// FindByIDAndStatus retrieves a user by id, only if it is in the given status.
func (r *GORMUserRepository) FindByIDAndStatus(id string, status models.Status) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ? AND status = ?", id, status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// Save inserts or updates a user.
func (r *GORMUserRepository) Save(user *models.User) error {
	isNew := user.ID == ""
	stamp(&user.ID, &user.Status, &user.CreatedAt, &user.UpdatedAt, time.Now().UTC())
	tx := r.db
	if isNew {
		tx = tx.Create(user)
	} else {
		tx = tx.Save(user)
	}
	if err := tx.Error; err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.ID, err)
	}
	return nil
}

// ExistsByUsernameAndStatusActive reports whether an ACTIVE user holds username.
func (r *GORMUserRepository) ExistsByUsernameAndStatusActive(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? AND status = ?", username, models.StatusActive).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return count > 0, nil
}

// ExistsByEmailAndStatusActive reports whether an ACTIVE user holds email.
func (r *GORMUserRepository) ExistsByEmailAndStatusActive(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND status = ?", email, models.StatusActive).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	return count > 0, nil
}
