package repositories

import "usergroups/internal/models"

// UserRepository defines the interface for user data access.
//
// Save inserts or updates: it assigns an id when the user has none, stamps CreatedAt on
// the first save, stamps UpdatedAt on every save and defaults an empty status to ACTIVE.
type UserRepository interface {
	FindAllByStatus(status models.Status) ([]models.User, error)
	FindByIDAndStatus(id string, status models.Status) (*models.User, error)
	Save(user *models.User) error
	ExistsByUsernameAndStatusActive(username string) (bool, error)
	ExistsByEmailAndStatusActive(email string) (bool, error)
}
