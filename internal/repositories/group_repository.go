package repositories

import "usergroups/internal/models"

// GroupRepository defines the interface for group data access.
// Save follows the same stamping rules as UserRepository.Save.
type GroupRepository interface {
	FindAllByStatus(status models.Status) ([]models.Group, error)
	FindByIDAndStatus(id string, status models.Status) (*models.Group, error)
	Save(group *models.Group) error
	ExistsByNameAndStatusActive(name string) (bool, error)
	ExistsByNameAndStatusActiveExcludingID(name, id string) (bool, error)
	// SearchByStatusAndNameContaining matches name case-insensitively; an empty
	// substring matches every group with the given status.
	SearchByStatusAndNameContaining(status models.Status, substring string, page models.PageRequest) (models.Page[models.Group], error)
}
