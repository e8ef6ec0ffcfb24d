package repositories

import (
	"errors"
	"fmt"
	"time"

	"usergroups/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMGroupRepository is a GORM implementation of GroupRepository.
type GORMGroupRepository struct {
	db *gorm.DB
}

// NewGORMGroupRepository creates a new instance of GORMGroupRepository.
func NewGORMGroupRepository(db *gorm.DB) *GORMGroupRepository {
	return &GORMGroupRepository{
		db: db,
	}
}

// FindAllByStatus retrieves every group in the given status, oldest first.
func (r *GORMGroupRepository) FindAllByStatus(status models.Status) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Where("status = ?", status).Order("created_at ASC, id ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get groups with status %s: %w", status, err)
	}
	return groups, nil
}

// FindByIDAndStatus retrieves a group by id, only if it is in the given status.
func (r *GORMGroupRepository) FindByIDAndStatus(id string, status models.Status) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, "id = ? AND status = ?", id, status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get group by ID %s: %w", id, err)
	}
	return &group, nil
}

// Save inserts or updates a group. The admin user row is never written through here.
func (r *GORMGroupRepository) Save(group *models.Group) error {
	isNew := group.ID == ""
	stamp(&group.ID, &group.Status, &group.CreatedAt, &group.UpdatedAt, time.Now().UTC())
	if group.Admin != nil {
		group.AdminID = group.Admin.ID
	}
	tx := r.db.Omit(clause.Associations)
	if isNew {
		tx = tx.Create(group)
	} else {
		tx = tx.Save(group)
	}
	if err := tx.Error; err != nil {
		return fmt.Errorf("failed to save group %s: %w", group.ID, err)
	}
	return nil
}

// ExistsByNameAndStatusActive reports whether an ACTIVE group is named name.
func (r *GORMGroupRepository) ExistsByNameAndStatusActive(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Group{}).
		Where("name = ? AND status = ?", name, models.StatusActive).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check group name %s: %w", name, err)
	}
	return count > 0, nil
}

// ExistsByNameAndStatusActiveExcludingID is ExistsByNameAndStatusActive ignoring group id.
func (r *GORMGroupRepository) ExistsByNameAndStatusActiveExcludingID(name, id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Group{}).
		Where("name = ? AND status = ? AND id <> ?", name, models.StatusActive, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check group name %s: %w", name, err)
	}
	return count > 0, nil
}

// SearchByStatusAndNameContaining returns one page of groups ordered by name.
func (r *GORMGroupRepository) SearchByStatusAndNameContaining(status models.Status, substring string, page models.PageRequest) (models.Page[models.Group], error) {
	query := r.db.Model(&models.Group{}).Where("status = ?", status)
	if substring != "" {
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(substring))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return models.Page[models.Group]{}, fmt.Errorf("failed to count groups: %w", err)
	}

	var groups []models.Group
	err := query.Order("name ASC, id ASC").Offset(page.Offset()).Limit(page.Size).Find(&groups).Error
	if err != nil {
		return models.Page[models.Group]{}, fmt.Errorf("failed to search groups: %w", err)
	}
	return models.NewPage(groups, page, total), nil
}
