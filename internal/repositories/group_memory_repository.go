package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"usergroups/internal/models"
)

// MemoryGroupRepository is an in-memory implementation of GroupRepository.
type MemoryGroupRepository struct {
	groups map[string]models.Group
	mu     sync.RWMutex
}

// NewMemoryGroupRepository creates a new instance of MemoryGroupRepository.
func NewMemoryGroupRepository() *MemoryGroupRepository {
	return &MemoryGroupRepository{
		groups: make(map[string]models.Group),
	}
}

// FindAllByStatus returns every group in the given status, oldest first.
func (r *MemoryGroupRepository) FindAllByStatus(status models.Status) ([]models.Group, error) {
	groupList := r.filter(func(g models.Group) bool { return g.Status == status })
	sort.Slice(groupList, func(i, j int) bool {
		if groupList[i].CreatedAt.Equal(groupList[j].CreatedAt) {
			return groupList[i].ID < groupList[j].ID
		}
		return groupList[i].CreatedAt.Before(groupList[j].CreatedAt)
	})
	return groupList, nil
}

// FindByIDAndStatus returns a group by id if it is in the given status.
func (r *MemoryGroupRepository) FindByIDAndStatus(id string, status models.Status) (*models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	group, ok := r.groups[id]
	if !ok || group.Status != status {
		return nil, ErrRecordNotFound
	}
	return &group, nil
}

// Save inserts or replaces a group. Only the admin id is kept, not the loaded user.
func (r *MemoryGroupRepository) Save(group *models.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(&group.ID, &group.Status, &group.CreatedAt, &group.UpdatedAt, time.Now().UTC())
	if group.Admin != nil {
		group.AdminID = group.Admin.ID
	}
	stored := *group
	stored.Admin = nil
	r.groups[group.ID] = stored
	return nil
}

// ExistsByNameAndStatusActive reports whether an ACTIVE group is named name.
func (r *MemoryGroupRepository) ExistsByNameAndStatusActive(name string) (bool, error) {
	found := r.filter(func(g models.Group) bool {
		return g.Status == models.StatusActive && g.Name == name
	})
	return len(found) > 0, nil
}

// ExistsByNameAndStatusActiveExcludingID is ExistsByNameAndStatusActive ignoring group id.
func (r *MemoryGroupRepository) ExistsByNameAndStatusActiveExcludingID(name, id string) (bool, error) {
	found := r.filter(func(g models.Group) bool {
		return g.Status == models.StatusActive && g.Name == name && g.ID != id
	})
	return len(found) > 0, nil
}

// SearchByStatusAndNameContaining returns one page of groups ordered by name.
func (r *MemoryGroupRepository) SearchByStatusAndNameContaining(status models.Status, substring string, page models.PageRequest) (models.Page[models.Group], error) {
	needle := foldASCII(substring)
	matches := r.filter(func(g models.Group) bool {
		return g.Status == status && strings.Contains(foldASCII(g.Name), needle)
	})
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name == matches[j].Name {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].Name < matches[j].Name
	})

	total := int64(len(matches))
	start := page.Offset()
	if start > len(matches) {
		start = len(matches)
	}
	end := start + page.Size
	if end > len(matches) {
		end = len(matches)
	}
	return models.NewPage(matches[start:end], page, total), nil
}

func (r *MemoryGroupRepository) filter(keep func(models.Group) bool) []models.Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Group, 0, len(r.groups))
	for _, g := range r.groups {
		if keep(g) {
			out = append(out, g)
		}
	}
	return out
}
