package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usergroups/internal/models"
	"usergroups/internal/repositories"
)

type groupStores struct {
	users  repositories.UserRepository
	groups repositories.GroupRepository
}

func groupRepositories(t *testing.T) map[string]func() groupStores {
	return map[string]func() groupStores{
		"gorm": func() groupStores {
			db := newTestDB(t)
			return groupStores{
				users:  repositories.NewGORMUserRepository(db),
				groups: repositories.NewGORMGroupRepository(db),
			}
		},
		"memory": func() groupStores {
			return groupStores{
				users:  repositories.NewMemoryUserRepository(),
				groups: repositories.NewMemoryGroupRepository(),
			}
		},
	}
}

func saveAdmin(t *testing.T, repo repositories.UserRepository) *models.User {
	t.Helper()
	admin := &models.User{Username: "admin", Email: "admin@x.com"}
	require.NoError(t, repo.Save(admin))
	return admin
}

func saveGroup(t *testing.T, repo repositories.GroupRepository, name string, admin *models.User) *models.Group {
	t.Helper()
	group := &models.Group{Name: name, Description: name + " group", Admin: admin}
	require.NoError(t, repo.Save(group))
	return group
}

func TestGroupRepository_SaveResolvesAdminID(t *testing.T) {
	for name, newStores := range groupRepositories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStores()
			admin := saveAdmin(t, s.users)
			group := saveGroup(t, s.groups, "Engineering", admin)

			assert.NotEmpty(t, group.ID)
			assert.Equal(t, models.StatusActive, group.Status)

			loaded, err := s.groups.FindByIDAndStatus(group.ID, models.StatusActive)
			require.NoError(t, err)
			assert.Equal(t, admin.ID, loaded.AdminID)
			assert.Equal(t, "Engineering", loaded.Name)
			assert.False(t, loaded.CreatedAt.IsZero())
		})
	}
}

func TestGroupRepository_FindByStatus(t *testing.T) {
	for name, newStores := range groupRepositories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStores()
			admin := saveAdmin(t, s.users)
			active := saveGroup(t, s.groups, "Active", admin)
			deleted := saveGroup(t, s.groups, "Deleted", admin)
			deleted.Status = models.StatusDeleted
			require.NoError(t, s.groups.Save(deleted))

			groups, err := s.groups.FindAllByStatus(models.StatusActive)
			require.NoError(t, err)
			require.Len(t, groups, 1)
			assert.Equal(t, active.ID, groups[0].ID)

			groups, err = s.groups.FindAllByStatus(models.StatusDeleted)
			require.NoError(t, err)
			require.Len(t, groups, 1)
			assert.Equal(t, deleted.ID, groups[0].ID)

			_, err = s.groups.FindByIDAndStatus(deleted.ID, models.StatusActive)
			assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
		})
	}
}

func TestGroupRepository_ExistsByName(t *testing.T) {
	for name, newStores := range groupRepositories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStores()
			admin := saveAdmin(t, s.users)
			eng := saveGroup(t, s.groups, "Engineering", admin)
			other := saveGroup(t, s.groups, "Other", admin)

			exists, err := s.groups.ExistsByNameAndStatusActive("Engineering")
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = s.groups.ExistsByNameAndStatusActive("Marketing")
			require.NoError(t, err)
			assert.False(t, exists)

			// the group itself does not count against its own name
			exists, err = s.groups.ExistsByNameAndStatusActiveExcludingID("Engineering", eng.ID)
			require.NoError(t, err)
			assert.False(t, exists)

			exists, err = s.groups.ExistsByNameAndStatusActiveExcludingID("Engineering", other.ID)
			require.NoError(t, err)
			assert.True(t, exists)

			eng.Status = models.StatusDeleted
			require.NoError(t, s.groups.Save(eng))
			exists, err = s.groups.ExistsByNameAndStatusActive("Engineering")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestGroupRepository_SearchByStatusAndNameContaining(t *testing.T) {
	for name, newStores := range groupRepositories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStores()
			admin := saveAdmin(t, s.users)
			saveGroup(t, s.groups, "Backend Engineering", admin)
			saveGroup(t, s.groups, "Frontend Engineering", admin)
			saveGroup(t, s.groups, "Marketing", admin)
			gone := saveGroup(t, s.groups, "Legacy Engineering", admin)
			gone.Status = models.StatusDeleted
			require.NoError(t, s.groups.Save(gone))

			page, err := s.groups.SearchByStatusAndNameContaining(models.StatusActive, "engineering", models.PageRequest{Page: 0, Size: 10})
			require.NoError(t, err)
			assert.Equal(t, int64(2), page.TotalElements)
			assert.Equal(t, 1, page.TotalPages)
			require.Len(t, page.Content, 2)
			assert.Equal(t, "Backend Engineering", page.Content[0].Name)
			assert.Equal(t, "Frontend Engineering", page.Content[1].Name)

			page, err = s.groups.SearchByStatusAndNameContaining(models.StatusActive, "", models.PageRequest{Page: 1, Size: 2})
			require.NoError(t, err)
			assert.Equal(t, int64(3), page.TotalElements)
			assert.Equal(t, 2, page.TotalPages)
			require.Len(t, page.Content, 1)
			assert.Equal(t, "Marketing", page.Content[0].Name)

			page, err = s.groups.SearchByStatusAndNameContaining(models.StatusActive, "%", models.PageRequest{Page: 0, Size: 10})
			require.NoError(t, err)
			assert.Empty(t, page.Content)
			assert.Equal(t, int64(0), page.TotalElements)

			page, err = s.groups.SearchByStatusAndNameContaining(models.StatusActive, "", models.PageRequest{Page: 5, Size: 10})
			require.NoError(t, err)
			assert.Empty(t, page.Content)
			assert.NotNil(t, page.Content)
		})
	}
}

func TestGroupRepository_SearchFoldsASCIIOnly(t *testing.T) {
	for name, newStores := range groupRepositories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStores()
			admin := saveAdmin(t, s.users)
			saveGroup(t, s.groups, "École Polytechnique", admin)

			tests := []struct {
				query string
				want  int64
			}{
				{"ÉCOLE", 1},
				{"polytechnique", 1},
				{"cole", 1},
				{"école", 0},
				{"é", 0},
			}
			for _, tt := range tests {
				page, err := s.groups.SearchByStatusAndNameContaining(models.StatusActive, tt.query, models.PageRequest{Page: 0, Size: 10})
				require.NoError(t, err)
				assert.Equal(t, tt.want, page.TotalElements, tt.query)
			}
		})
	}
}
