package services_test

import (
	"testing"

	"usergroups/internal/models"
	"usergroups/internal/repositories"
	"usergroups/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Lifecycle checks against the in-memory stores, no mocks.
func TestLifecycle_SoftDeleteFreesUniqueValues(t *testing.T) {
	users := repositories.NewMemoryUserRepository()
	groups := repositories.NewMemoryGroupRepository()
	userService := services.NewUserService(users, services.NewUserValidator(users), nil)
	groupService := services.NewGroupService(groups, services.NewGroupValidator(groups, users), nil)

	alice, err := userService.CreateUser(models.UserInput{Username: strPtr("alice"), Email: strPtr("a@x.com")})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.ID)

	_, err = userService.CreateUser(models.UserInput{Username: strPtr("alice"), Email: strPtr("other@x.com")})
	assert.ErrorIs(t, err, services.ErrConflict)

	group, err := groupService.CreateGroup(models.GroupInput{
		Name:        strPtr("Engineering"),
		Description: strPtr("Builds things"),
		AdminID:     &alice.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, group.AdminID)

	require.NoError(t, userService.DeleteUser(alice.ID))
	_, err = userService.GetUserByID(alice.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, userService.DeleteUser(alice.ID), services.ErrNotFound)

	// The group keeps its reference to the deleted admin.
	stale, err := groupService.GetGroupByID(group.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, stale.AdminID)

	// Username and email are free again once the holder is deleted.
	again, err := userService.CreateUser(models.UserInput{Username: strPtr("alice"), Email: strPtr("a@x.com")})
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, again.ID)

	// A deleted user cannot become admin.
	_, err = groupService.PatchGroup(group.ID, models.GroupInput{AdminID: &alice.ID})
	assert.NoError(t, err, "unchanged admin id is not re-validated")
	_, err = groupService.CreateGroup(models.GroupInput{
		Name:        strPtr("Platform"),
		Description: strPtr("Runs things"),
		AdminID:     &alice.ID,
	})
	assert.ErrorIs(t, err, services.ErrAdminNotFound)

	all, err := userService.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLifecycle_GroupNameReuseAndSearch(t *testing.T) {
	users := repositories.NewMemoryUserRepository()
	groups := repositories.NewMemoryGroupRepository()
	userService := services.NewUserService(users, services.NewUserValidator(users), nil)
	groupService := services.NewGroupService(groups, services.NewGroupValidator(groups, users), nil)

	admin, err := userService.CreateUser(models.UserInput{Username: strPtr("root"), Email: strPtr("root@x.com")})
	require.NoError(t, err)

	newGroup := func(name string) (models.GroupResponse, error) {
		return groupService.CreateGroup(models.GroupInput{Name: strPtr(name), Description: strPtr("d"), AdminID: &admin.ID})
	}

	eng, err := newGroup("Engineering")
	require.NoError(t, err)
	_, err = newGroup("Engineering")
	assert.ErrorIs(t, err, services.ErrConflict)

	_, err = newGroup("Data Engineering")
	require.NoError(t, err)
	_, err = newGroup("Sales")
	require.NoError(t, err)

	// Renaming to its own name is allowed.
	_, err = groupService.UpdateGroup(eng.ID, models.GroupInput{Name: strPtr("Engineering")})
	assert.NoError(t, err)

	page, err := groupService.SearchGroups("ENGINEER", models.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)

	require.NoError(t, groupService.DeleteGroup(eng.ID))
	_, err = newGroup("Engineering")
	assert.NoError(t, err)

	page, err = groupService.SearchGroups("", models.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Content, 1)
}
