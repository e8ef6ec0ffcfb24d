package mapper_test

import (
	"testing"
	"time"

	"usergroups/internal/mapper"
	"usergroups/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestMergeUserPatch_OnlyCopiesProvidedFields(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &models.User{
		ID:        "user-1",
		Username:  "alice",
		Email:     "a@x.com",
		FirstName: "Alice",
		LastName:  "Liddell",
		Status:    models.StatusActive,
		CreatedAt: created,
		UpdatedAt: created,
	}

	mapper.MergeUserPatch(user, models.UserInput{FirstName: strPtr("Alicia")})

	assert.Equal(t, "Alicia", user.FirstName)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Liddell", user.LastName)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.Equal(t, created, user.CreatedAt)
}

func TestMergeUserPatch_EmptyStringIsAValue(t *testing.T) {
	user := &models.User{LastName: "Liddell"}
	mapper.MergeUserPatch(user, models.UserInput{LastName: strPtr("")})
	assert.Equal(t, "", user.LastName)
}

func TestToUserEntity_LeavesIdentityAndStatusUnset(t *testing.T) {
	user := mapper.ToUserEntity(models.UserInput{
		Username: strPtr("bob"),
		Email:    strPtr("b@x.com"),
	})

	assert.Empty(t, user.ID)
	assert.Empty(t, user.Status)
	assert.True(t, user.CreatedAt.IsZero())
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, "b@x.com", user.Email)
}

func TestToUserResponse(t *testing.T) {
	now := time.Now().UTC()
	resp := mapper.ToUserResponse(&models.User{
		ID: "u1", Username: "alice", Email: "a@x.com", FirstName: "A", LastName: "L",
		Status: models.StatusDeleted, CreatedAt: now, UpdatedAt: now,
	})

	assert.Equal(t, models.UserResponse{
		ID: "u1", Username: "alice", Email: "a@x.com", FirstName: "A", LastName: "L",
		Status: models.StatusDeleted, CreatedAt: now, UpdatedAt: now,
	}, resp)
}

func TestMergeGroupPatch_DoesNotTouchAdminOrStatus(t *testing.T) {
	group := &models.Group{
		ID:          "g1",
		Name:        "Engineering",
		Description: "builders",
		AdminID:     "admin-1",
		Status:      models.StatusActive,
	}

	mapper.MergeGroupPatch(group, models.GroupInput{
		Description: strPtr("people who build"),
		SelfJoin:    boolPtr(true),
		AdminID:     strPtr("admin-2"),
	})

	assert.Equal(t, "Engineering", group.Name)
	assert.Equal(t, "people who build", group.Description)
	assert.True(t, group.SelfJoin)
	assert.False(t, group.SelfLeave)
	assert.Equal(t, "admin-1", group.AdminID)
	assert.Equal(t, models.StatusActive, group.Status)
}

func TestToGroupResponses_ExposesAdminID(t *testing.T) {
	groups := []models.Group{
		{ID: "g1", Name: "A", AdminID: "u1", Admin: &models.User{ID: "u1"}},
		{ID: "g2", Name: "B", AdminID: "u2"},
	}

	out := mapper.ToGroupResponses(groups)

	assert.Len(t, out, 2)
	assert.Equal(t, "u1", out[0].AdminID)
	assert.Equal(t, "u2", out[1].AdminID)
}

func TestToGroupResponses_EmptyIsNotNil(t *testing.T) {
	out := mapper.ToGroupResponses(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
