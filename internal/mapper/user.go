// Package mapper translates between wire representations and stored entities.
package mapper

import "usergroups/internal/models"

// ToUserResponse converts a stored user into its wire representation.
func ToUserResponse(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converts a list of stored users.
func ToUserResponses(users []models.User) []models.UserResponse {
	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

// ToUserEntity builds a new, unsaved user from an input payload.
// Id, status and timestamps are left zero for the service and store to assign.
func ToUserEntity(in models.UserInput) *models.User {
	user := &models.User{}
	MergeUserPatch(user, in)
	return user
}

// MergeUserPatch copies the non-nil fields of patch onto user.
func MergeUserPatch(user *models.User, patch models.UserInput) {
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
}
