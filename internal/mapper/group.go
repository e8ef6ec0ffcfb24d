package mapper

import "usergroups/internal/models"

// ToGroupResponse converts a stored group into its wire representation.
func ToGroupResponse(group *models.Group) models.GroupResponse {
	return models.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		SelfJoin:    group.SelfJoin,
		SelfLeave:   group.SelfLeave,
		AdminID:     group.AdminID,
		Status:      group.Status,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

// ToGroupResponses converts a list of stored groups.
func ToGroupResponses(groups []models.Group) []models.GroupResponse {
	out := make([]models.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, ToGroupResponse(&groups[i]))
	}
	return out
}

// ToGroupEntity builds a new, unsaved group from an input payload.
// The admin association is resolved by the service, not here.
func ToGroupEntity(in models.GroupInput) *models.Group {
	group := &models.Group{}
	MergeGroupPatch(group, in)
	return group
}

// MergeGroupPatch copies the non-nil descriptive fields of patch onto group.
// AdminID is not touched: swapping the admin requires resolving the new user first.
func MergeGroupPatch(group *models.Group, patch models.GroupInput) {
	if patch.Name != nil {
		group.Name = *patch.Name
	}
	if patch.Description != nil {
		group.Description = *patch.Description
	}
	if patch.SelfJoin != nil {
		group.SelfJoin = *patch.SelfJoin
	}
	if patch.SelfLeave != nil {
		group.SelfLeave = *patch.SelfLeave
	}
}
