package services

import (
	"errors"
	"strings"

	"usergroups/internal/mapper"
	"usergroups/internal/models"
	"usergroups/internal/repositories"
)

// GroupService handles business logic related to groups and their admin reference.
type GroupService struct {
	repo      repositories.GroupRepository
	validator *GroupValidator
	publisher EventPublisher
}

// NewGroupService creates a new GroupService. publisher may be nil.
func NewGroupService(repo repositories.GroupRepository, validator *GroupValidator, publisher EventPublisher) *GroupService {
	return &GroupService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
	}
}

// GetAllGroups retrieves all ACTIVE groups.
func (s *GroupService) GetAllGroups() ([]models.GroupResponse, error) {
	groups, err := s.repo.FindAllByStatus(models.StatusActive)
	if err != nil {
		return nil, internal("failed to list groups", err)
	}
	return mapper.ToGroupResponses(groups), nil
}

// GetGroupByID retrieves a single ACTIVE group.
func (s *GroupService) GetGroupByID(id string) (models.GroupResponse, error) {
	group, err := s.findActive(id)
	if err != nil {
		return models.GroupResponse{}, err
	}
	return mapper.ToGroupResponse(group), nil
}

// SearchGroups pages through ACTIVE groups whose name contains name, ignoring case.
// An empty name returns every ACTIVE group.
func (s *GroupService) SearchGroups(name string, page models.PageRequest) (models.Page[models.GroupResponse], error) {
	if page.Page < 0 {
		return models.Page[models.GroupResponse]{}, invalidInput("page must not be negative")
	}
	if page.Size < 1 {
		return models.Page[models.GroupResponse]{}, invalidInput("size must be at least 1")
	}

	result, err := s.repo.SearchByStatusAndNameContaining(models.StatusActive, name, page)
	if err != nil {
		return models.Page[models.GroupResponse]{}, internal("failed to search groups", err)
	}
	return models.Page[models.GroupResponse]{
		Content:       mapper.ToGroupResponses(result.Content),
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}, nil
}

// CreateGroup validates the name and admin, then stores a new ACTIVE group
// associated with the resolved admin.
func (s *GroupService) CreateGroup(input models.GroupInput) (models.GroupResponse, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return models.GroupResponse{}, invalidInput("group name cannot be null or empty")
	}
	if input.Description == nil || strings.TrimSpace(*input.Description) == "" {
		return models.GroupResponse{}, invalidInput("group description cannot be null or empty")
	}
	if input.AdminID == nil || *input.AdminID == "" {
		return models.GroupResponse{}, invalidInput("admin ID cannot be null")
	}

	admin, err := s.validator.ValidateGroupCreation(input)
	if err != nil {
		return models.GroupResponse{}, err
	}

	group := mapper.ToGroupEntity(input)
	group.Admin = admin
	group.AdminID = admin.ID
	group.Status = models.StatusActive
	if err := s.repo.Save(group); err != nil {
		return models.GroupResponse{}, internal("failed to create group", err)
	}

	resp := mapper.ToGroupResponse(group)
	publishEvent(s.publisher, entityGroup, actionCreated, group.ID, resp)
	return resp, nil
}

// UpdateGroup merges the non-nil fields of patch onto an ACTIVE group and swaps
// the admin when the patch names a different, ACTIVE user.
func (s *GroupService) UpdateGroup(id string, patch models.GroupInput) (models.GroupResponse, error) {
	group, err := s.findActive(id)
	if err != nil {
		return models.GroupResponse{}, err
	}

	newAdmin, err := s.validator.ValidateGroupUpdate(patch, group)
	if err != nil {
		return models.GroupResponse{}, err
	}
	if newAdmin != nil {
		group.Admin = newAdmin
		group.AdminID = newAdmin.ID
	}

	mapper.MergeGroupPatch(group, patch)
	if err := s.repo.Save(group); err != nil {
		return models.GroupResponse{}, internal("failed to update group", err)
	}

	resp := mapper.ToGroupResponse(group)
	publishEvent(s.publisher, entityGroup, actionUpdated, group.ID, resp)
	return resp, nil
}

// PatchGroup is UpdateGroup; both are partial updates.
func (s *GroupService) PatchGroup(id string, patch models.GroupInput) (models.GroupResponse, error) {
	return s.UpdateGroup(id, patch)
}

// DeleteGroup soft-deletes an ACTIVE group.
func (s *GroupService) DeleteGroup(id string) error {
	group, err := s.findActive(id)
	if err != nil {
		return err
	}

	group.Status = models.StatusDeleted
	if err := s.repo.Save(group); err != nil {
		return internal("failed to delete group", err)
	}

	publishEvent(s.publisher, entityGroup, actionDeleted, group.ID, nil)
	return nil
}

func (s *GroupService) findActive(id string) (*models.Group, error) {
	group, err := s.repo.FindByIDAndStatus(id, models.StatusActive)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, groupNotFound(id)
		}
		return nil, internal("failed to get group", err)
	}
	return group, nil
}
