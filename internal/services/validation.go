package services

import (
	"errors"

	"usergroups/internal/models"
	"usergroups/internal/repositories"
)

// UserValidator enforces username and email uniqueness among ACTIVE users.
// It only reads from the store. A check followed by a save is not atomic, so two
// concurrent requests for the same username can both pass.
type UserValidator struct {
	users repositories.UserRepository
}

// NewUserValidator creates a new UserValidator.
func NewUserValidator(users repositories.UserRepository) *UserValidator {
	return &UserValidator{users: users}
}

// ValidateUserCreation checks username, then email. The first violation is returned.
// Absent fields are not checked.
func (v *UserValidator) ValidateUserCreation(candidate models.UserInput) error {
	if candidate.Username != nil {
		if err := v.checkUsername(*candidate.Username); err != nil {
			return err
		}
	}
	if candidate.Email != nil {
		if err := v.checkEmail(*candidate.Email); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUserUpdate runs the same ordered checks, each only when the patch
// carries a value different from the existing one.
func (v *UserValidator) ValidateUserUpdate(patch models.UserInput, existing *models.User) error {
	if patch.Username != nil && *patch.Username != existing.Username {
		if err := v.checkUsername(*patch.Username); err != nil {
			return err
		}
	}
	if patch.Email != nil && *patch.Email != existing.Email {
		if err := v.checkEmail(*patch.Email); err != nil {
			return err
		}
	}
	return nil
}

func (v *UserValidator) checkUsername(username string) error {
	exists, err := v.users.ExistsByUsernameAndStatusActive(username)
	if err != nil {
		return internal("failed to check username uniqueness", err)
	}
	if exists {
		return alreadyExists("username", username)
	}
	return nil
}

func (v *UserValidator) checkEmail(email string) error {
	exists, err := v.users.ExistsByEmailAndStatusActive(email)
	if err != nil {
		return internal("failed to check email uniqueness", err)
	}
	if exists {
		return alreadyExists("email", email)
	}
	return nil
}

// GroupValidator enforces group name uniqueness among ACTIVE groups and that the
// admin reference points at an ACTIVE user. Like UserValidator it has a check-then-act
// window: concurrent creations with the same name may both succeed.
type GroupValidator struct {
	groups repositories.GroupRepository
	users  repositories.UserRepository
}

// NewGroupValidator creates a new GroupValidator.
func NewGroupValidator(groups repositories.GroupRepository, users repositories.UserRepository) *GroupValidator {
	return &GroupValidator{groups: groups, users: users}
}

// ValidateGroupCreation checks the name, then the admin. An absent name is not
// checked. When an admin id is given, the resolved ACTIVE admin is returned.
func (v *GroupValidator) ValidateGroupCreation(candidate models.GroupInput) (*models.User, error) {
	if candidate.Name != nil {
		exists, err := v.groups.ExistsByNameAndStatusActive(*candidate.Name)
		if err != nil {
			return nil, internal("failed to check group name uniqueness", err)
		}
		if exists {
			return nil, alreadyExists("group name", *candidate.Name)
		}
	}
	if candidate.AdminID == nil {
		return nil, nil
	}
	return v.resolveAdmin(*candidate.AdminID)
}

// ValidateGroupUpdate re-checks the name only when it changes, excluding the group
// itself, and resolves the admin only when the patch names a different one.
// A nil user with a nil error means the admin stays as it is.
func (v *GroupValidator) ValidateGroupUpdate(patch models.GroupInput, existing *models.Group) (*models.User, error) {
	if patch.Name != nil && *patch.Name != existing.Name {
		exists, err := v.groups.ExistsByNameAndStatusActiveExcludingID(*patch.Name, existing.ID)
		if err != nil {
			return nil, internal("failed to check group name uniqueness", err)
		}
		if exists {
			return nil, alreadyExists("group name", *patch.Name)
		}
	}
	if patch.AdminID == nil || *patch.AdminID == existing.AdminID {
		return nil, nil
	}
	return v.resolveAdmin(*patch.AdminID)
}

func (v *GroupValidator) resolveAdmin(adminID string) (*models.User, error) {
	admin, err := v.users.FindByIDAndStatus(adminID, models.StatusActive)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, adminNotFound(adminID)
		}
		return nil, internal("failed to look up admin user", err)
	}
	return admin, nil
}
