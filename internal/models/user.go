package models

import "time"

// User is the stored representation of a user account.
// Username and email are unique among ACTIVE users only; the store does not enforce it.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Username  string    `gorm:"type:varchar(100);not null;index"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	FirstName string    `gorm:"type:varchar(100)"`
	LastName  string    `gorm:"type:varchar(100)"`
	Status    Status    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// UserInput is the wire payload for creating, updating and patching a user.
// A nil field means "not provided" and is left untouched by a patch.
type UserInput struct {
	Username  *string `json:"username" validate:"omitnil,min=3,max=100"`
	Email     *string `json:"email" validate:"omitnil,email,max=255"`
	FirstName *string `json:"firstName" validate:"omitnil,max=100"`
	LastName  *string `json:"lastName" validate:"omitnil,max=100"`
}

// UserResponse is the wire representation of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
