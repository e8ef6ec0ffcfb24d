package models

import "time"

// Group is the stored representation of a group.
// Admin is a non-owning reference: soft-deleting the admin user leaves AdminID as is.
type Group struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	Name        string    `gorm:"type:varchar(240);not null;index"`
	Description string    `gorm:"type:varchar(500);not null"`
	SelfJoin    bool      `gorm:"not null;default:false"`
	SelfLeave   bool      `gorm:"not null;default:false"`
	AdminID     string    `gorm:"type:varchar(36);not null;index"`
	Admin       *User     `gorm:"foreignKey:AdminID;references:ID"`
	Status      Status    `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// GroupInput is the wire payload for creating, updating and patching a group.
type GroupInput struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=240"`
	Description *string `json:"description" validate:"omitnil,min=1,max=500"`
	SelfJoin    *bool   `json:"selfJoin"`
	SelfLeave   *bool   `json:"selfLeave"`
	AdminID     *string `json:"adminId" validate:"omitnil,anyuuid"`
}

// GroupResponse is the wire representation of a group. The admin is exposed by id only.
type GroupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SelfJoin    bool      `json:"selfJoin"`
	SelfLeave   bool      `json:"selfLeave"`
	AdminID     string    `json:"adminId"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
