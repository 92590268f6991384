package domain

import (
	"time"
)

// User is a persisted account. HashedPassword never leaves the service;
// UserResponse is the outward shape.
type User struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Login          string    `gorm:"uniqueIndex;not null" json:"login"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false" json:"is_superuser"`
	Shops          []Shop    `gorm:"many2many:user_shops" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Login       string `json:"login" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToResponse converts a User to its API representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Login:       u.Login,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}
