package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is the sole authorization discriminator.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User stores system users with role-based access.
// An empty PasswordHash means the account has no usable password:
// login always fails until an admin sets one.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        *string
	PasswordHash string
	Role         string `gorm:"type:varchar(10);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
