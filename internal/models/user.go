package models

import "time"

// Role classifies what an identity is allowed to do.
type Role string

const (
	// RoleStudent may enroll in courses and submit work.
	RoleStudent Role = "student"
	// RoleTeacher may create courses and assignments and grade submissions.
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User is the root identity record. The role is fixed at registration.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:student" json:"role"`
	Bio          string    `gorm:"type:text" json:"bio"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
