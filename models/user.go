package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'user'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Elevated reports whether the role may moderate content.
func (r UserRole) Elevated() bool {
	return r == RoleModerator || r == RoleAdmin
}

// Actor is the identity context a request carries into the services.
// Roles can change between page loads, so it is rebuilt per request and
// never cached.
type Actor struct {
	UserID        uint
	Username      string
	Role          UserRole
	Authenticated bool
}

// AuthorID returns the acting user's id, or nil for anonymous actors, so
// it can be stored in nullable author columns.
func (a Actor) AuthorID() *uint {
	if !a.Authenticated {
		return nil
	}
	id := a.UserID
	return &id
}
