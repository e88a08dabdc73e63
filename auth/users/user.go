package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleParent Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleParent:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         Role
	RegisteredAt time.Time
}
