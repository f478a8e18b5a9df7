package models

import (
	"errors"
	"time"
)

type Role string

const (
	RoleCitizen       Role = "Citizen"
	RoleGreenChampion Role = "Green Champion"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCitizen:
		return RoleCitizen, nil
	case RoleGreenChampion:
		return RoleGreenChampion, nil
	default:
		return "", errors.New("invalid role: must be Citizen or Green Champion")
	}
}

type User struct {
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Role          Role      `json:"role"`
	Points        int       `json:"points"`
	LastGreenSnap *string   `json:"last_green_snap,omitempty"` // ISO date of the last daily snap
	CreatedAt     time.Time `json:"created_at"`
}

type UserSignup struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewUser(username, hashedPassword string, role Role) (*User, error) {
	if username == "" || hashedPassword == "" {
		return nil, errors.New("invalid user details: username and password are required")
	}
	if role != RoleCitizen && role != RoleGreenChampion {
		return nil, errors.New("invalid role")
	}

	return &User{
		Username:  username,
		Password:  hashedPassword,
		Role:      role,
		Points:    0,
		CreatedAt: time.Now().UTC(),
	}, nil
}
