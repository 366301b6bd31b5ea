package domain

import "time"

// Role classifies an account. The set is closed; signup rejects anything else.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleRider    Role = "rider"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRider, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record for an account. Email is unique store-wide.
// Created once at signup; this workflow never updates or deletes it.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}
