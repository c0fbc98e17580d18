package model

import "github.com/google/uuid"

// Principal is the authenticated actor attached to a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }
func (p Principal) IsAgent() bool   { return p.Role == RoleAgent }
func (p Principal) IsDriver() bool  { return p.Role == RoleDriver }
