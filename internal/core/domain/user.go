package domain

import "time"

// Role is an enumerated role name. Only RoleAdmin is granted access to
// protected routes today; RoleStandard exists so adding a second tier is a
// route-table change, not a model change.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// SystemUser is a login account stored in the system-user table. The
// password hash never leaves the service layer.
type SystemUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential is the login projection of a system user: the stored hash
// joined with its resolved role name.
type Credential struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
