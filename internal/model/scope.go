package model

// Roles carried in access tokens.
const (
	RoleAdmin      = "admin"
	RoleBrand      = "brand"
	RoleInfluencer = "influencer"
)

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the caller has the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
