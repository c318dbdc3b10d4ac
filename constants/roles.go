package constants

// Principal roles carried in JWT claims
const (
	RoleAdmin  = "admin"
	RoleBranch = "branch"
	RoleStaff  = "staff"

	// RoleAny lets a route accept any authenticated principal
	RoleAny = "any"
)

// AdminRoles groups the roles allowed on administrative surfaces
var AdminRoles = []string{
	RoleAdmin,
}
