package auth

import "yadtamar_backend/internal/models"

// Roles are the user type names carried in tokens.
const (
	RoleAdmin     = string(models.UserTypeAdmin)
	RoleVolunteer = string(models.UserTypeVolunteer)
	RoleFamily    = string(models.UserTypeFamily)
)

const (
	PermDashboardRead  = "dashboard:read"
	PermUsersApprove   = "users:approve"
	PermUsersRead      = "users:read"
	PermMatchRead      = "match:read"
	PermRequestsRead   = "requests:read"
	PermRequestsWrite  = "requests:write"
	PermRequestsAssign = "requests:assign"
)

var Permissions = map[string][]string{
	RoleAdmin: {
		PermDashboardRead,
		PermUsersApprove,
		PermUsersRead,
		PermMatchRead,
		PermRequestsRead,
		PermRequestsWrite,
		PermRequestsAssign,
	},
	RoleVolunteer: {
		PermMatchRead,
		PermRequestsRead,
	},
	RoleFamily: {
		PermRequestsRead,
		PermRequestsWrite,
	},
}

func HasPermission(role, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
