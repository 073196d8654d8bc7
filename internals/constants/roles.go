package constants

import "strings"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Locals keys yang diisi auth middleware (HARUS seragam).
const (
	LocalUserID    = "user_id"
	LocalUserRole  = "userRole"
	LocalUserName  = "userName"
	LocalUserEmail = "userEmail"
	LocalToken     = "accessToken"
)

const ErrUnauthorized = "Unauthorized"

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleSuperadmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRole lower-cases and trims; empty stays empty.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
