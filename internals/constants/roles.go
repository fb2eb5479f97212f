package constants

// Role tokens sebagaimana tersimpan di klaim JWT.
const (
	RoleUser        = "user"
	RoleTeacher     = "teacher"
	RoleDean        = "dean"
	RoleTeamManager = "team_manager"
	RoleAdmin       = "admin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleTeacher,
		RoleDean,
		RoleTeamManager,
		RoleAdmin,
	}

	// ManagerRoles boleh approve/reopen laporan dan mengedit laporan orang lain.
	ManagerRoles = []string{
		RoleAdmin,
		RoleTeamManager,
	}
)

func IsManagerRole(role string) bool {
	for _, r := range ManagerRoles {
		if r == role {
			return true
		}
	}
	return false
}
