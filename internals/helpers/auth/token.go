// file: internals/helpers/auth/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yang di-set di middleware AuthJWT.
const (
	LocUserID = "user_id"
	LocRole   = "role"
	LocSiteID = "site_id"
)

// Actor adalah identitas pemanggil yang sudah diresolve dari token.
type Actor struct {
	UserID int64
	Role   string
	SiteID int64
}

func GetUserIDFromToken(c *fiber.Ctx) (int64, error) {
	v := c.Locals(LocUserID)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return v
	}
	return ""
}

func GetSiteIDFromToken(c *fiber.Ctx) int64 {
	if v, ok := c.Locals(LocSiteID).(int64); ok {
		return v
	}
	return 0
}

// GetActor menggabungkan user_id + role + site_id dari locals.
func GetActor(c *fiber.Ctx) (Actor, error) {
	uid, err := GetUserIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	return Actor{
		UserID: uid,
		Role:   GetRoleFromToken(c),
		SiteID: GetSiteIDFromToken(c),
	}, nil
}
