// file: internals/route/details/school_routes.go
package details

import (
	ahrRoute "madrasahku_backend/internals/features/school/academic_health/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	ahrRoute.AcademicHealthReportRoutes(r, db)
}
