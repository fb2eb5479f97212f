// file: internals/features/school/academic_health/route/user_route.go
package route

import (
	ahrCtrl "madrasahku_backend/internals/features/school/academic_health/controller"
	middlewares "madrasahku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AcademicHealthReportRoutes(r fiber.Router, db *gorm.DB) {
	reportCtl := ahrCtrl.NewAcademicHealthReportController(db)
	supportCtl := ahrCtrl.NewSupportingDataController(db)

	writeLimiter := middlewares.ReportWriteRateLimiter()

	g := r.Group("/academic-health-reports")

	// =====================
	// Supporting data (statis + kolaborator)
	// =====================
	g.Get("/supporting-data", supportCtl.Get)

	// =====================
	// Lifecycle laporan
	// =====================
	g.Get("/", reportCtl.List)
	g.Post("/", writeLimiter, reportCtl.Create)
	g.Get("/:id", reportCtl.GetByID)
	g.Patch("/:id", writeLimiter, reportCtl.Patch)
	g.Post("/:id/submit", writeLimiter, reportCtl.Submit)
	g.Post("/:id/approve", writeLimiter, reportCtl.Approve)
	g.Post("/:id/reopen", writeLimiter, reportCtl.Reopen)
}
