// file: internals/features/school/academic_health/controller/supporting_data_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attSvc "madrasahku_backend/internals/features/school/attendance/service"
	dirSvc "madrasahku_backend/internals/features/school/directory/service"
	escSvc "madrasahku_backend/internals/features/school/escalations/service"
	helper "madrasahku_backend/internals/helpers"
	helperAuth "madrasahku_backend/internals/helpers/auth"
)

// SupportingDataController merakit data pendukung form AHR dari tiga
// kolaborator + katalog aksi statis. Kegagalan satu kolaborator tidak
// menggagalkan seluruh response (list kosong + log).
type SupportingDataController struct {
	Directory   *dirSvc.DirectoryService
	Escalations *escSvc.EscalationService
	Checkins    *attSvc.CheckinService
}

func NewSupportingDataController(db *gorm.DB) *SupportingDataController {
	return &SupportingDataController{
		Directory:   dirSvc.NewDirectoryService(db),
		Escalations: escSvc.NewEscalationService(db),
		Checkins:    attSvc.NewCheckinService(db),
	}
}

// GET /academic-health-reports/supporting-data?date=YYYY-MM-DD
func (ctl *SupportingDataController) Get(c *fiber.Ctx) error {
	actor, err := helperAuth.GetActor(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()

	date := time.Now().UTC()
	if q := strings.TrimSpace(c.Query("date")); q != "" {
		if d, perr := time.Parse("2006-01-02", q); perr == nil {
			date = d
		}
	}

	teachers, err := ctl.Directory.ListTeachers(ctx)
	if err != nil {
		log.Printf("[WARN] supporting-data: lookup teachers gagal: %v", err)
	}
	students, err := ctl.Directory.ListStudents(ctx)
	if err != nil {
		log.Printf("[WARN] supporting-data: lookup students gagal: %v", err)
	}
	classes, err := ctl.Directory.ListClasses(ctx)
	if err != nil {
		log.Printf("[WARN] supporting-data: lookup classes gagal: %v", err)
	}
	escalations, err := ctl.Escalations.ListOpenMattersFor(ctx, actor.UserID)
	if err != nil {
		log.Printf("[WARN] supporting-data: lookup escalations gagal: %v", err)
	}

	var checkin fiber.Map
	row, err := ctl.Checkins.FindCheckin(ctx, actor.UserID, date)
	if err != nil {
		log.Printf("[WARN] supporting-data: lookup check-in gagal: %v", err)
	} else if row != nil {
		checkin = fiber.Map{
			"checkinId":   row.Mhcp2CheckinID,
			"checkinTime": row.Mhcp2CheckinTime.Format(time.RFC3339),
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"teachers":                 teachers,
		"students":                 students,
		"classes":                  classes,
		"defaulterTypes":           dirSvc.DefaulterTypeOptions(),
		"transitionQualityOptions": dirSvc.TransitionQualityOptions(),
		"checkModes":               dirSvc.CheckModeOptions(),
		"diaryTypes":               dirSvc.DiaryTypeOptions(),
		"escalationStatuses":       dirSvc.EscalationStatusOptions(),
		"escalations":              escalations,
		"mop2Checkin":              checkin,
		"actionsCatalog":           dirSvc.ActionsCatalog(),
	})
}
