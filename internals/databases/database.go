package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	ahrModel "madrasahku_backend/internals/features/school/academic_health/model"
	attModel "madrasahku_backend/internals/features/school/attendance/model"
	dirModel "madrasahku_backend/internals/features/school/directory/model"
	escModel "madrasahku_backend/internals/features/school/escalations/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=madrasahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menyiapkan tabel fitur AHR + data pendukung.
func Migrate() {
	if err := DB.AutoMigrate(
		&ahrModel.AcademicHealthReportModel{},
		&ahrModel.AhrCopyCheckModel{},
		&ahrModel.AhrClassDiaryCheckModel{},
		&ahrModel.AhrMorningCoachingModel{},
		&ahrModel.AhrEscalationDetailModel{},
		&ahrModel.AhrDefaulterModel{},
		&ahrModel.AhrActionsByCategoryModel{},
		&dirModel.TeacherModel{},
		&dirModel.StudentModel{},
		&dirModel.ClassModel{},
		&attModel.Mhcp2CheckinModel{},
		&escModel.EscalationMatterModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi tabel selesai.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
