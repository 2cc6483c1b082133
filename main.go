package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vuminhtri/qr-dine/config"
	"github.com/vuminhtri/qr-dine/database"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/router"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/session"
	"github.com/vuminhtri/qr-dine/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	utils.InitLogger()

	// .env opsional; environment dari proses tetap dipakai.
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	if err := database.RegisterChangeRecorder(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to register change recorder: %v", err)
	}
	seed(db)

	monitor := services.NewChangeMonitor(db)
	monitor.Interval = 500 * time.Millisecond
	monitor.Start()
	defer monitor.Stop()

	// Probe ringan saat start; kegagalan hanya jadi banner peringatan,
	// server tetap naik dan /health melaporkan status ke halaman depan.
	var settingCount int64
	if err := db.Model(&models.Setting{}).Count(&settingCount).Error; err != nil || settingCount == 0 {
		utils.InfoLogger.Println("Warning: settings probe failed; system not configured yet")
	}

	sessions := session.NewStore()
	r := router.SetupRouter(db, sessions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("QR Dine listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Staff{},
		&models.Category{},
		&models.Product{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
		&models.ActionLog{},
		&models.DBChange{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Auto migration failed: %v", err)
	}
}

// seed memastikan ada akun admin dan baris settings saat database kosong,
// supaya instalasi baru langsung bisa dipakai.
func seed(db *gorm.DB) {
	var staffCount int64
	db.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
			utils.InfoLogger.Println("ADMIN_PASSWORD not set; seeding default admin account (change it)")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := models.Staff{
			Username:     "admin",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Name:         "Quản trị viên",
		}
		if err := db.Create(&admin).Error; err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed admin account: %v", err)
		}
	}

	var settingCount int64
	db.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.DefaultSetting()
		if err := db.Create(&setting).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to seed settings: %v", err)
		}
	}
}
