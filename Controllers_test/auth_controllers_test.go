package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vuminhtri/qr-dine/controllers"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/session"
	"github.com/vuminhtri/qr-dine/utils"
)

func setupTestDBForAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Staff{}, &models.ActionLog{}); err != nil {
		panic(err)
	}
	db.Where("1 = 1").Delete(&models.Staff{})
	db.Where("1 = 1").Delete(&models.ActionLog{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.Staff{
		Username:     "linh",
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
		Name:         "Nguyễn Thùy Linh",
	})
	return db
}

func setupAuthRouter(db *gorm.DB, sessions *session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	authCtrl := controllers.NewAuthController(db, sessions)
	router.POST("/login", authCtrl.Login)
	router.POST("/logout", authCtrl.Logout)
	return router
}

func TestLoginWrongPasswordWritesNoLog(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth()
	router := setupAuthRouter(db, session.NewStore())

	payload, _ := json.Marshal(map[string]string{
		"username": "linh",
		"password": "wrong",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var logCount int64
	db.Model(&models.ActionLog{}).Count(&logCount)
	assert.Equal(t, int64(0), logCount)
}

func TestLoginSuccessReturnsTokenAndLogsOnce(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForAuth()
	sessions := session.NewStore()
	router := setupAuthRouter(db, sessions)

	payload, _ := json.Marshal(map[string]string{
		"username": "linh",
		"password": "secret123",
	})
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)

	// Hash password tidak boleh bocor di response
	staffData := data["staff"].(map[string]interface{})
	_, leaked := staffData["password_hash"]
	assert.False(t, leaked)

	var logs []models.ActionLog
	db.Find(&logs)
	assert.Len(t, logs, 1)
	assert.Equal(t, "Đăng nhập", logs[0].Action)
	assert.Equal(t, "Nguyễn Thùy Linh", logs[0].User)

	// Cermin sesi terisi untuk token yang baru diterbitkan
	staff, ok := sessions.ResolveStaff(token)
	assert.True(t, ok)
	assert.Equal(t, "linh", staff.Username)

	// Logout menghapus sesi dan mencatat log kedua
	req, _ = http.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, ok = sessions.ResolveStaff(token)
	assert.False(t, ok)

	db.Order("id ASC").Find(&logs)
	assert.Len(t, logs, 2)
	assert.Equal(t, "Đăng xuất", logs[1].Action)
}
