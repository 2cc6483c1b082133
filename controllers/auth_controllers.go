package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/session"
	"github.com/vuminhtri/qr-dine/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions *session.Store
	Audit    *services.AuditService
}

func NewAuthController(db *gorm.DB, sessions *session.Store) *AuthController {
	return &AuthController{
		DB:       db,
		Sessions: sessions,
		Audit:    services.NewAuditService(db),
	}
}

// Login -> cocokkan username+password, kembalikan JWT.
// Login gagal tidak menulis apa pun ke action log.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var staff models.Staff
	if err := ac.DB.Where("username = ?", input.Username).First(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Satu jalur sinkronisasi untuk kedua scope sesi.
	ac.Sessions.PutStaff(token, staff)
	ac.Audit.AddLog(services.ActionLogin, "Đăng nhập vào hệ thống", staff.Name)

	utils.InfoLogger.Printf("Staff %s logged in (role=%s)", staff.Username, staff.Role)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"staff": staff,
	})
}

// Logout -> hapus cermin sesi dan catat log.
func (ac *AuthController) Logout(c *gin.Context) {
	token := bearerToken(c)
	if staff, ok := ac.Sessions.ResolveStaff(token); ok {
		ac.Audit.AddLog(services.ActionLogout, "Đăng xuất khỏi hệ thống", staff.Name)
	}
	ac.Sessions.DropStaff(token)

	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// GetProfile -> data staff dari token aktif.
func (ac *AuthController) GetProfile(c *gin.Context) {
	staffID, ok := c.Get("staff_id")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("staff id not found in context"))
		return
	}

	var staff models.Staff
	if err := ac.DB.First(&staff, staffID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", staff)
}

func bearerToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	if token == "" {
		token = c.Query("token")
	}
	return strings.TrimPrefix(token, "Bearer ")
}

// actorName mengambil nama staff yang sedang beraksi untuk keperluan audit;
// jatuh ke "Hệ thống" untuk operasi tanpa login.
func actorName(c *gin.Context, db *gorm.DB) string {
	staffID, ok := c.Get("staff_id")
	if !ok {
		return services.SystemUser
	}
	var staff models.Staff
	if err := db.First(&staff, staffID).Error; err != nil {
		return services.SystemUser
	}
	return staff.Name
}
