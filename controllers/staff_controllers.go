package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/services"
	"github.com/vuminhtri/qr-dine/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StaffController struct {
	DB    *gorm.DB
	Audit *services.AuditService
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db, Audit: services.NewAuditService(db)}
}

// GetAllStaffs -> semua akun staff. Hash password tidak pernah ikut
// terkirim (tag json "-" pada model).
func (sc *StaffController) GetAllStaffs(c *gin.Context) {
	var staffs []models.Staff
	if err := sc.DB.Order("id ASC").Find(&staffs).Error; err != nil {
		utils.ErrorLogger.Printf("failed to fetch staffs: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of staff", []models.Staff{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of staff", staffs)
}

// SaveStaff membuat atau memperbarui akun. Password baru selalu di-hash
// bcrypt; update tanpa password mempertahankan hash lama.
func (sc *StaffController) SaveStaff(c *gin.Context) {
	var body struct {
		ID        uint   `json:"id"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Name      string `json:"name" binding:"required"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Role != models.RoleAdmin {
		body.Role = models.RoleStaff
	}

	var staff models.Staff
	if body.ID != 0 {
		if err := sc.DB.First(&staff, body.ID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		// Username tidak bisa diganti setelah akun dibuat.
		staff.Name = body.Name
		staff.Role = body.Role
		staff.AvatarURL = body.AvatarURL
	} else {
		if body.Username == "" || body.Password == "" {
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("username and password are required for new staff"))
			return
		}
		staff = models.Staff{
			Username:  body.Username,
			Role:      body.Role,
			Name:      body.Name,
			AvatarURL: body.AvatarURL,
		}
	}

	if body.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		staff.PasswordHash = string(hash)
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	label := "Sửa nhân viên"
	if body.ID == 0 {
		label = "Thêm nhân viên"
	}
	sc.Audit.AddLog(services.ActionStaffManage,
		fmt.Sprintf("%s: %s", label, staff.Username), actorName(c, sc.DB))
	utils.RespondJSON(c, http.StatusOK, "Staff saved", staff)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("staff_id"))

	if err := sc.DB.Delete(&models.Staff{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	sc.Audit.AddLog(services.ActionStaffManage,
		fmt.Sprintf("Xóa nhân viên ID: %d", id), actorName(c, sc.DB))
	utils.RespondJSON(c, http.StatusOK, "Staff deleted", gin.H{"staff_id": id})
}
