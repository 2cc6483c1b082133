package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vuminhtri/qr-dine/session"
	"github.com/vuminhtri/qr-dine/utils"
)

// SessionController mengekspos state sesi meja dan nama customer ke
// halaman customer. Semua endpoint di sini publik; identitasnya adalah
// nomor meja di QR, bukan login.
type SessionController struct {
	Sessions *session.Store
}

func NewSessionController(sessions *session.Store) *SessionController {
	return &SessionController{Sessions: sessions}
}

// GetTableSession -> sesi aktif meja. Sesi yang sudah lewat 24 jam
// dijawab 404, sama seperti tidak pernah ada.
func (sc *SessionController) GetTableSession(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("table_id"))

	sess, ok := sc.Sessions.LoadTableSession(uint(tableID))
	if !ok {
		utils.RespondJSON(c, http.StatusNotFound, "No active session", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table session", sess)
}

// SaveTableSession menulis ulang sesi meja secara utuh dari body request.
func (sc *SessionController) SaveTableSession(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("table_id"))

	var sess session.TableSession
	if err := c.ShouldBindJSON(&sess); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	sess.TableID = uint(tableID)

	sc.Sessions.SaveTableSession(sess)

	if clientKey := c.Query("client_key"); clientKey != "" {
		sc.Sessions.SaveCustomerName(clientKey, sess.CustomerName)
	}
	utils.RespondJSON(c, http.StatusOK, "Table session saved", sess)
}

func (sc *SessionController) ClearTableSession(c *gin.Context) {
	tableID, _ := strconv.Atoi(c.Param("table_id"))
	sc.Sessions.ClearTableSession(uint(tableID))
	utils.RespondJSON(c, http.StatusOK, "Table session cleared", nil)
}

// GetCustomerName -> nama tersimpan untuk client key ini, untuk prefill
// form gabung meja.
func (sc *SessionController) GetCustomerName(c *gin.Context) {
	clientKey := c.Param("client_key")

	name, ok := sc.Sessions.LoadCustomerName(clientKey)
	if !ok {
		utils.RespondJSON(c, http.StatusNotFound, "No saved name", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer name", gin.H{"name": name})
}
