package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vuminhtri/qr-dine/controllers"
	"github.com/vuminhtri/qr-dine/middlewares"
	"github.com/vuminhtri/qr-dine/utils"
)

func setupWSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.GET("/ws", controllers.HandleWebSocket)
	router.GET("/admin/ws", middlewares.WebSocketAuthMiddleware(), controllers.HandleWebSocket)
	return router
}

func TestPublicWebSocketRejectsAdminTopics(t *testing.T) {
	utils.InitLogger()
	router := setupWSRouter()

	for _, topics := range []string{"staff", "logs", "orders,logs"} {
		req, _ := http.NewRequest("GET", "/ws?topics="+topics, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, "topics=%s", topics)
	}

	// Topik publik lolos pemeriksaan; yang gagal tinggal handshake
	// (recorder httptest tidak mendukung hijack)
	req, _ := http.NewRequest("GET", "/ws?topics=orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}

func TestAdminWebSocketRequiresToken(t *testing.T) {
	utils.InitLogger()
	router := setupWSRouter()

	req, _ := http.NewRequest("GET", "/admin/ws?topics=logs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Dengan token sah, topik logs lolos pemeriksaan otorisasi
	token, err := utils.GenerateToken(1, "ADMIN")
	assert.NoError(t, err)
	req, _ = http.NewRequest("GET", "/admin/ws?topics=logs&token="+token, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}
