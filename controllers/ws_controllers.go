package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/vuminhtri/qr-dine/realtime"
	"github.com/vuminhtri/qr-dine/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// publicTopics adalah topik yang boleh didengar tanpa login; staff dan logs
// hanya lewat stream dashboard yang ber-token.
var publicTopics = []string{
	realtime.TopicOrders,
	realtime.TopicTables,
	realtime.TopicMenu,
	realtime.TopicSettings,
}

// HandleWebSocket meng-upgrade koneksi dan mendaftarkannya ke hub.
// Topik langganan diambil dari query ?topics=orders,tables (pisah koma);
// tanpa parameter, client menerima semua topik yang diizinkan untuknya.
func HandleWebSocket(c *gin.Context) {
	var topics []string
	if raw := c.Query("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	if _, authed := c.Get("staff_id"); !authed {
		for _, t := range topics {
			if t == realtime.TopicStaff || t == realtime.TopicLogs {
				utils.RespondError(c, http.StatusForbidden,
					errors.New("topic requires authentication"))
				return
			}
		}
		// Langganan "*" (atau tanpa topik) pada endpoint publik dibatasi ke
		// topik publik saja
		if len(topics) == 0 {
			topics = publicTopics
		} else {
			sanitized := make([]string, 0, len(topics))
			expanded := false
			for _, t := range topics {
				if t == realtime.TopicAll {
					if !expanded {
						sanitized = append(sanitized, publicTopics...)
						expanded = true
					}
					continue
				}
				sanitized = append(sanitized, t)
			}
			topics = sanitized
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	realtime.RegisterClient(conn, topics)
	utils.InfoLogger.Printf("websocket client connected (topics=%v, total=%d)",
		topics, realtime.ClientCount())

	// Read-loop hanya untuk mendeteksi koneksi putus; pesan masuk diabaikan.
	go func() {
		defer realtime.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
