package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Topic names. Client subscribe per topik supaya tidak semua perubahan
// memicu refetch di semua layar; TopicAll ("*") tetap tersedia untuk
// dashboard admin yang memang butuh semuanya.
const (
	TopicAll      = "*"
	TopicOrders   = "orders"
	TopicTables   = "tables"
	TopicMenu     = "menu"
	TopicStaff    = "staff"
	TopicSettings = "settings"
	TopicLogs     = "logs"
)

// OrderTopic mengembalikan topik order untuk satu meja, mis. "orders:table:3".
func OrderTopic(tableID uint) string {
	return fmt.Sprintf("orders:table:%d", tableID)
}

// Event types
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

type Message struct {
	Event string      `json:"event"`
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua koneksi websocket beserta topik langganannya.
type Hub struct {
	clients map[*websocket.Conn]map[string]bool
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]map[string]bool),
}

// RegisterClient menambahkan koneksi dengan daftar topik langganan.
func RegisterClient(conn *websocket.Conn, topics []string) {
	set := make(map[string]bool, len(topics))
	for _, t := range topics {
		set[t] = true
	}
	if len(set) == 0 {
		set[TopicAll] = true
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = set
}

// UnregisterClient melepas koneksi dan menutupnya.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// ClientCount -> jumlah koneksi aktif.
func ClientCount() int {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	return len(hub.clients)
}

// Broadcast mengirim pesan ke semua client yang berlangganan salah satu
// topik yang diberikan. Payload berisi baris yang berubah, bukan sekadar
// sinyal "ada yang berubah", supaya client bisa update incremental.
func Broadcast(event string, data interface{}, topics ...string) {
	// Marshal sekali per topik, di luar mutex; payload gagal marshal berarti
	// tidak ada yang bisa dikirim ke siapa pun.
	payloads := make(map[string][]byte, len(topics))
	for _, topic := range topics {
		raw, err := json.Marshal(Message{Event: event, Topic: topic, Data: data})
		if err != nil {
			return
		}
		payloads[topic] = raw
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	// Satu client menerima pesan paling banyak sekali walau berlangganan
	// beberapa topik yang cocok.
	for conn, subs := range hub.clients {
		topic := matchTopic(subs, topics)
		if topic == "" {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payloads[topic]); err != nil {
			// Koneksi mati dibersihkan oleh read-loop di controller.
			continue
		}
	}
}

func matchTopic(subs map[string]bool, topics []string) string {
	for _, topic := range topics {
		if subs[TopicAll] || subs[topic] {
			return topic
		}
	}
	return ""
}
