// Package session menyimpan state non-bisnis yang dulunya hidup di browser:
// sesi meja customer (keranjang, nama, order terakhir), nama customer yang
// persisten, dan cermin sesi login staff. Semua state di sini boleh hilang
// tanpa merusak data; sumber kebenaran tetap database.
package session

import (
	"sync"
	"time"

	"github.com/vuminhtri/qr-dine/models"
)

const (
	// TableSessionTTL: sesi meja dianggap hangus 24 jam setelah dibuat.
	TableSessionTTL = 24 * time.Hour
	// NameTTL: nama customer disimpan terpisah selama 30 hari.
	NameTTL = 30 * 24 * time.Hour
	// StaffSessionTTL: umur scope panjang cermin sesi staff.
	StaffSessionTTL = 24 * time.Hour
)

// TableSession adalah seluruh state satu sesi meja. Setiap perubahan
// menulis ulang sesi secara utuh, tidak ada delta.
type TableSession struct {
	TableID       uint              `json:"table_id"`
	CustomerName  string            `json:"customer_name"`
	IsJoined      bool              `json:"is_joined"`
	Cart          []models.CartItem `json:"cart"`
	PlacedOrderID uint              `json:"placed_order_id"`
	CreatedAt     time.Time         `json:"created_at"`
}

type nameEntry struct {
	name    string
	savedAt time.Time
}

type staffEntry struct {
	staff     models.Staff
	expiresAt time.Time
}

// Store adalah satu-satunya pemilik state sesi. Dua scope sesi staff
// (volatile dan ber-expiry) disinkronkan lewat satu jalur, bukan
// dual-write tersebar di pemanggil.
type Store struct {
	mu sync.Mutex

	tables     map[uint]TableSession
	names      map[string]nameEntry
	staffShort map[string]models.Staff
	staffLong  map[string]staffEntry

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		tables:     make(map[uint]TableSession),
		names:      make(map[string]nameEntry),
		staffShort: make(map[string]models.Staff),
		staffLong:  make(map[string]staffEntry),
		now:        time.Now,
	}
}

// SaveTableSession menulis ulang sesi meja secara utuh. Timestamp pembuatan
// sesi pertama dipertahankan supaya TTL 24 jam dihitung dari awal sesi.
func (s *Store) SaveTableSession(sess TableSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.tables[sess.TableID]; ok && !existing.CreatedAt.IsZero() {
		sess.CreatedAt = existing.CreatedAt
	} else if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.now()
	}
	s.tables[sess.TableID] = sess
}

// LoadTableSession mengembalikan sesi meja jika masih berlaku. Sesi yang
// lebih tua dari 24 jam diperlakukan seperti tidak ada dan langsung dibuang.
func (s *Store) LoadTableSession(tableID uint) (TableSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.tables[tableID]
	if !ok {
		return TableSession{}, false
	}
	if s.now().Sub(sess.CreatedAt) > TableSessionTTL {
		delete(s.tables, tableID)
		return TableSession{}, false
	}
	return sess, true
}

func (s *Store) ClearTableSession(tableID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, tableID)
}

// SaveCustomerName menyimpan nama customer per client key, lepas dari sesi
// meja, supaya kunjungan berikutnya ke meja mana pun terisi otomatis.
func (s *Store) SaveCustomerName(clientKey, name string) {
	if clientKey == "" || name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.names[clientKey]
	if !ok {
		entry = nameEntry{savedAt: s.now()}
	}
	entry.name = name
	s.names[clientKey] = entry
}

func (s *Store) LoadCustomerName(clientKey string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.names[clientKey]
	if !ok {
		return "", false
	}
	if s.now().Sub(entry.savedAt) > NameTTL {
		delete(s.names, clientKey)
		return "", false
	}
	return entry.name, true
}

// PutStaff mencatat sesi login ke kedua scope sekaligus.
func (s *Store) PutStaff(token string, staff models.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staffShort[token] = staff
	s.staffLong[token] = staffEntry{
		staff:     staff,
		expiresAt: s.now().Add(StaffSessionTTL),
	}
}

// ResolveStaff menjawab "apakah token ini sedang login". Scope pendek
// dicek dulu; kalau kosong tapi scope panjang masih berlaku, scope pendek
// diisi ulang dari sana.
func (s *Store) ResolveStaff(token string) (models.Staff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if staff, ok := s.staffShort[token]; ok {
		return staff, true
	}

	entry, ok := s.staffLong[token]
	if !ok {
		return models.Staff{}, false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.staffLong, token)
		return models.Staff{}, false
	}

	s.staffShort[token] = entry.staff
	return entry.staff, true
}

// DropStaff menghapus sesi dari kedua scope (logout).
func (s *Store) DropStaff(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.staffShort, token)
	delete(s.staffLong, token)
}
