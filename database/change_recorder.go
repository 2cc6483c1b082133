package database

import (
	"time"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// watchedTables adalah tabel yang perubahannya disiarkan ke change feed.
// db_changes sendiri tidak diawasi agar recorder tidak memicu dirinya.
var watchedTables = map[string]bool{
	"products":    true,
	"categories":  true,
	"tables":      true,
	"staffs":      true,
	"orders":      true,
	"order_items": true,
	"settings":    true,
	"action_logs": true,
}

// RegisterChangeRecorder memasang callback GORM yang menulis baris DBChange
// setiap ada insert/update/delete pada tabel yang diawasi. Ini pengganti
// trigger SQL supaya feed jalan di MySQL maupun SQLite.
func RegisterChangeRecorder(db *gorm.DB) error {
	if err := db.Callback().Create().After("gorm:create").
		Register("qrdine:record_create", recordFunc("INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").
		Register("qrdine:record_update", recordFunc("UPDATE")); err != nil {
		return err
	}
	return db.Callback().Delete().After("gorm:delete").
		Register("qrdine:record_delete", recordFunc("DELETE"))
}

func recordFunc(action string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Schema == nil {
			return
		}
		table := tx.Statement.Table
		if !watchedTables[table] {
			return
		}

		change := models.DBChange{
			TableName:  table,
			RecordID:   recordID(tx),
			ActionType: action,
			ChangedAt:  time.Now(),
		}

		// Session baru supaya insert ini tidak lewat callback lagi.
		// Feed bersifat best-effort; kegagalan tidak membatalkan operasi utama.
		if err := tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
			Create(&change).Error; err != nil && utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("change recorder: %v", err)
		}
	}
}

// recordID membaca primary key dari model yang sedang ditulis. Delete gaya
// controller (db.Delete(&Model{}, id)) membawa struct kosong, jadi id juga
// dicari di kondisi where; tanpa ini feed DELETE berisi id 0 dan client
// tidak tahu baris mana yang hilang.
func recordID(tx *gorm.DB) int64 {
	if id := reflectedID(tx); id != 0 {
		return id
	}
	return conditionID(tx)
}

func reflectedID(tx *gorm.DB) int64 {
	if tx.Statement.Schema == nil || tx.Statement.ReflectValue.IsZero() {
		return 0
	}
	field := tx.Statement.Schema.PrioritizedPrimaryField
	if field == nil {
		return 0
	}
	value, isZero := field.ValueOf(tx.Statement.Context, tx.Statement.ReflectValue)
	if isZero {
		return 0
	}
	return toInt64(value)
}

func conditionID(tx *gorm.DB) int64 {
	c, ok := tx.Statement.Clauses["WHERE"]
	if !ok {
		return 0
	}
	where, ok := c.Expression.(clause.Where)
	if !ok {
		return 0
	}
	for _, expr := range where.Exprs {
		switch e := expr.(type) {
		case clause.IN:
			if isPrimaryColumn(e.Column) && len(e.Values) == 1 {
				return toInt64(e.Values[0])
			}
		case clause.Eq:
			if isPrimaryColumn(e.Column) {
				return toInt64(e.Value)
			}
		}
	}
	return 0
}

func isPrimaryColumn(column interface{}) bool {
	col, ok := column.(clause.Column)
	return ok && (col.Name == clause.PrimaryKey || col.Name == "id")
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case uint:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}
