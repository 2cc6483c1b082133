package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vuminhtri/qr-dine/models"
	"github.com/vuminhtri/qr-dine/utils"
)

func setupRecorderDB(t *testing.T) *gorm.DB {
	utils.InitLogger()
	db, err := gorm.Open(sqlite.Open("file:recordertest?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Product{}, &models.DBChange{}))

	db.Where("1 = 1").Delete(&models.Product{})
	db.Where("1 = 1").Delete(&models.DBChange{})

	RegisterChangeRecorder(db)
	return db
}

func TestRecorderCapturesInsertUpdateDelete(t *testing.T) {
	db := setupRecorderDB(t)

	product := models.Product{Name: "Phở bò", Price: 50000, Available: true}
	assert.NoError(t, db.Create(&product).Error)

	product.Price = 55000
	assert.NoError(t, db.Save(&product).Error)

	assert.NoError(t, db.Delete(&product).Error)

	var changes []models.DBChange
	assert.NoError(t, db.Order("id ASC").Find(&changes).Error)
	assert.Len(t, changes, 3)

	assert.Equal(t, "products", changes[0].TableName)
	assert.Equal(t, "INSERT", changes[0].ActionType)
	assert.Equal(t, product.ID, changes[0].RecordID)
	assert.False(t, changes[0].Processed)

	assert.Equal(t, "UPDATE", changes[1].ActionType)
	assert.Equal(t, "DELETE", changes[2].ActionType)
}

func TestRecorderCapturesDeleteByInlinePK(t *testing.T) {
	db := setupRecorderDB(t)

	first := models.Product{Name: "Bún chả", Price: 45000}
	assert.NoError(t, db.Create(&first).Error)
	second := models.Product{Name: "Nem rán", Price: 40000}
	assert.NoError(t, db.Create(&second).Error)

	// Controller menghapus lewat primary key inline, struct model kosong
	assert.NoError(t, db.Delete(&models.Product{}, first.ID).Error)
	// Varian int hasil strconv.Atoi di controller
	assert.NoError(t, db.Delete(&models.Product{}, int(second.ID)).Error)

	var changes []models.DBChange
	assert.NoError(t, db.Where("action_type = ?", "DELETE").
		Order("id ASC").Find(&changes).Error)
	assert.Len(t, changes, 2)
	assert.Equal(t, int64(first.ID), changes[0].RecordID)
	assert.Equal(t, int64(second.ID), changes[1].RecordID)
}

func TestRecorderIgnoresUnwatchedTables(t *testing.T) {
	db := setupRecorderDB(t)

	// Tulisan ke db_changes sendiri tidak boleh memicu rekursi
	assert.NoError(t, db.Create(&models.DBChange{
		TableName:  "products",
		ActionType: "INSERT",
		RecordID:   1,
	}).Error)

	var count int64
	db.Model(&models.DBChange{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
