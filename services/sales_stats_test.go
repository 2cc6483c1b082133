package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vuminhtri/qr-dine/models"
)

func statsOrder(status models.OrderStatus, total int64, created time.Time, items ...models.OrderItem) models.Order {
	return models.Order{
		Status:      status,
		TotalAmount: total,
		CreatedAt:   created,
		OrderItems:  items,
	}
}

func TestComputeSalesStatsExcludesCancelled(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 30, 0, 0, time.Local)
	orders := []models.Order{
		statsOrder(models.StatusCompleted, 100000, at),
		statsOrder(models.StatusCancelled, 999999, at),
		statsOrder(models.StatusPending, 50000, at),
	}

	stats := ComputeSalesStats(orders)

	assert.Equal(t, int64(150000), stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, float64(75000), stats.AvgOrderValue)
}

func TestComputeSalesStatsEmptyInput(t *testing.T) {
	stats := ComputeSalesStats(nil)

	assert.Equal(t, int64(0), stats.TotalRevenue)
	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, float64(0), stats.AvgOrderValue)
	assert.Empty(t, stats.TopSelling)
	assert.Empty(t, stats.RevenueByDay)
}

func TestTopSellingTieBreakByFirstSeen(t *testing.T) {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	orders := []models.Order{
		statsOrder(models.StatusCompleted, 0, at,
			models.OrderItem{Name: "Phở bò", Quantity: 3},
			models.OrderItem{Name: "Trà đá", Quantity: 3},
		),
		statsOrder(models.StatusCompleted, 0, at,
			models.OrderItem{Name: "Bún chả", Quantity: 5},
		),
	}

	stats := ComputeSalesStats(orders)

	assert.Equal(t, "Bún chả", stats.TopSelling[0].Name)
	// Seri 3-3: yang muncul duluan menang
	assert.Equal(t, "Phở bò", stats.TopSelling[1].Name)
	assert.Equal(t, "Trà đá", stats.TopSelling[2].Name)
}

func TestTopSellingCapsAtFive(t *testing.T) {
	at := time.Now()
	items := []models.OrderItem{
		{Name: "A", Quantity: 7}, {Name: "B", Quantity: 6}, {Name: "C", Quantity: 5},
		{Name: "D", Quantity: 4}, {Name: "E", Quantity: 3}, {Name: "F", Quantity: 2},
	}
	stats := ComputeSalesStats([]models.Order{statsOrder(models.StatusCompleted, 0, at, items...)})

	assert.Len(t, stats.TopSelling, 5)
	assert.Equal(t, "A", stats.TopSelling[0].Name)
}

func TestRevenueBucketsChronologicalAndLabelled(t *testing.T) {
	orders := []models.Order{
		statsOrder(models.StatusCompleted, 10000, time.Date(2026, 2, 1, 18, 5, 0, 0, time.Local)),
		statsOrder(models.StatusCompleted, 20000, time.Date(2026, 1, 15, 9, 45, 0, 0, time.Local)),
		statsOrder(models.StatusCompleted, 30000, time.Date(2025, 12, 31, 9, 10, 0, 0, time.Local)),
	}

	stats := ComputeSalesStats(orders)

	assert.Equal(t, []RevenueBucket{
		{Label: "31/12/2025", Amount: 30000},
		{Label: "15/01/2026", Amount: 20000},
		{Label: "01/02/2026", Amount: 10000},
	}, stats.RevenueByDay)

	assert.Equal(t, []RevenueBucket{
		{Label: "9:00", Amount: 50000},
		{Label: "18:00", Amount: 10000},
	}, stats.RevenueByHour)

	assert.Equal(t, []RevenueBucket{
		{Label: "2025", Amount: 30000},
		{Label: "2026", Amount: 30000},
	}, stats.RevenueByYear)
}

func TestComputeSalesStatsDeterministic(t *testing.T) {
	at := time.Now()
	orders := []models.Order{
		statsOrder(models.StatusCompleted, 10000, at,
			models.OrderItem{Name: "Phở bò", Quantity: 1},
			models.OrderItem{Name: "Trà đá", Quantity: 1},
		),
		statsOrder(models.StatusConfirmed, 20000, at.Add(time.Hour),
			models.OrderItem{Name: "Bún chả", Quantity: 1},
		),
	}

	first := ComputeSalesStats(orders)
	second := ComputeSalesStats(orders)
	assert.Equal(t, first, second)
}
