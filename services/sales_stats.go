package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/vuminhtri/qr-dine/models"
)

// SalesStats adalah agregat murni dari daftar order; tidak pernah disimpan.
type SalesStats struct {
	TotalRevenue   int64           `json:"total_revenue"`
	TotalOrders    int             `json:"total_orders"`
	AvgOrderValue  float64         `json:"avg_order_value"`
	TopSelling     []ProductSales  `json:"top_selling"`
	RevenueByHour  []RevenueBucket `json:"revenue_by_hour"`
	RevenueByDay   []RevenueBucket `json:"revenue_by_day"`
	RevenueByMonth []RevenueBucket `json:"revenue_by_month"`
	RevenueByYear  []RevenueBucket `json:"revenue_by_year"`
}

type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type RevenueBucket struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Format label bucket: jam "15:00", hari "02/01/2006" (dd/mm/yyyy),
// bulan "01/2006", tahun "2006".
const (
	dayLabelFormat   = "02/01/2006"
	monthLabelFormat = "01/2006"
)

// ComputeSalesStats menghitung statistik penjualan dari daftar order.
// Order CANCELLED tidak pernah dihitung. Fungsi ini murni dan deterministik:
// dua kali pemanggilan dengan input sama menghasilkan output identik.
func ComputeSalesStats(orders []models.Order) SalesStats {
	stats := SalesStats{
		TopSelling:     []ProductSales{},
		RevenueByHour:  []RevenueBucket{},
		RevenueByDay:   []RevenueBucket{},
		RevenueByMonth: []RevenueBucket{},
		RevenueByYear:  []RevenueBucket{},
	}

	productQty := map[string]int{}
	var productOrder []string // urutan kemunculan pertama, untuk tie-break

	hourMap := map[string]int64{}
	dayMap := map[string]int64{}
	monthMap := map[string]int64{}
	yearMap := map[string]int64{}

	for _, order := range orders {
		if order.Status == models.StatusCancelled {
			continue
		}

		stats.TotalOrders++
		stats.TotalRevenue += order.TotalAmount

		for _, item := range order.OrderItems {
			if _, seen := productQty[item.Name]; !seen {
				productOrder = append(productOrder, item.Name)
			}
			productQty[item.Name] += item.Quantity
		}

		created := order.CreatedAt
		hourMap[strconv.Itoa(created.Hour())+":00"] += order.TotalAmount
		dayMap[created.Format(dayLabelFormat)] += order.TotalAmount
		monthMap[created.Format(monthLabelFormat)] += order.TotalAmount
		yearMap[strconv.Itoa(created.Year())] += order.TotalAmount
	}

	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = float64(stats.TotalRevenue) / float64(stats.TotalOrders)
	}

	// Top 5 produk berdasarkan total kuantitas; seri di-break berdasarkan
	// urutan kemunculan pertama dalam daftar order.
	top := make([]ProductSales, 0, len(productOrder))
	for _, name := range productOrder {
		top = append(top, ProductSales{Name: name, Quantity: productQty[name]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})
	if len(top) > 5 {
		top = top[:5]
	}
	stats.TopSelling = top

	stats.RevenueByHour = sortedBuckets(hourMap, parseHourLabel)
	stats.RevenueByDay = sortedBuckets(dayMap, func(label string) time.Time {
		t, _ := time.Parse(dayLabelFormat, label)
		return t
	})
	stats.RevenueByMonth = sortedBuckets(monthMap, func(label string) time.Time {
		t, _ := time.Parse(monthLabelFormat, label)
		return t
	})
	stats.RevenueByYear = sortedBuckets(yearMap, func(label string) time.Time {
		year, _ := strconv.Atoi(label)
		return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	return stats
}

// sortedBuckets mengubah map label->jumlah menjadi slice terurut kronologis
// naik, dengan merekonstruksi waktu dari label bucket.
func sortedBuckets(m map[string]int64, parse func(string) time.Time) []RevenueBucket {
	buckets := make([]RevenueBucket, 0, len(m))
	for label, amount := range m {
		buckets = append(buckets, RevenueBucket{Label: label, Amount: amount})
	}
	sort.Slice(buckets, func(i, j int) bool {
		ti, tj := parse(buckets[i].Label), parse(buckets[j].Label)
		if ti.Equal(tj) {
			return buckets[i].Label < buckets[j].Label
		}
		return ti.Before(tj)
	})
	return buckets
}

func parseHourLabel(label string) time.Time {
	hour, _ := strconv.Atoi(label[:len(label)-3])
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)
}
