package models

// CartItem hidup di sesi meja (session store), tidak pernah masuk database
// sampai order dibuat.
type CartItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
	Category  string `json:"category"`
}
