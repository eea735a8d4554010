package model

import "math"

// 上限（合計がfloat64で溢れないように）
const (
	MaxPrice        = 1_000_000.0
	MaxLineQuantity = 9999
)

// カートの1行（商品1点と数量）
// JSONのキーはブラウザ版のlocalStorageと同じ形。
type CartLine struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// 小計
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// ValidPrice は 0 <= price <= MaxPrice の有限値
func ValidPrice(price float64) bool {
	return !math.IsNaN(price) && !math.IsInf(price, 0) && price >= 0 && price <= MaxPrice
}
