package model

import "math"

// Cart はプロフィールごとのカートです。idで一意、並び順は追加順。
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// 明細を探す。無ければ -1
func (c *Cart) indexOf(id string) int {
	for i, l := range c.Lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Find はidの明細を返します。
func (c *Cart) Find(id string) (CartLine, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return CartLine{}, false
	}
	return c.Lines[i], true
}

// Add は同一idなら数量+1、無ければ数量1で末尾に追加します。
func (c *Cart) Add(id string, title string, price float64) CartLine {
	if i := c.indexOf(id); i >= 0 {
		if c.Lines[i].Quantity < MaxLineQuantity {
			c.Lines[i].Quantity++
		}
		return c.Lines[i]
	}

	line := CartLine{ID: id, Title: title, Price: price, Quantity: 1}
	c.Lines = append(c.Lines, line)
	return line
}

// Remove はidの明細を取り除きます。無いidは何もしない。
func (c *Cart) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// AdjustQuantity は数量にdeltaを足します。0以下になったら明細ごと消す。
// 増やす側は MaxLineQuantity で止める。
// 戻り値: (明細があったか, 削除されたか)
func (c *Cart) AdjustQuantity(id string, delta int) (found bool, removed bool) {
	i := c.indexOf(id)
	if i < 0 {
		return false, false
	}

	q := c.Lines[i].Quantity
	switch {
	case delta > 0 && delta > MaxLineQuantity-q:
		q = MaxLineQuantity
	case delta < 0 && delta <= -q:
		q = 0
	default:
		q += delta
	}
	c.Lines[i].Quantity = q
	if q <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return true, true
	}
	return true, false
}

// Normalize は数量0以下・価格が範囲外の明細を落とし、重複idをまとめます（保存データが壊れていた時用）。
// 数量は MaxLineQuantity で頭打ち。
func (c *Cart) Normalize() {
	seen := make(map[string]int, len(c.Lines))
	out := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ID == "" || l.Quantity <= 0 || !ValidPrice(l.Price) {
			continue
		}
		if l.Quantity > MaxLineQuantity {
			l.Quantity = MaxLineQuantity
		}
		if i, ok := seen[l.ID]; ok {
			out[i].Quantity = min(out[i].Quantity+l.Quantity, MaxLineQuantity)
			continue
		}
		seen[l.ID] = len(out)
		out = append(out, l)
	}
	c.Lines = out
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItemCount は数量の合計です。
func (c *Cart) TotalItemCount() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice は price×quantity の合計です（セント単位で丸める）。
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return math.Round(total*100) / 100
}
