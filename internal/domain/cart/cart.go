package cart

// カートの明細。商品のスナップショットと数量を持つ。
type Item struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`
	DepositAmount *int64 `json:"deposit_amount,omitempty"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Slug          string `json:"slug"`
	Status        string `json:"status"`
	Quantity      int64  `json:"quantity"`
}

// セッション1つ分のカート。
// 商品IDごとに明細は1つ。追加順を保つ（最初に入れたものが先頭のまま）。
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{items: []Item{}}
}

// AddItem は明細を追加する。既にある商品は数量を+1する。
// 新規明細の数量は必ず1から始める。
func (c *Cart) AddItem(item Item) {
	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity++
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
}

// RemoveItem は商品IDの明細を落とす。無ければ何もしない。
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity は数量を上書きする。0以下は削除扱い。
func (c *Cart) UpdateQuantity(productID int64, quantity int64) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear は全明細を空にする。
func (c *Cart) Clear() {
	c.items = []Item{}
}

// Clone は独立したコピーを返す。元のカートを書き換えても影響しない。
func (c *Cart) Clone() *Cart {
	return &Cart{items: c.Items()}
}

// Items は追加順の明細コピーを返す。
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems は数量の合計。
func (c *Cart) TotalItems() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice は price × quantity の合計（単位はセント、USDのみ）。
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.items {
		total += it.Price * it.Quantity
	}
	return total
}
