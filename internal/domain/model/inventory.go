package model

import "time"

// 商品ごとの在庫カウンタ。
// available_quantity はストア側で stock - reserved として保守される。
type Inventory struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         int64     `gorm:"not null;uniqueIndex" json:"product_id"`
	StockQuantity     int64     `gorm:"not null;default:0" json:"stock_quantity"`
	ReservedQuantity  int64     `gorm:"not null;default:0" json:"reserved_quantity"`
	AvailableQuantity int64     `gorm:"not null;default:0" json:"available_quantity"`
	ReorderPoint      int64     `gorm:"not null;default:0" json:"reorder_point"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 商品＋在庫の読み取り結果。
// ComputedStatus と NeedsReorder は読み取りのたびに計算する（保存しない）。
type ProductWithInventory struct {
	Product
	Inventory      Inventory     `gorm:"-" json:"inventory"`
	ComputedStatus ProductStatus `gorm:"-" json:"computed_status"`
	NeedsReorder   bool          `gorm:"-" json:"needs_reorder"`
}

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusFulfilled ReservationStatus = "fulfilled"
	ReservationStatusExpired   ReservationStatus = "expired"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// 注文に紐づく時間制限つき在庫引当。
// active → fulfilled / expired / cancelled
type StockReservation struct {
	ID        string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID   int64             `gorm:"not null;index" json:"order_id"`
	ProductID int64             `gorm:"not null;index" json:"product_id"`
	Quantity  int64             `gorm:"not null" json:"quantity"`
	Status    ReservationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ExpiresAt time.Time         `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
