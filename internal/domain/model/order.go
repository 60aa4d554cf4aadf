package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// ゲスト購入の注文。
type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName   string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail  string      `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	CustomerPhone  string      `gorm:"type:varchar(30)" json:"customer_phone"`
	ShippingLine1  string      `gorm:"type:varchar(255);not null" json:"shipping_line1"`
	ShippingLine2  string      `gorm:"type:varchar(255)" json:"shipping_line2"`
	ShippingCity   string      `gorm:"type:varchar(255);not null" json:"shipping_city"`
	ShippingState  string      `gorm:"type:varchar(100)" json:"shipping_state"`
	ShippingZip    string      `gorm:"type:varchar(20);not null" json:"shipping_zip"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalPrice     int64       `gorm:"not null" json:"total_price"`
	DepositTotal   int64       `gorm:"not null;default:0" json:"deposit_total"`
	IdempotencyKey string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
