package model

import "time"

// 信頼指標（配送無料・保証など、トップページのバッジ）
type TrustIndicator struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Label        string    `gorm:"type:varchar(255);not null" json:"label"`
	Icon         string    `gorm:"type:varchar(100)" json:"icon"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"`
	DisplayOrder *int64    `gorm:"column:display_order" json:"display_order,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 製品保証
type Warranty struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Months      int       `gorm:"not null;default:0" json:"months"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
