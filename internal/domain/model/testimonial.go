package model

import "time"

// お客様の声（承認されたものだけ公開）
type Testimonial struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Location     string    `gorm:"type:varchar(255)" json:"location"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text;not null" json:"comment"`
	Approved     bool      `gorm:"not null;default:false;index" json:"approved"`
	DisplayOrder *int64    `gorm:"column:display_order" json:"display_order,omitempty"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
