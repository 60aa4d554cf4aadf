package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"

	// 計算専用の値。products.status には保存しない。
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// 商品機能（"text" または {text, icon} の2形）
type Feature struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// iconが無いときに使う既定アイコン
const DefaultFeatureIcon = "Check"

// UnmarshalJSON は文字列とオブジェクトの両方を受ける
func (f *Feature) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Text = s
		f.Icon = ""
		return nil
	}

	type plain Feature
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = Feature(p)
	return nil
}

// Resolve はicon未指定を既定アイコンに揃える
func (f Feature) Resolve() Feature {
	if f.Icon == "" {
		return Feature{Text: f.Text, Icon: DefaultFeatureIcon}
	}
	return f
}

// features列（jsonb）
type FeatureList []Feature

func (l FeatureList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FeatureList) Scan(src interface{}) error {
	if src == nil {
		*l = FeatureList{}
		return nil
	}

	var b []byte
	switch t := src.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		return errors.New("unsupported features column type")
	}

	return json.Unmarshal(b, l)
}

type Product struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"`
	OriginalPrice *int64         `gorm:"column:original_price" json:"original_price,omitempty"`
	PreOrderPrice *int64         `gorm:"column:pre_order_price" json:"pre_order_price,omitempty"`
	DepositAmount *int64         `gorm:"column:deposit_amount" json:"deposit_amount,omitempty"`
	Features      FeatureList    `gorm:"type:jsonb" json:"features"`
	Image         string         `gorm:"type:varchar(500)" json:"image"`
	Category      string         `gorm:"type:varchar(100);index" json:"category"`
	Status        ProductStatus  `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	DisplayOrder  *int64         `gorm:"column:display_order" json:"display_order,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// 商品画像（ギャラリー）
type ProductImage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	ImageURL  string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImageAlt  string    `gorm:"type:varchar(255)" json:"image_alt"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
