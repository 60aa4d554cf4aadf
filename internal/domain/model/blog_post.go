package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "draft"
	BlogPostStatusPublished BlogPostStatus = "published"
)

// tags列（jsonb）
type TagList []string

func (l TagList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *TagList) Scan(src interface{}) error {
	if src == nil {
		*l = TagList{}
		return nil
	}

	var b []byte
	switch t := src.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		return errors.New("unsupported tags column type")
	}

	return json.Unmarshal(b, l)
}

type BlogPost struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt       string         `gorm:"type:text" json:"excerpt"`
	Content       string         `gorm:"type:text" json:"content"`
	Author        string         `gorm:"type:varchar(255)" json:"author"`
	FeaturedImage string         `gorm:"type:varchar(500)" json:"featured_image"`
	Tags          TagList        `gorm:"type:jsonb" json:"tags"`
	ReadTime      int            `gorm:"not null;default:0" json:"read_time"`
	Featured      bool           `gorm:"not null;default:false" json:"featured"`
	Status        BlogPostStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	PublishedAt   *time.Time     `json:"published_at,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
