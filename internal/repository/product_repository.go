package repository

import (
	"context"
	"errors"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの絞り込み条件。
// InStock はストア側で status='active' かつ available_quantity>0 に絞る。
type ProductListQuery struct {
	Search    string
	Category  string
	MinPrice  *int64
	MaxPrice  *int64
	InStock   bool
	SortBy    string // price / name / created_at（既定: created_at）
	SortOrder string // asc / desc（既定: desc）
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}

// 商品画像の取得・保存。
type ProductImageRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error)
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	DeleteByID(ctx context.Context, imageID int64) error
}
