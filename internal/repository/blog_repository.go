package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

type BlogListQuery struct {
	Tag      string
	Featured *bool
	Page     int
	Limit    int
}

type BlogRepository interface {
	// 公開記事のみ（status='published'、published_at降順）
	ListPublished(ctx context.Context, q BlogListQuery) ([]model.BlogPost, int64, error)
	FindPublishedBySlug(ctx context.Context, slug string) (model.BlogPost, error)

	// 管理画面用（下書き込み）
	ListAdmin(ctx context.Context, page int, limit int) ([]model.BlogPost, int64, error)
	FindByID(ctx context.Context, id int64) (model.BlogPost, error)
	Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error)
	Update(ctx context.Context, p model.BlogPost) error
	DeleteByID(ctx context.Context, id int64) error
}
