package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

type TestimonialRepository interface {
	// 承認済みのみ、display_order昇順（未設定は最後）→ created_at降順
	ListApproved(ctx context.Context) ([]model.Testimonial, error)

	// 投稿は未承認で保存する
	Create(ctx context.Context, t model.Testimonial) (model.Testimonial, error)

	// 管理画面用
	ListAll(ctx context.Context) ([]model.Testimonial, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
}
