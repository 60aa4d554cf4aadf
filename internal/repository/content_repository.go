package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

// 信頼指標と保証の取得。
type TrustIndicatorRepository interface {
	// is_active=true、display_order昇順
	ListActive(ctx context.Context) ([]model.TrustIndicator, error)
}

type WarrantyRepository interface {
	// is_active=true、created_at昇順
	ListActive(ctx context.Context) ([]model.Warranty, error)
}
