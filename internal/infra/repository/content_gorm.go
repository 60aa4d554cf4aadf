package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"

	"gorm.io/gorm"
)

type TrustIndicatorGormRepository struct {
	db *gorm.DB
}

func NewTrustIndicatorGormRepository(db *gorm.DB) *TrustIndicatorGormRepository {
	return &TrustIndicatorGormRepository{db: db}
}

// 有効なバッジのみ、display_order昇順
func (r *TrustIndicatorGormRepository) ListActive(ctx context.Context) ([]model.TrustIndicator, error) {
	var rows []model.TrustIndicator
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order asc NULLS LAST").
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return []model.TrustIndicator{}, err
	}
	return rows, nil
}

type WarrantyGormRepository struct {
	db *gorm.DB
}

func NewWarrantyGormRepository(db *gorm.DB) *WarrantyGormRepository {
	return &WarrantyGormRepository{db: db}
}

// 有効な保証のみ、作成順
func (r *WarrantyGormRepository) ListActive(ctx context.Context) ([]model.Warranty, error) {
	var rows []model.Warranty
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return []model.Warranty{}, err
	}
	return rows, nil
}
