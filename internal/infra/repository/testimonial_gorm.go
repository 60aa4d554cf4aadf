package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"

	"gorm.io/gorm"
)

type TestimonialGormRepository struct {
	db *gorm.DB
}

// DI
func NewTestimonialGormRepository(db *gorm.DB) *TestimonialGormRepository {
	return &TestimonialGormRepository{db: db}
}

// 承認済みのみ。display_order未設定はNULLS LASTで最後へ。
func (r *TestimonialGormRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	var rows []model.Testimonial
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("display_order asc NULLS LAST").
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return []model.Testimonial{}, err
	}
	return rows, nil
}

// 投稿は未承認として保存する
func (r *TestimonialGormRepository) Create(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	t.Approved = false
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialGormRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	var rows []model.Testimonial
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return []model.Testimonial{}, err
	}
	return rows, nil
}

func (r *TestimonialGormRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Update("approved", approved)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
