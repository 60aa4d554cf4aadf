package repository

import (
	"context"
	"errors"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"

	"gorm.io/gorm"
)

type BlogGormRepository struct {
	db *gorm.DB
}

// DI
func NewBlogGormRepository(db *gorm.DB) *BlogGormRepository {
	return &BlogGormRepository{db: db}
}

// 公開記事のみ、published_at降順
func (r *BlogGormRepository) ListPublished(ctx context.Context, q repo.BlogListQuery) ([]model.BlogPost, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("status = ?", model.BlogPostStatusPublished)

	if q.Tag != "" {
		// tagsはjsonb配列
		tx = tx.Where("tags @> ?", `["`+q.Tag+`"]`)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.BlogPost{}, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var posts []model.BlogPost
	err := tx.
		Order("published_at desc").
		Order("id desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return []model.BlogPost{}, 0, err
	}

	return posts, total, nil
}

// スラッグで公開記事を1件。無い場合は ErrNotFound（エラーではなく不在扱い）。
func (r *BlogGormRepository) FindPublishedBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var p model.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, model.BlogPostStatusPublished).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPost{}, repo.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

// 管理画面用（下書き込み、更新日降順）
func (r *BlogGormRepository) ListAdmin(ctx context.Context, page int, limit int) ([]model.BlogPost, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.BlogPost{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return []model.BlogPost{}, 0, err
	}

	var posts []model.BlogPost
	err := tx.
		Order("updated_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return []model.BlogPost{}, 0, err
	}

	return posts, total, nil
}

func (r *BlogGormRepository) FindByID(ctx context.Context, id int64) (model.BlogPost, error) {
	var p model.BlogPost
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.BlogPost{}, repo.ErrNotFound
	}
	if err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

func (r *BlogGormRepository) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.BlogPost{}, err
	}
	return p, nil
}

func (r *BlogGormRepository) Update(ctx context.Context, p model.BlogPost) error {
	res := r.db.WithContext(ctx).Model(&model.BlogPost{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"slug":           p.Slug,
		"title":          p.Title,
		"excerpt":        p.Excerpt,
		"content":        p.Content,
		"author":         p.Author,
		"featured_image": p.FeaturedImage,
		"tags":           p.Tags,
		"read_time":      p.ReadTime,
		"featured":       p.Featured,
		"status":         p.Status,
		"published_at":   p.PublishedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BlogGormRepository) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.BlogPost{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
