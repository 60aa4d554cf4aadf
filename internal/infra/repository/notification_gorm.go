package repository

import (
	"context"
	"errors"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationSettingGormRepository struct {
	db *gorm.DB
}

// DI
func NewNotificationSettingGormRepository(db *gorm.DB) *NotificationSettingGormRepository {
	return &NotificationSettingGormRepository{db: db}
}

func (r *NotificationSettingGormRepository) List(ctx context.Context) ([]model.NotificationSetting, error) {
	var rows []model.NotificationSetting
	err := r.db.WithContext(ctx).
		Order("key asc").
		Find(&rows).Error
	if err != nil {
		return []model.NotificationSetting{}, err
	}
	return rows, nil
}

func (r *NotificationSettingGormRepository) FindByKey(ctx context.Context, key string) (model.NotificationSetting, error) {
	var s model.NotificationSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NotificationSetting{}, repo.ErrNotFound
	}
	if err != nil {
		return model.NotificationSetting{}, err
	}
	return s, nil
}

// keyで一意。既存があれば上書き。
func (r *NotificationSettingGormRepository) Upsert(ctx context.Context, s model.NotificationSetting) (model.NotificationSetting, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "enabled", "updated_at"}),
		}).
		Create(&s).Error
	if err != nil {
		return model.NotificationSetting{}, err
	}

	return r.FindByKey(ctx, s.Key)
}
