package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

type NotificationSettingRepository interface {
	List(ctx context.Context) ([]model.NotificationSetting, error)
	FindByKey(ctx context.Context, key string) (model.NotificationSetting, error)
	Upsert(ctx context.Context, s model.NotificationSetting) (model.NotificationSetting, error)
}
