package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type AdminNotificationUsecase struct {
	settingRepo repo.NotificationSettingRepository
	auditRepo   repo.AuditLogRepository
}

// DI
func NewAdminNotificationUsecase(
	settingRepo repo.NotificationSettingRepository,
	auditRepo repo.AuditLogRepository,
) *AdminNotificationUsecase {
	return &AdminNotificationUsecase{settingRepo: settingRepo, auditRepo: auditRepo}
}

func (u *AdminNotificationUsecase) List(ctx context.Context) ([]model.NotificationSetting, error) {
	rows, err := u.settingRepo.List(ctx)
	if err != nil {
		return []model.NotificationSetting{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

type UpsertNotificationInput struct {
	Key     string
	Email   string
	Enabled bool
}

// Upsert は通知設定を作成または上書きする。
func (u *AdminNotificationUsecase) Upsert(ctx context.Context, adminUserID int64, in UpsertNotificationInput) (model.NotificationSetting, error) {
	if adminUserID <= 0 {
		return model.NotificationSetting{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	key := strings.TrimSpace(in.Key)
	if key == "" {
		return model.NotificationSetting{}, NewHTTPError(http.StatusBadRequest, "key required")
	}
	if in.Enabled && strings.TrimSpace(in.Email) == "" {
		return model.NotificationSetting{}, NewHTTPError(http.StatusBadRequest, "email required when enabled")
	}

	s, err := u.settingRepo.Upsert(ctx, model.NotificationSetting{
		Key:     key,
		Email:   strings.TrimSpace(in.Email),
		Enabled: in.Enabled,
	})
	if err != nil {
		return model.NotificationSetting{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログ失敗で操作自体は失敗させない
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateNotification,
		ResourceType: model.AuditResourceNotification,
		ResourceID:   s.ID,
		BeforeJSON:   "{}",
		AfterJSON:    fmt.Sprintf(`{"key":%q,"enabled":%t}`, s.Key, s.Enabled),
		CreatedAt:    time.Now(),
	})

	return s, nil
}
