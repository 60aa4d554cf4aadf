package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type AdminTestimonialUsecase struct {
	testimonialRepo repo.TestimonialRepository
	auditRepo       repo.AuditLogRepository
}

// DI
func NewAdminTestimonialUsecase(
	testimonialRepo repo.TestimonialRepository,
	auditRepo repo.AuditLogRepository,
) *AdminTestimonialUsecase {
	return &AdminTestimonialUsecase{testimonialRepo: testimonialRepo, auditRepo: auditRepo}
}

// List は承認状態に関係なく全件返す（管理画面用）。
func (u *AdminTestimonialUsecase) List(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := u.testimonialRepo.ListAll(ctx)
	if err != nil {
		return []model.Testimonial{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

// SetApproved は投稿の承認フラグを切り替える。
func (u *AdminTestimonialUsecase) SetApproved(ctx context.Context, adminUserID int64, id int64, approved bool) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := u.testimonialRepo.SetApproved(ctx, id, approved); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "testimonial not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログ失敗で操作自体は失敗させない
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionModerateTestimonial,
		ResourceType: model.AuditResourceTestimonial,
		ResourceID:   id,
		BeforeJSON:   "{}",
		AfterJSON:    fmt.Sprintf(`{"approved":%t}`, approved),
		CreatedAt:    time.Now(),
	})

	return nil
}
