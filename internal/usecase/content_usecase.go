package usecase

import (
	"context"
	"net/http"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

// トップページ向けの静的コンテンツ（信頼バッジ・保証）。
type ContentUsecase struct {
	trustRepo    repo.TrustIndicatorRepository
	warrantyRepo repo.WarrantyRepository
}

func NewContentUsecase(
	trustRepo repo.TrustIndicatorRepository,
	warrantyRepo repo.WarrantyRepository,
) *ContentUsecase {
	return &ContentUsecase{
		trustRepo:    trustRepo,
		warrantyRepo: warrantyRepo,
	}
}

func (u *ContentUsecase) TrustIndicators(ctx context.Context) ([]model.TrustIndicator, error) {
	rows, err := u.trustRepo.ListActive(ctx)
	if err != nil {
		return []model.TrustIndicator{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

func (u *ContentUsecase) Warranties(ctx context.Context) ([]model.Warranty, error) {
	rows, err := u.warrantyRepo.ListActive(ctx)
	if err != nil {
		return []model.Warranty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}
