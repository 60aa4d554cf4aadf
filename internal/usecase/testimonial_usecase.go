package usecase

import (
	"context"
	"net/http"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

// 投稿の入力検証の約束（DBに触る前に同期で弾く）
type TestimonialValidator interface {
	ValidateSubmit(name string, comment string, rating int) error
}

type TestimonialUsecase struct {
	testimonialRepo repo.TestimonialRepository
	validator       TestimonialValidator
}

// DI
func NewTestimonialUsecase(
	testimonialRepo repo.TestimonialRepository,
	validator TestimonialValidator,
) *TestimonialUsecase {
	return &TestimonialUsecase{
		testimonialRepo: testimonialRepo,
		validator:       validator,
	}
}

func (u *TestimonialUsecase) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := u.testimonialRepo.ListApproved(ctx)
	if err != nil {
		return []model.Testimonial{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

type SubmitTestimonialInput struct {
	Name     string
	Location string
	Rating   int
	Comment  string
}

// Submit は投稿を未承認で保存する。検証エラーはDBに行く前に返す。
func (u *TestimonialUsecase) Submit(ctx context.Context, in SubmitTestimonialInput) (model.Testimonial, error) {
	if err := u.validator.ValidateSubmit(in.Name, in.Comment, in.Rating); err != nil {
		return model.Testimonial{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := u.testimonialRepo.Create(ctx, model.Testimonial{
		Name:     in.Name,
		Location: in.Location,
		Rating:   in.Rating,
		Comment:  in.Comment,
	})
	if err != nil {
		return model.Testimonial{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}
