package validator

import (
	"errors"

	v10 "github.com/go-playground/validator/v10"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

var ErrInvalidTestimonial = errors.New("invalid testimonial")

// 投稿フォームの検証ルール
type testimonialSubmission struct {
	Name    string `validate:"required,min=2,max=100"`
	Comment string `validate:"required,min=10,max=2000"`
	Rating  int    `validate:"required,min=1,max=5"`
}

type testimonialValidator struct {
	validate *v10.Validate
}

func NewTestimonialValidator() usecase.TestimonialValidator {
	return &testimonialValidator{validate: v10.New()}
}

func (v *testimonialValidator) ValidateSubmit(name string, comment string, rating int) error {
	in := testimonialSubmission{
		Name:    name,
		Comment: comment,
		Rating:  rating,
	}
	if err := v.validate.Struct(in); err != nil {
		return ErrInvalidTestimonial
	}
	return nil
}
