package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

type testimonialValidatorStub struct {
	err error
}

func (s *testimonialValidatorStub) ValidateSubmit(name string, comment string, rating int) error {
	return s.err
}

func TestSubmitTestimonial_ValidationFailsBeforeDB(t *testing.T) {
	repoMock := new(TestimonialRepoMock)
	uc := NewTestimonialUsecase(repoMock, &testimonialValidatorStub{err: errors.New("invalid testimonial")})

	_, err := uc.Submit(context.Background(), SubmitTestimonialInput{Name: "a", Rating: 9, Comment: "x"})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//検証で落ちたらDBには行かない
	repoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitTestimonial_SavedUnapproved(t *testing.T) {
	repoMock := new(TestimonialRepoMock)
	uc := NewTestimonialUsecase(repoMock, &testimonialValidatorStub{})
	ctx := context.Background()

	repoMock.On("Create", ctx, mock.MatchedBy(func(tm model.Testimonial) bool {
		return !tm.Approved && tm.Name == "Hanako" && tm.Rating == 5
	})).Return(model.Testimonial{ID: 1, Name: "Hanako", Rating: 5, Comment: "Great cold plunge!"}, nil)

	out, err := uc.Submit(ctx, SubmitTestimonialInput{
		Name: "Hanako", Location: "Tokyo", Rating: 5, Comment: "Great cold plunge!",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
}

func TestListApprovedTestimonials(t *testing.T) {
	repoMock := new(TestimonialRepoMock)
	uc := NewTestimonialUsecase(repoMock, &testimonialValidatorStub{})
	ctx := context.Background()

	repoMock.On("ListApproved", ctx).Return([]model.Testimonial{
		{ID: 1, Approved: true},
		{ID: 2, Approved: true},
	}, nil)

	rows, err := uc.ListApproved(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
