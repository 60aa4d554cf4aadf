package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

func TestAdminTestimonialList_IncludesUnapproved(t *testing.T) {
	repoMock := new(TestimonialRepoMock)
	audit := new(AuditRepoMock)
	uc := NewAdminTestimonialUsecase(repoMock, audit)
	ctx := context.Background()

	repoMock.On("ListAll", ctx).Return([]model.Testimonial{
		{ID: 1, Approved: true},
		{ID: 2, Approved: false},
	}, nil)

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAdminTestimonialSetApproved(t *testing.T) {
	repoMock := new(TestimonialRepoMock)
	audit := new(AuditRepoMock)
	uc := NewAdminTestimonialUsecase(repoMock, audit)
	ctx := context.Background()

	repoMock.On("SetApproved", ctx, int64(2), true).Return(nil)
	audit.On("Create", ctx, mock.MatchedBy(func(a model.AuditLog) bool {
		return a.Action == model.AuditActionModerateTestimonial && a.ResourceID == 2
	})).Return(nil)

	require.NoError(t, uc.SetApproved(ctx, 1, 2, true))

	//存在しないIDは404
	repoMock.On("SetApproved", ctx, int64(99), true).Return(repo.ErrNotFound)
	err := uc.SetApproved(ctx, 1, 99, true)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
