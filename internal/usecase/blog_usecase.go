package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type BlogUsecase struct {
	blogRepo repo.BlogRepository
}

// DI
func NewBlogUsecase(blogRepo repo.BlogRepository) *BlogUsecase {
	return &BlogUsecase{blogRepo: blogRepo}
}

type ListPostsInput struct {
	Tag      string
	Featured *bool
	Page     int
	Limit    int
}

type BlogListOutput struct {
	Items []model.BlogPost `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *BlogUsecase) ListPublished(ctx context.Context, in ListPostsInput) (BlogListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}

	items, total, err := u.blogRepo.ListPublished(ctx, repo.BlogListQuery{
		Tag:      strings.TrimSpace(in.Tag),
		Featured: in.Featured,
		Page:     in.Page,
		Limit:    in.Limit,
	})
	if err != nil {
		return BlogListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BlogListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// スラッグで公開記事を取得。見つからないのはエラーではなく404。
func (u *BlogUsecase) GetBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	if strings.TrimSpace(slug) == "" {
		return model.BlogPost{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.blogRepo.FindPublishedBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
