package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/catalog"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type AdminBlogUsecase struct {
	blogRepo  repo.BlogRepository
	auditRepo repo.AuditLogRepository
}

// DI
func NewAdminBlogUsecase(blogRepo repo.BlogRepository, auditRepo repo.AuditLogRepository) *AdminBlogUsecase {
	return &AdminBlogUsecase{blogRepo: blogRepo, auditRepo: auditRepo}
}

type AdminBlogPostInput struct {
	Title         string
	Excerpt       string
	Content       string
	Author        string
	FeaturedImage string
	Tags          []string
	ReadTime      int
	Featured      bool
	Status        string
}

func validateAdminBlogPostInput(in AdminBlogPostInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	switch in.Status {
	case string(model.BlogPostStatusDraft), string(model.BlogPostStatusPublished):
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	return nil
}

func (u *AdminBlogUsecase) List(ctx context.Context, page int, limit int) (BlogListOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := u.blogRepo.ListAdmin(ctx, page, limit)
	if err != nil {
		return BlogListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return BlogListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (u *AdminBlogUsecase) Create(ctx context.Context, adminUserID int64, in AdminBlogPostInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateAdminBlogPostInput(in); err != nil {
		return 0, err
	}

	title := strings.TrimSpace(in.Title)
	post := model.BlogPost{
		Slug:          catalog.Slugify(title),
		Title:         title,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Author:        in.Author,
		FeaturedImage: in.FeaturedImage,
		Tags:          in.Tags,
		ReadTime:      in.ReadTime,
		Featured:      in.Featured,
		Status:        model.BlogPostStatus(in.Status),
	}

	//公開で作ったら公開時刻を入れる
	if post.Status == model.BlogPostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	created, err := u.blogRepo.Create(ctx, post)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, created.ID, "{}", fmt.Sprintf(`{"title":%q,"status":%q}`, created.Title, created.Status))
	return created.ID, nil
}

func (u *AdminBlogUsecase) Update(ctx context.Context, adminUserID int64, postID int64, in AdminBlogPostInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if postID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateAdminBlogPostInput(in); err != nil {
		return err
	}

	existing, err := u.blogRepo.FindByID(ctx, postID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	title := strings.TrimSpace(in.Title)
	post := model.BlogPost{
		ID:            postID,
		Slug:          catalog.Slugify(title),
		Title:         title,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Author:        in.Author,
		FeaturedImage: in.FeaturedImage,
		Tags:          in.Tags,
		ReadTime:      in.ReadTime,
		Featured:      in.Featured,
		Status:        model.BlogPostStatus(in.Status),
		PublishedAt:   existing.PublishedAt,
	}

	//初めて公開になったときだけ公開時刻を入れる
	if post.Status == model.BlogPostStatusPublished && existing.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := u.blogRepo.Update(ctx, post); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, postID,
		fmt.Sprintf(`{"title":%q,"status":%q}`, existing.Title, existing.Status),
		fmt.Sprintf(`{"title":%q,"status":%q}`, post.Title, post.Status))
	return nil
}

func (u *AdminBlogUsecase) Delete(ctx context.Context, adminUserID int64, postID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if postID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.blogRepo.DeleteByID(ctx, postID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminBlogUsecase) writeAudit(ctx context.Context, adminUserID int64, postID int64, before string, after string) {
	//監査ログ失敗で操作自体は失敗させない
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdatePost,
		ResourceType: model.AuditResourceBlogPost,
		ResourceID:   postID,
		BeforeJSON:   before,
		AfterJSON:    after,
		CreatedAt:    time.Now(),
	})
}
