package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/catalog"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/seo"
)

// サイトマップとJSON-LDを組み立てるusecase。
type SEOUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	blogRepo      repo.BlogRepository
	baseURL       string
}

func NewSEOUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	blogRepo repo.BlogRepository,
	baseURL string,
) *SEOUsecase {
	return &SEOUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		blogRepo:      blogRepo,
		baseURL:       baseURL,
	}
}

// Sitemap はアクティブ商品と公開記事のXMLサイトマップを返す。
func (u *SEOUsecase) Sitemap(ctx context.Context) ([]byte, error) {
	products, err := u.productRepo.List(ctx, repo.ProductListQuery{})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	entries := make([]seo.Entry, 0, len(products))
	for _, p := range products {
		if p.Status != model.ProductStatusActive || p.Slug == "" {
			continue
		}
		entries = append(entries, seo.Entry{
			Path:       "/products/" + p.Slug,
			LastMod:    p.UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	posts, _, err := u.blogRepo.ListPublished(ctx, repo.BlogListQuery{Page: 1, Limit: 1000})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	for _, p := range posts {
		if p.Slug == "" {
			continue
		}
		e := seo.Entry{
			Path:       "/blog/" + p.Slug,
			ChangeFreq: "monthly",
			Priority:   "0.6",
		}
		if p.PublishedAt != nil {
			e.LastMod = *p.PublishedAt
		}
		entries = append(entries, e)
	}

	body, err := seo.BuildSitemap(u.baseURL, entries)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return body, nil
}

// ProductStructuredData は商品ページ埋め込み用のJSON-LDを返す。
func (u *SEOUsecase) ProductStructuredData(ctx context.Context, slug string) (map[string]interface{}, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.Status == model.ProductStatusInactive {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}

	inv, err := u.inventoryRepo.FindByProductID(ctx, p.ID)
	if err != nil && err != repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return seo.ProductJSONLD(u.baseURL, catalog.Annotate(p, inv)), nil
}
