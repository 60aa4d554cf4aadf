package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/catalog"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// カタログの公開クエリを組み立てるusecase。
// ストア側の絞り込み＋メモリ内の二次ソートで結果を返す。
type CatalogUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	imageRepo     repo.ProductImageRepository
}

// DI
func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	imageRepo repo.ProductImageRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		imageRepo:     imageRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Search    string
	Category  string
	MinPrice  *int64
	MaxPrice  *int64
	InStock   bool
	SortBy    string
	SortOrder string
}

type ProductListOutput struct {
	Items []model.ProductWithInventory `json:"items"`
	Total int                          `json:"total"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Search) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "search too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.SortBy {
	case "", "created_at", "price", "name":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort_by")
	}
	switch strings.ToLower(in.SortOrder) {
	case "", "asc", "desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort_order")
	}

	products, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Search:    strings.TrimSpace(in.Search),
		Category:  in.Category,
		MinPrice:  in.MinPrice,
		MaxPrice:  in.MaxPrice,
		InStock:   in.InStock,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.annotate(ctx, products)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// ストアのソートの上に、販売側の並び順を重ねる
	catalog.SortByDisplayOrder(items)

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

// 在庫を引いて計算フィールドを付ける
func (u *CatalogUsecase) annotate(ctx context.Context, products []model.Product) ([]model.ProductWithInventory, error) {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	invByProduct, err := u.inventoryRepo.ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]model.ProductWithInventory, 0, len(products))
	for _, p := range products {
		items = append(items, catalog.Annotate(p, invByProduct[p.ID]))
	}
	return items, nil
}

type ProductDetailOutput struct {
	model.ProductWithInventory
	Images   []model.ProductImage `json:"images"`
	Features []model.Feature      `json:"features"`
}

// スラッグで商品詳細を取得。featuresは既定アイコンを埋めて一様な形で返す。
func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (ProductDetailOutput, error) {
	if strings.TrimSpace(slug) == "" {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if p.Status == model.ProductStatusInactive {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	inv, err := u.inventoryRepo.FindByProductID(ctx, p.ID)
	if err != nil && err != repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	images, err := u.imageRepo.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// タグ付きユニオンをここで一度だけ解決する
	features := make([]model.Feature, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, f.Resolve())
	}

	return ProductDetailOutput{
		ProductWithInventory: catalog.Annotate(p, inv),
		Images:               images,
		Features:             features,
	}, nil
}
