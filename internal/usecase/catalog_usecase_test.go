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

func newCatalogUC() (*CatalogUsecase, *ProductRepoMock, *InventoryRepoMock, *ImageRepoMock) {
	productRepo := new(ProductRepoMock)
	inventoryRepo := new(InventoryRepoMock)
	imageRepo := new(ImageRepoMock)
	return NewCatalogUsecase(productRepo, inventoryRepo, imageRepo), productRepo, inventoryRepo, imageRepo
}

func TestListProducts_ValidationErrors(t *testing.T) {
	uc, _, _, _ := newCatalogUC()
	ctx := context.Background()

	neg := int64(-1)
	ten := int64(10)
	five := int64(5)

	cases := []struct {
		name string
		in   ListProductsInput
	}{
		{"search too long", ListProductsInput{Search: string(make([]byte, 101))}},
		{"negative min", ListProductsInput{MinPrice: &neg}},
		{"negative max", ListProductsInput{MaxPrice: &neg}},
		{"min over max", ListProductsInput{MinPrice: &ten, MaxPrice: &five}},
		{"bad sort_by", ListProductsInput{SortBy: "display_order"}},
		{"bad sort_order", ListProductsInput{SortOrder: "up"}},
	}

	for _, c := range cases {
		_, err := uc.ListProducts(ctx, c.in)
		he, ok := AsHTTPError(err)
		require.True(t, ok, c.name)
		assert.Equal(t, http.StatusBadRequest, he.Status, c.name)
	}
}

// ストアの並びの上に display_order 昇順・同点active優先を重ねる
func TestListProducts_SecondarySort(t *testing.T) {
	uc, productRepo, inventoryRepo, _ := newCatalogUC()
	ctx := context.Background()

	one := int64(1)
	products := []model.Product{
		{ID: 10, Name: "no order", Status: model.ProductStatusActive},
		{ID: 11, Name: "first but sold out", DisplayOrder: &one, Status: model.ProductStatusActive},
		{ID: 12, Name: "first and active", DisplayOrder: &one, Status: model.ProductStatusActive},
	}

	productRepo.On("List", ctx, mock.Anything).Return(products, nil)
	inventoryRepo.On("ListByProductIDs", ctx, []int64{10, 11, 12}).Return(map[int64]model.Inventory{
		10: {ProductID: 10, AvailableQuantity: 5},
		11: {ProductID: 11, AvailableQuantity: 0},
		12: {ProductID: 12, AvailableQuantity: 2},
	}, nil)

	out, err := uc.ListProducts(ctx, ListProductsInput{})
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)

	//display_order=1の2件が先、同点はactiveが先、未設定は最後
	assert.Equal(t, int64(12), out.Items[0].ID)
	assert.Equal(t, int64(11), out.Items[1].ID)
	assert.Equal(t, int64(10), out.Items[2].ID)

	assert.Equal(t, model.ProductStatusActive, out.Items[0].ComputedStatus)
	assert.Equal(t, model.ProductStatusOutOfStock, out.Items[1].ComputedStatus)
}

func TestGetProductBySlug_InactiveIsNotFound(t *testing.T) {
	uc, productRepo, _, _ := newCatalogUC()
	ctx := context.Background()

	productRepo.On("FindBySlug", ctx, "hidden").Return(model.Product{
		ID: 1, Slug: "hidden", Status: model.ProductStatusInactive,
	}, nil)

	_, err := uc.GetProductBySlug(ctx, "hidden")
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetProductBySlug_ResolvesFeatures(t *testing.T) {
	uc, productRepo, inventoryRepo, imageRepo := newCatalogUC()
	ctx := context.Background()

	productRepo.On("FindBySlug", ctx, "plunge").Return(model.Product{
		ID:     1,
		Slug:   "plunge",
		Status: model.ProductStatusActive,
		Features: model.FeatureList{
			{Text: "plain"},
			{Text: "with icon", Icon: "Zap"},
		},
	}, nil)
	inventoryRepo.On("FindByProductID", ctx, int64(1)).Return(model.Inventory{
		ProductID: 1, AvailableQuantity: 3,
	}, nil)
	imageRepo.On("ListByProductID", ctx, int64(1)).Return([]model.ProductImage{
		{ID: 1, ProductID: 1, ImageURL: "https://cdn.example.com/1.jpg"},
	}, nil)

	out, err := uc.GetProductBySlug(ctx, "plunge")
	require.NoError(t, err)

	//icon未指定は既定アイコンに揃う
	require.Len(t, out.Features, 2)
	assert.Equal(t, model.DefaultFeatureIcon, out.Features[0].Icon)
	assert.Equal(t, "Zap", out.Features[1].Icon)

	assert.Equal(t, model.ProductStatusActive, out.ComputedStatus)
	assert.Len(t, out.Images, 1)
}

func TestGetProductBySlug_NotFound(t *testing.T) {
	uc, productRepo, _, _ := newCatalogUC()
	ctx := context.Background()

	productRepo.On("FindBySlug", ctx, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductBySlug(ctx, "missing")
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
