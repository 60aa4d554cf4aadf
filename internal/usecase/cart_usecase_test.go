package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/cartstore"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

func newCartUC() (*CartUsecase, *ProductRepoMock, *InventoryRepoMock, *cartstore.MemoryStore) {
	store := cartstore.NewMemoryStore(time.Hour)
	productRepo := new(ProductRepoMock)
	inventoryRepo := new(InventoryRepoMock)
	return NewCartUsecase(store, productRepo, inventoryRepo), productRepo, inventoryRepo, store
}

func TestCartAddItem_Success(t *testing.T) {
	uc, productRepo, inventoryRepo, _ := newCartUC()
	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(1)).Return(model.Product{
		ID: 1, Name: "Cold Plunge", Slug: "cold-plunge", Price: 99900, Status: model.ProductStatusActive,
	}, nil)
	inventoryRepo.On("FindByProductID", ctx, int64(1)).Return(model.Inventory{
		ProductID: 1, AvailableQuantity: 3,
	}, nil)

	resp, err := uc.AddItem(ctx, "sess", 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].Quantity)
	assert.Equal(t, int64(99900), resp.TotalPrice)

	//同じ商品の2回目は数量+1
	resp, err = uc.AddItem(ctx, "sess", 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].Quantity)
	assert.Equal(t, int64(2), resp.TotalItems)
}

func TestCartAddItem_RejectsUnavailable(t *testing.T) {
	uc, productRepo, inventoryRepo, _ := newCartUC()
	ctx := context.Background()

	//inactive商品
	productRepo.On("FindByID", ctx, int64(1)).Return(model.Product{
		ID: 1, Status: model.ProductStatusInactive,
	}, nil)
	inventoryRepo.On("FindByProductID", ctx, int64(1)).Return(model.Inventory{
		ProductID: 1, AvailableQuantity: 10,
	}, nil)

	_, err := uc.AddItem(ctx, "sess", 1)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//在庫切れ商品
	productRepo.On("FindByID", ctx, int64(2)).Return(model.Product{
		ID: 2, Status: model.ProductStatusActive,
	}, nil)
	inventoryRepo.On("FindByProductID", ctx, int64(2)).Return(model.Inventory{
		ProductID: 2, AvailableQuantity: 0,
	}, nil)

	_, err = uc.AddItem(ctx, "sess", 2)
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCartAddItem_UnknownProduct(t *testing.T) {
	uc, productRepo, _, _ := newCartUC()
	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(ctx, "sess", 404)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCartUpdateAndRemove(t *testing.T) {
	uc, productRepo, inventoryRepo, _ := newCartUC()
	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(1)).Return(model.Product{
		ID: 1, Name: "Barrel", Price: 500, Status: model.ProductStatusActive,
	}, nil)
	inventoryRepo.On("FindByProductID", ctx, int64(1)).Return(model.Inventory{
		ProductID: 1, AvailableQuantity: 9,
	}, nil)

	_, err := uc.AddItem(ctx, "sess", 1)
	require.NoError(t, err)

	resp := uc.UpdateQuantity("sess", 1, 4)
	assert.Equal(t, int64(4), resp.TotalItems)

	//0以下は削除
	resp = uc.UpdateQuantity("sess", 1, 0)
	assert.Empty(t, resp.Items)

	//空カートへの削除は無害
	resp = uc.RemoveItem("sess", 1)
	assert.Empty(t, resp.Items)
}

func TestCartGet_EmptySession(t *testing.T) {
	uc, _, _, _ := newCartUC()

	resp := uc.GetCart("fresh")
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.TotalItems)
	assert.Equal(t, int64(0), resp.TotalPrice)
}
