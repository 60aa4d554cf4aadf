package usecase

import (
	"context"
	"net/http"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/cart"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/catalog"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/cartstore"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

// CartUsecase はセッションカートの業務ロジック。
// カートはメモリ置き（セッション寿命）で、DBには保存しない。
type CartUsecase struct {
	store         *cartstore.MemoryStore
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

func NewCartUsecase(
	store *cartstore.MemoryStore,
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
) *CartUsecase {
	return &CartUsecase{
		store:         store,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

type CartResponse struct {
	Items      []cart.Item `json:"items"`
	TotalItems int64       `json:"total_items"`
	TotalPrice int64       `json:"total_price"`
}

func (u *CartUsecase) buildResponse(c *cart.Cart) CartResponse {
	return CartResponse{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

// GetCart はセッションのカートを返す（無ければ空）。
func (u *CartUsecase) GetCart(sessionID string) CartResponse {
	return u.buildResponse(u.store.Get(sessionID))
}

// AddItem は商品をカートに入れる。同一商品は数量+1。
// 商品スナップショット（名前・価格・スラッグなど）は追加時点で固定する。
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	inv, err := u.inventoryRepo.FindByProductID(ctx, p.ID)
	if err != nil && err != repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 購入できる商品だけ入れられる
	status := catalog.ResolveStatus(inv.AvailableQuantity, p.Status)
	if status != model.ProductStatusActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "not available")
	}

	slug := p.Slug
	if slug == "" {
		slug = catalog.Slugify(p.Name)
	}

	item := cart.Item{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		DepositAmount: p.DepositAmount,
		Image:         p.Image,
		Description:   p.Description,
		Slug:          slug,
		Status:        string(status),
	}

	var resp CartResponse
	u.store.Mutate(sessionID, func(c *cart.Cart) {
		c.AddItem(item)
		resp = u.buildResponse(c)
	})
	return resp, nil
}

// RemoveItem は明細を落とす。無ければ何もしない。
func (u *CartUsecase) RemoveItem(sessionID string, productID int64) CartResponse {
	var resp CartResponse
	u.store.Mutate(sessionID, func(c *cart.Cart) {
		c.RemoveItem(productID)
		resp = u.buildResponse(c)
	})
	return resp
}

// UpdateQuantity は数量を上書きする（0以下は削除）。
func (u *CartUsecase) UpdateQuantity(sessionID string, productID int64, quantity int64) CartResponse {
	var resp CartResponse
	u.store.Mutate(sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(productID, quantity)
		resp = u.buildResponse(c)
	})
	return resp
}

// Clear は全明細を空にする。
func (u *CartUsecase) Clear(sessionID string) CartResponse {
	var resp CartResponse
	u.store.Mutate(sessionID, func(c *cart.Cart) {
		c.Clear()
		resp = u.buildResponse(c)
	})
	return resp
}
