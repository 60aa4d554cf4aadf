package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/cart"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/cartstore"
)

func validCheckoutInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName:   "Taro Yamada",
		CustomerEmail:  "taro@example.com",
		ShippingLine1:  "1-2-3 Chuo",
		ShippingCity:   "Osaka",
		ShippingZip:    "530-0001",
		IdempotencyKey: "key-123",
	}
}

func newCheckoutUC() (*CheckoutUsecase, *txReposStub, *cartstore.MemoryStore) {
	tx, repos := newTxManagerStub()
	store := cartstore.NewMemoryStore(time.Hour)
	return NewCheckoutUsecase(tx, store), repos, store
}

func fillCart(store *cartstore.MemoryStore, sessionID string, items ...cart.Item) {
	store.Mutate(sessionID, func(c *cart.Cart) {
		for _, it := range items {
			qty := it.Quantity
			c.AddItem(it)
			if qty > 1 {
				c.UpdateQuantity(it.ProductID, qty)
			}
		}
	})
}

func TestPlaceOrder_Validation(t *testing.T) {
	uc, _, store := newCheckoutUC()
	ctx := context.Background()

	//宛先不足
	in := validCheckoutInput()
	in.CustomerName = ""
	_, err := uc.PlaceOrder(ctx, "sess", in)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//キー無し
	in = validCheckoutInput()
	in.IdempotencyKey = ""
	_, err = uc.PlaceOrder(ctx, "sess", in)
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//空カート
	_ = store
	_, err = uc.PlaceOrder(ctx, "sess", validCheckoutInput())
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestPlaceOrder_Success(t *testing.T) {
	uc, repos, store := newCheckoutUC()
	ctx := context.Background()

	deposit := int64(5000)
	fillCart(store, "sess",
		cart.Item{ProductID: 1, Name: "Plunge", Price: 99900, Quantity: 2, DepositAmount: &deposit},
		cart.Item{ProductID: 2, Name: "Barrel", Price: 50000, Quantity: 1},
	)

	repos.orders.On("FindByIdempotencyKey", ctx, "key-123").Return(model.Order{}, false, nil)
	repos.products.On("FindByID", ctx, int64(1)).Return(model.Product{ID: 1, Status: model.ProductStatusActive}, nil)
	repos.products.On("FindByID", ctx, int64(2)).Return(model.Product{ID: 2, Status: model.ProductStatusActive}, nil)
	repos.inventory.On("ReserveIfAvailable", ctx, int64(1), int64(2)).Return(true, nil)
	repos.inventory.On("ReserveIfAvailable", ctx, int64(2), int64(1)).Return(true, nil)
	repos.orders.On("Create", ctx, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalPrice == 2*99900+50000 &&
			o.DepositTotal == 2*5000 &&
			o.Status == model.OrderStatusPending &&
			o.IdempotencyKey == "key-123"
	})).Return(int64(77), nil)
	repos.orderItems.On("CreateBulk", ctx, int64(77), mock.Anything).Return(nil)
	repos.reservations.On("Create", ctx, mock.MatchedBy(func(r model.StockReservation) bool {
		return r.OrderID == 77 && r.Status == model.ReservationStatusActive && !r.ExpiresAt.IsZero()
	})).Return(nil).Twice()
	repos.orders.On("FindByID", ctx, int64(77)).Return(model.Order{
		ID: 77, Status: model.OrderStatusPending, TotalPrice: 2*99900 + 50000, DepositTotal: 10000, IdempotencyKey: "key-123",
	}, nil)

	out, err := uc.PlaceOrder(ctx, "sess", validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "PENDING", out.Status)
	assert.Len(t, out.Items, 2)

	//確定後はカートが空になる
	assert.Empty(t, store.Get("sess").Items())

	repos.reservations.AssertNumberOfCalls(t, "Create", 2)
}

func TestPlaceOrder_IdempotentReplay(t *testing.T) {
	uc, repos, store := newCheckoutUC()
	ctx := context.Background()

	fillCart(store, "sess", cart.Item{ProductID: 1, Name: "Plunge", Price: 99900, Quantity: 1})

	existing := model.Order{ID: 42, Status: model.OrderStatusPending, TotalPrice: 99900, IdempotencyKey: "key-123"}
	repos.orders.On("FindByIdempotencyKey", ctx, "key-123").Return(existing, true, nil)
	repos.orderItems.On("ListByOrderID", ctx, int64(42)).Return([]model.OrderItem{
		{OrderID: 42, ProductID: 1, ProductNameSnapshot: "Plunge", UnitPriceSnapshot: 99900, Quantity: 1},
	}, nil)

	out, err := uc.PlaceOrder(ctx, "sess", validCheckoutInput())
	require.NoError(t, err)

	//同じキーなら同じ注文が返る。引当はやり直さない。
	assert.Equal(t, int64(42), out.ID)
	repos.inventory.AssertNotCalled(t, "ReserveIfAvailable", mock.Anything, mock.Anything, mock.Anything)
	repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	uc, repos, store := newCheckoutUC()
	ctx := context.Background()

	fillCart(store, "sess", cart.Item{ProductID: 1, Name: "Plunge", Price: 99900, Quantity: 3})

	repos.orders.On("FindByIdempotencyKey", ctx, "key-123").Return(model.Order{}, false, nil)
	repos.products.On("FindByID", ctx, int64(1)).Return(model.Product{ID: 1, Status: model.ProductStatusActive}, nil)

	//availableが足りない
	repos.inventory.On("ReserveIfAvailable", ctx, int64(1), int64(3)).Return(false, nil)

	_, err := uc.PlaceOrder(ctx, "sess", validCheckoutInput())
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//失敗してもカートは残す
	assert.Len(t, store.Get("sess").Items(), 1)
}
