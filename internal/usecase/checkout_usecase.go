package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/cartstore"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"

	"github.com/google/uuid"
)

// 引当の有効期限（支払い確認までのホールド時間）
const reservationTTL = 30 * time.Minute

// CheckoutUsecase はセッションカートから注文を作る。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	store *cartstore.MemoryStore
}

func NewCheckoutUsecase(tx repo.TransactionManager, store *cartstore.MemoryStore) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, store: store}
}

type PlaceOrderInput struct {
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	ShippingLine1  string
	ShippingLine2  string
	ShippingCity   string
	ShippingState  string
	ShippingZip    string
	IdempotencyKey string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	ID           int64             `json:"id"`
	Status       string            `json:"status"`
	TotalPrice   int64             `json:"total_price"`
	DepositTotal int64             `json:"deposit_total"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItemOutput `json:"items"`
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outs := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:           o.ID,
		Status:       string(o.Status),
		TotalPrice:   o.TotalPrice,
		DepositTotal: o.DepositTotal,
		CreatedAt:    o.CreatedAt,
		Items:        outs,
	}
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.CustomerEmail) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "email required")
	}
	if strings.TrimSpace(in.ShippingLine1) == "" || strings.TrimSpace(in.ShippingCity) == "" || strings.TrimSpace(in.ShippingZip) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "shipping address required")
	}
	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	items := u.store.Get(sessionID).Items()
	if len(items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ結果
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			existingItems, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = toOrderOutput(existing, existingItems)
			return nil
		}

		orderItems := make([]model.OrderItem, 0, len(items))
		var total int64 = 0
		var depositTotal int64 = 0

		//確定時に商品と在庫を再チェックして引き当てる
		for _, ci := range items {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound || (err == nil && p.Status == model.ProductStatusInactive) {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//引当（availableが足りないなら false）
			ok, err := r.Inventory().ReserveIfAvailable(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			//スナップショット（カート追加時の価格を使う）
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           ci.ProductID,
				ProductNameSnapshot: ci.Name,
				UnitPriceSnapshot:   ci.Price,
				Quantity:            ci.Quantity,
			})

			total += ci.Price * ci.Quantity
			if ci.DepositAmount != nil {
				depositTotal += *ci.DepositAmount * ci.Quantity
			}
		}

		// 注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			CustomerName:   strings.TrimSpace(in.CustomerName),
			CustomerEmail:  strings.TrimSpace(in.CustomerEmail),
			CustomerPhone:  strings.TrimSpace(in.CustomerPhone),
			ShippingLine1:  strings.TrimSpace(in.ShippingLine1),
			ShippingLine2:  strings.TrimSpace(in.ShippingLine2),
			ShippingCity:   strings.TrimSpace(in.ShippingCity),
			ShippingState:  strings.TrimSpace(in.ShippingState),
			ShippingZip:    strings.TrimSpace(in.ShippingZip),
			Status:         model.OrderStatusPending,
			TotalPrice:     total,
			DepositTotal:   depositTotal,
			IdempotencyKey: key,
		})
		if err != nil {
			//競合（同時に同じキーが入った等）はもう一回検索して同じ結果を返す
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return NewHTTPError(http.StatusBadRequest, "idempotency conflict")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//引当レコードを注文に紐づけて残す
		now := time.Now()
		for _, oi := range orderItems {
			res := model.StockReservation{
				ID:        uuid.NewString(),
				OrderID:   orderID,
				ProductID: oi.ProductID,
				Quantity:  oi.Quantity,
				Status:    model.ReservationStatusActive,
				ExpiresAt: now.Add(reservationTTL),
			}
			if err := r.Reservations().Create(ctx, res); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(o, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	//確定できたらセッションカートは空にする
	u.store.Delete(sessionID)

	return out, nil
}
