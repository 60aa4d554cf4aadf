package repository

import (
	"context"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

// 在庫カウンタの永続化と履歴保存をまとめた約束。
type InventoryRepository interface {
	FindByProductID(ctx context.Context, productID int64) (model.Inventory, error)
	ListByProductIDs(ctx context.Context, productIDs []int64) (map[int64]model.Inventory, error)

	// 在庫の現在値を設定（available = stock - reserved もここで揃える）
	SetStock(ctx context.Context, productID int64, newStock int64) error

	// 引当：availableが足りるときだけ reserved+qty / available-qty
	ReserveIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error)

	// 引当解除（キャンセルなど）：reserved-qty / available+qty
	ReleaseReserved(ctx context.Context, productID int64, qty int64) error

	// 出荷確定：stock-qty / reserved-qty
	CommitReserved(ctx context.Context, productID int64, qty int64) error

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}

// 注文に紐づく在庫引当レコード。
type ReservationRepository interface {
	Create(ctx context.Context, r model.StockReservation) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.StockReservation, error)
	UpdateStatus(ctx context.Context, reservationID string, status model.ReservationStatus) error
}
