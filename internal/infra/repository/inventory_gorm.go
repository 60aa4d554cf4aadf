package repository

import (
	"context"
	"errors"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

func (r *InventoryGormRepository) FindByProductID(ctx context.Context, productID int64) (model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Inventory{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// 商品IDの集合に対して在庫をまとめて引く（一覧表示用）
func (r *InventoryGormRepository) ListByProductIDs(ctx context.Context, productIDs []int64) (map[int64]model.Inventory, error) {
	out := make(map[int64]model.Inventory, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []model.Inventory
	if err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, inv := range rows {
		out[inv.ProductID] = inv
	}
	return out, nil
}

// 在庫の現在値を設定。available = stock - reserved も揃える。
func (r *InventoryGormRepository) SetStock(ctx context.Context, productID int64, newStock int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"stock_quantity":     newStock,
			"available_quantity": gorm.Expr("? - reserved_quantity", newStock),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 引当：availableが足りるときだけ動かす
func (r *InventoryGormRepository) ReserveIfAvailable(ctx context.Context, productID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Where("product_id = ? AND available_quantity >= ?", productID, qty).
		Updates(map[string]interface{}{
			"reserved_quantity":  gorm.Expr("reserved_quantity + ?", qty),
			"available_quantity": gorm.Expr("available_quantity - ?", qty),
		})

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 引当解除（キャンセル・期限切れ）
func (r *InventoryGormRepository) ReleaseReserved(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"reserved_quantity":  gorm.Expr("reserved_quantity - ?", qty),
			"available_quantity": gorm.Expr("available_quantity + ?", qty),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 出荷確定：実在庫と引当の両方を減らす
func (r *InventoryGormRepository) CommitReserved(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"stock_quantity":    gorm.Expr("stock_quantity - ?", qty),
			"reserved_quantity": gorm.Expr("reserved_quantity - ?", qty),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 調整履歴作成
func (r *InventoryGormRepository) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	if err := r.db.WithContext(ctx).Create(&adj).Error; err != nil {
		return err
	}
	return nil
}

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Create(ctx context.Context, res model.StockReservation) error {
	return r.db.WithContext(ctx).Create(&res).Error
}

func (r *ReservationGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.StockReservation, error) {
	var rows []model.StockReservation
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return []model.StockReservation{}, err
	}
	return rows, nil
}

func (r *ReservationGormRepository) UpdateStatus(ctx context.Context, reservationID string, status model.ReservationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&model.StockReservation{}).
		Where("id = ?", reservationID).
		Update("status", status)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
