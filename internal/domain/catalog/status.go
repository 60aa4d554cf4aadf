package catalog

import "github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"

// ResolveStatus は表示用ステータスを導出する。
// 管理側のinactiveが常に優先。次に引当後在庫で判定する。
func ResolveStatus(availableQuantity int64, productStatus model.ProductStatus) model.ProductStatus {
	if productStatus == model.ProductStatusInactive {
		return model.ProductStatusInactive
	}
	if availableQuantity > 0 {
		return model.ProductStatusActive
	}
	return model.ProductStatusOutOfStock
}

// NeedsReorder は発注点を割っているかどうか。
func NeedsReorder(stockQuantity int64, reorderPoint int64) bool {
	return stockQuantity <= reorderPoint
}

// Annotate は商品＋在庫に計算フィールドを付ける。
// ComputedStatus / NeedsReorder は保存せず、読み取りのたびに計算する。
func Annotate(p model.Product, inv model.Inventory) model.ProductWithInventory {
	return model.ProductWithInventory{
		Product:        p,
		Inventory:      inv,
		ComputedStatus: ResolveStatus(inv.AvailableQuantity, p.Status),
		NeedsReorder:   NeedsReorder(inv.StockQuantity, inv.ReorderPoint),
	}
}
