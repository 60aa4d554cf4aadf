package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
)

func TestResolveStatus(t *testing.T) {
	//inactiveは在庫があっても常に優先
	assert.Equal(t, model.ProductStatusInactive, ResolveStatus(10, model.ProductStatusInactive))
	assert.Equal(t, model.ProductStatusInactive, ResolveStatus(0, model.ProductStatusInactive))

	//activeで引当後在庫があれば購入可能
	assert.Equal(t, model.ProductStatusActive, ResolveStatus(1, model.ProductStatusActive))
	assert.Equal(t, model.ProductStatusActive, ResolveStatus(100, model.ProductStatusActive))

	//activeでも在庫0なら売り切れ表示
	assert.Equal(t, model.ProductStatusOutOfStock, ResolveStatus(0, model.ProductStatusActive))
	assert.Equal(t, model.ProductStatusOutOfStock, ResolveStatus(-1, model.ProductStatusActive))
}

func TestNeedsReorder(t *testing.T) {
	assert.True(t, NeedsReorder(5, 5))
	assert.True(t, NeedsReorder(0, 5))
	assert.False(t, NeedsReorder(6, 5))

	//発注点0でも在庫0なら発注対象
	assert.True(t, NeedsReorder(0, 0))
}

func TestAnnotate(t *testing.T) {
	p := model.Product{ID: 1, Name: "Cold Plunge Pro", Status: model.ProductStatusActive}
	inv := model.Inventory{ProductID: 1, StockQuantity: 3, ReservedQuantity: 3, AvailableQuantity: 0, ReorderPoint: 5}

	got := Annotate(p, inv)

	//予約で在庫が尽きていれば表示はout_of_stock
	assert.Equal(t, model.ProductStatusOutOfStock, got.ComputedStatus)
	assert.True(t, got.NeedsReorder)
	assert.Equal(t, p.ID, got.ID)

	//保存ステータス自体は書き換えない
	assert.Equal(t, model.ProductStatusActive, got.Status)
}
