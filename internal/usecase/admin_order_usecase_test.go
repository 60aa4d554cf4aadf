package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

func newAdminOrderUC() (*AdminOrderUsecase, *txReposStub) {
	tx, repos := newTxManagerStub()
	return NewAdminOrderUsecase(tx), repos
}

func TestAdminUpdateOrderStatus_InvalidStatus(t *testing.T) {
	uc, _ := newAdminOrderUC()

	err := uc.UpdateStatus(context.Background(), 1, 10, AdminUpdateOrderStatusInput{Status: "SHIPPING"})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAdminUpdateOrderStatus_SameStatusIsNoop(t *testing.T) {
	uc, repos := newAdminOrderUC()
	ctx := context.Background()

	repos.orders.On("FindByID", ctx, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)

	err := uc.UpdateStatus(ctx, 1, 10, AdminUpdateOrderStatusInput{Status: "PENDING"})
	require.NoError(t, err)

	repos.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateOrderStatus_TerminalGuards(t *testing.T) {
	uc, repos := newAdminOrderUC()
	ctx := context.Background()

	repos.orders.On("FindByID", ctx, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusCanceled}, nil)
	repos.orders.On("FindByID", ctx, int64(11)).Return(model.Order{ID: 11, Status: model.OrderStatusShipped}, nil)

	err := uc.UpdateStatus(ctx, 1, 10, AdminUpdateOrderStatusInput{Status: "PAID"})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	err = uc.UpdateStatus(ctx, 1, 11, AdminUpdateOrderStatusInput{Status: "PAID"})
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// キャンセルは引当を解放して在庫を戻す
func TestAdminUpdateOrderStatus_CancelReleasesReservations(t *testing.T) {
	uc, repos := newAdminOrderUC()
	ctx := context.Background()

	repos.orders.On("FindByID", ctx, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)
	repos.reservations.On("ListByOrderID", ctx, int64(10)).Return([]model.StockReservation{
		{ID: "r1", OrderID: 10, ProductID: 1, Quantity: 2, Status: model.ReservationStatusActive},
		{ID: "r2", OrderID: 10, ProductID: 2, Quantity: 1, Status: model.ReservationStatusFulfilled},
	}, nil)

	//activeな引当だけ解放される
	repos.inventory.On("ReleaseReserved", ctx, int64(1), int64(2)).Return(nil)
	repos.reservations.On("UpdateStatus", ctx, "r1", model.ReservationStatusCancelled).Return(nil)
	repos.orders.On("UpdateStatus", ctx, int64(10), model.OrderStatusCanceled).Return(nil)
	repos.auditLogs.On("Create", ctx, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateOrderStatus && l.ResourceID == 10
	})).Return(nil)

	err := uc.UpdateStatus(ctx, 1, 10, AdminUpdateOrderStatusInput{Status: "CANCELED"})
	require.NoError(t, err)

	repos.inventory.AssertNumberOfCalls(t, "ReleaseReserved", 1)
	repos.inventory.AssertNotCalled(t, "ReleaseReserved", ctx, int64(2), int64(1))
}

// 出荷は引当を確定して実在庫から引く
func TestAdminUpdateOrderStatus_ShipCommitsReservations(t *testing.T) {
	uc, repos := newAdminOrderUC()
	ctx := context.Background()

	repos.orders.On("FindByID", ctx, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPaid}, nil)
	repos.reservations.On("ListByOrderID", ctx, int64(10)).Return([]model.StockReservation{
		{ID: "r1", OrderID: 10, ProductID: 1, Quantity: 2, Status: model.ReservationStatusActive},
	}, nil)

	repos.inventory.On("CommitReserved", ctx, int64(1), int64(2)).Return(nil)
	repos.reservations.On("UpdateStatus", ctx, "r1", model.ReservationStatusFulfilled).Return(nil)
	repos.orders.On("UpdateStatus", ctx, int64(10), model.OrderStatusShipped).Return(nil)
	repos.auditLogs.On("Create", ctx, mock.Anything).Return(nil)

	err := uc.UpdateStatus(ctx, 1, 10, AdminUpdateOrderStatusInput{Status: "SHIPPED"})
	require.NoError(t, err)

	repos.inventory.AssertNumberOfCalls(t, "CommitReserved", 1)
}

// 監査ログが書けなければステータス更新ごと失敗する（同一Tx）
func TestAdminUpdateOrderStatus_AuditFailureFailsTx(t *testing.T) {
	uc, repos := newAdminOrderUC()
	ctx := context.Background()

	repos.orders.On("FindByID", ctx, int64(10)).Return(model.Order{ID: 10, Status: model.OrderStatusPending}, nil)
	repos.reservations.On("ListByOrderID", ctx, int64(10)).Return([]model.StockReservation{}, nil)
	repos.orders.On("UpdateStatus", ctx, int64(10), model.OrderStatusPaid).Return(nil)
	repos.auditLogs.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

	err := uc.UpdateStatus(ctx, 1, 10, AdminUpdateOrderStatusInput{Status: "PAID"})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestAdminOrderList_Validation(t *testing.T) {
	uc, _ := newAdminOrderUC()

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 20})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 1000})
	he, ok = AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}
