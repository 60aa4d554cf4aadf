package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/catalog"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	auditRepo     repo.AuditLogRepository
}

// DI
func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	auditRepo repo.AuditLogRepository,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

type AdminProductInput struct {
	Name          string
	Description   string
	Price         int64
	OriginalPrice *int64
	PreOrderPrice *int64
	DepositAmount *int64
	Features      []model.Feature
	Image         string
	Category      string
	Status        string
	DisplayOrder  *int64
}

func validateAdminProductInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	switch in.Status {
	case string(model.ProductStatusActive), string(model.ProductStatusInactive):
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	return nil
}

// 管理画面の一覧は在庫と発注フラグ付きで返す
func (u *AdminProductUsecase) List(ctx context.Context) ([]model.ProductWithInventory, error) {
	products, err := u.productRepo.List(ctx, repo.ProductListQuery{})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	invByProduct, err := u.inventoryRepo.ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]model.ProductWithInventory, 0, len(products))
	for _, p := range products {
		items = append(items, catalog.Annotate(p, invByProduct[p.ID]))
	}
	return items, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, adminUserID int64, in AdminProductInput) (int64, error) {
	if adminUserID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateAdminProductInput(in); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(in.Name)
	p, err := u.productRepo.Create(ctx, model.Product{
		Name:          name,
		Slug:          catalog.Slugify(name),
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		PreOrderPrice: in.PreOrderPrice,
		DepositAmount: in.DepositAmount,
		Features:      in.Features,
		Image:         in.Image,
		Category:      in.Category,
		Status:        model.ProductStatus(in.Status),
		DisplayOrder:  in.DisplayOrder,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpdateProduct, p.ID, "{}", fmt.Sprintf(`{"name":%q}`, p.Name))
	return p.ID, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, adminUserID int64, productID int64, in AdminProductInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateAdminProductInput(in); err != nil {
		return err
	}

	name := strings.TrimSpace(in.Name)
	err := u.productRepo.Update(ctx, model.Product{
		ID:            productID,
		Name:          name,
		Slug:          catalog.Slugify(name),
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		PreOrderPrice: in.PreOrderPrice,
		DepositAmount: in.DepositAmount,
		Features:      in.Features,
		Image:         in.Image,
		Category:      in.Category,
		Status:        model.ProductStatus(in.Status),
		DisplayOrder:  in.DisplayOrder,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, model.AuditActionUpdateProduct, productID, "{}", fmt.Sprintf(`{"name":%q}`, name))
	return nil
}

func (u *AdminProductUsecase) Delete(ctx context.Context, adminUserID int64, productID int64) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 在庫の現在値を更新して、調整履歴と監査ログを残す。
func (u *AdminProductUsecase) UpdateInventory(ctx context.Context, adminUserID int64, productID int64, newStock int64, reason string) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if newStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if strings.TrimSpace(reason) == "" {
		return NewHTTPError(http.StatusBadRequest, "reason required")
	}

	//変更前の在庫（before）
	inv, err := u.inventoryRepo.FindByProductID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	beforeJSON := fmt.Sprintf(`{"stock":%d}`, inv.StockQuantity)
	afterJSON := fmt.Sprintf(`{"stock":%d}`, newStock)

	//在庫の現在値を更新
	if err := u.inventoryRepo.SetStock(ctx, productID, newStock); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//履歴を作成（差分）
	adj := model.InventoryAdjustment{
		ProductID:   productID,
		AdminUserID: adminUserID,
		Delta:       newStock - inv.StockQuantity,
		Reason:      strings.TrimSpace(reason),
	}
	if err := u.inventoryRepo.CreateAdjustment(ctx, adj); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログを作成（在庫更新）
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func (u *AdminProductUsecase) writeAudit(ctx context.Context, adminUserID int64, action model.AuditAction, resourceID int64, before string, after string) {
	//監査ログ失敗で操作自体は失敗させない
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       action,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   resourceID,
		BeforeJSON:   before,
		AfterJSON:    after,
		CreatedAt:    time.Now(),
	})
}
