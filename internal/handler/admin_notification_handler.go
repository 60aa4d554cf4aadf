package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// /admin/notifications（在庫・注文アラートの宛先設定）
type AdminNotificationHandler struct {
	uc *usecase.AdminNotificationUsecase
}

// DI
func NewAdminNotificationHandler(uc *usecase.AdminNotificationUsecase) *AdminNotificationHandler {
	return &AdminNotificationHandler{uc: uc}
}

func (h *AdminNotificationHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/notifications", h.list)
	admin.PUT("/notifications", h.upsert)
}

type notificationRequest struct {
	Key     string `json:"key"`
	Email   string `json:"email"`
	Enabled bool   `json:"enabled"`
}

func (h *AdminNotificationHandler) list(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *AdminNotificationHandler) upsert(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	s, err := h.uc.Upsert(c.Request().Context(), adminID, usecase.UpsertNotificationInput{
		Key:     req.Key,
		Email:   req.Email,
		Enabled: req.Enabled,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, s)
}
