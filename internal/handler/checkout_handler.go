package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/middleware"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// POST /checkout（ゲスト購入）
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.placeOrder, middleware.CartSession())
}

type checkoutRequest struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	ShippingLine1  string `json:"shipping_line1"`
	ShippingLine2  string `json:"shipping_line2"`
	ShippingCity   string `json:"shipping_city"`
	ShippingState  string `json:"shipping_state"`
	ShippingZip    string `json:"shipping_zip"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h *CheckoutHandler) placeOrder(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//ヘッダのIdempotency-Keyを優先する
	key := c.Request().Header.Get("Idempotency-Key")
	if key == "" {
		key = req.IdempotencyKey
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), sessionID, usecase.PlaceOrderInput{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		ShippingLine1:  req.ShippingLine1,
		ShippingLine2:  req.ShippingLine2,
		ShippingCity:   req.ShippingCity,
		ShippingState:  req.ShippingState,
		ShippingZip:    req.ShippingZip,
		IdempotencyKey: key,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
