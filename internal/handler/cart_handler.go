package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/middleware"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// /cart のセッションカートAPI
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// カートのルートを登録（セッションcookieはミドルウェアで担保）
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart", middleware.CartSession())

	g.GET("", h.get)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:product_id", h.updateQuantity)
	g.DELETE("/items/:product_id", h.removeItem)
	g.DELETE("", h.clear)
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) get(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, h.uc.GetCart(sessionID))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	resp, err := h.uc.AddItem(c.Request().Context(), sessionID, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) updateQuantity(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, h.uc.UpdateQuantity(sessionID, productID, req.Quantity))
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	return c.JSON(http.StatusOK, h.uc.RemoveItem(sessionID, productID))
}

func (h *CartHandler) clear(c echo.Context) error {
	sessionID, ok := getCartSession(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, h.uc.Clear(sessionID))
}

// middleware.CartSession が c.Set した値を取り出す
func getCartSession(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxCartSessionKey)
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
