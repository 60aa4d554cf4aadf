package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// トップページ向け静的コンテンツの公開API
type ContentHandler struct {
	uc *usecase.ContentUsecase
}

// DI
func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/trust-indicators", h.trustIndicators)
	e.GET("/warranties", h.warranties)
}

func (h *ContentHandler) trustIndicators(c echo.Context) error {
	rows, err := h.uc.TrustIndicators(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *ContentHandler) warranties(c echo.Context) error {
	rows, err := h.uc.Warranties(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}
