package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// sitemap.xml と構造化データ
type SEOHandler struct {
	uc *usecase.SEOUsecase
}

// DI
func NewSEOHandler(uc *usecase.SEOUsecase) *SEOHandler {
	return &SEOHandler{uc: uc}
}

func (h *SEOHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sitemap.xml", h.sitemap)
	e.GET("/products/:slug/jsonld", h.productJSONLD)
}

func (h *SEOHandler) sitemap(c echo.Context) error {
	body, err := h.uc.Sitemap(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *SEOHandler) productJSONLD(c echo.Context) error {
	ld, err := h.uc.ProductStructuredData(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ld)
}
