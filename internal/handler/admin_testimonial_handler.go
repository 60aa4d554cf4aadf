package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// /admin/testimonials（お客様の声の承認管理）
type AdminTestimonialHandler struct {
	uc *usecase.AdminTestimonialUsecase
}

// DI
func NewAdminTestimonialHandler(uc *usecase.AdminTestimonialUsecase) *AdminTestimonialHandler {
	return &AdminTestimonialHandler{uc: uc}
}

func (h *AdminTestimonialHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/testimonials", h.list)
	admin.PUT("/testimonials/:id/approval", h.setApproval)
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

func (h *AdminTestimonialHandler) list(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

func (h *AdminTestimonialHandler) setApproval(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req approvalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.SetApproved(c.Request().Context(), adminID, id, req.Approved); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}
