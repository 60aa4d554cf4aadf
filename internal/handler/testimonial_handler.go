package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// /testimonials の公開API
type TestimonialHandler struct {
	uc *usecase.TestimonialUsecase
}

// DI
func NewTestimonialHandler(uc *usecase.TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{uc: uc}
}

func (h *TestimonialHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/testimonials", h.list)
	e.POST("/testimonials", h.submit)
}

type submitTestimonialRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *TestimonialHandler) list(c echo.Context) error {
	rows, err := h.uc.ListApproved(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

// 投稿は未承認で受け付ける（承認されるまで一覧には出ない）
func (h *TestimonialHandler) submit(c echo.Context) error {
	var req submitTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	t, err := h.uc.Submit(c.Request().Context(), usecase.SubmitTestimonialInput{
		Name:     req.Name,
		Location: req.Location,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, t)
}
