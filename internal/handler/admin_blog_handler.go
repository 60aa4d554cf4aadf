package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
)

// /admin/blog（下書き含む記事管理）
type AdminBlogHandler struct {
	uc *usecase.AdminBlogUsecase
}

// DI
func NewAdminBlogHandler(uc *usecase.AdminBlogUsecase) *AdminBlogHandler {
	return &AdminBlogHandler{uc: uc}
}

func (h *AdminBlogHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/blog", h.list)
	admin.POST("/blog", h.create)
	admin.PUT("/blog/:id", h.update)
	admin.DELETE("/blog/:id", h.delete)
}

type blogPostRequest struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featured_image"`
	Tags          []string `json:"tags"`
	ReadTime      int      `json:"read_time"`
	Featured      bool     `json:"featured"`
	Status        string   `json:"status"`
}

func toAdminBlogPostInput(req blogPostRequest) usecase.AdminBlogPostInput {
	return usecase.AdminBlogPostInput{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Author:        req.Author,
		FeaturedImage: req.FeaturedImage,
		Tags:          req.Tags,
		ReadTime:      req.ReadTime,
		Featured:      req.Featured,
		Status:        req.Status,
	}
}

func (h *AdminBlogHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.List(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminBlogHandler) create(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if _, err := h.uc.Create(c.Request().Context(), adminID, toAdminBlogPostInput(req)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "created"})
}

func (h *AdminBlogHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Update(c.Request().Context(), adminID, id, toAdminBlogPostInput(req)); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminBlogHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Delete(c.Request().Context(), adminID, id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
