package server

import (
	"github.com/labstack/echo/v4"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/config"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/handler"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/middleware"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Product          *handler.ProductHandler
	Cart             *handler.CartHandler
	Checkout         *handler.CheckoutHandler
	Blog             *handler.BlogHandler
	Testimonial      *handler.TestimonialHandler
	Content          *handler.ContentHandler
	SEO              *handler.SEOHandler
	Auth             *handler.AuthHandler
	AdminProduct     *handler.AdminProductHandler
	AdminOrder       *handler.AdminOrderHandler
	AdminBlog        *handler.AdminBlogHandler
	AdminNotif       *handler.AdminNotificationHandler
	AdminTestimonial *handler.AdminTestimonialHandler
}

// RegisterRoutes は公開・認証・管理の全ルートを登録する。
func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repo.UserRepository, h Handlers) {
	//公開API
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Blog.RegisterRoutes(e)
	h.Testimonial.RegisterRoutes(e)
	h.Content.RegisterRoutes(e)
	h.SEO.RegisterRoutes(e)

	//認証
	h.Auth.RegisterRoutes(e, cfg, userRepo)

	//管理API（JWT＋token_version＋ADMINロール）
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.TokenVersionGuard(userRepo))
	admin.Use(middleware.AdminRoleGuard())

	h.AdminProduct.RegisterRoutes(admin)
	h.AdminOrder.RegisterRoutes(admin)
	h.AdminBlog.RegisterRoutes(admin)
	h.AdminNotif.RegisterRoutes(admin)
	h.AdminTestimonial.RegisterRoutes(admin)
	h.Auth.RegisterAdminRoutes(admin)
}
