package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/JamilKassis/warrior-leap-next-sub001/internal/config"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/domain/model"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/handler"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/cartstore"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/db"
	infraRepo "github.com/JamilKassis/warrior-leap-next-sub001/internal/infra/repository"
	repo "github.com/JamilKassis/warrior-leap-next-sub001/internal/repository"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/server"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/usecase"
	"github.com/JamilKassis/warrior-leap-next-sub001/internal/validator"
)

// カートの放置セッションを破棄するまでの時間
const cartSessionTTL = 24 * time.Hour

// refresh cookieの寿命
const refreshTTL = 30 * 24 * time.Hour

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.GoEnv)
	defer func() { _ = logger.Sync() }()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.ProductImage{},
		&model.Inventory{},
		&model.InventoryAdjustment{},
		&model.StockReservation{},
		&model.Order{},
		&model.OrderItem{},
		&model.BlogPost{},
		&model.Testimonial{},
		&model.TrustIndicator{},
		&model.Warranty{},
		&model.NotificationSetting{},
		&model.AuditLog{},
		&model.User{},
		&model.RefreshToken{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	imageRepo := infraRepo.NewProductImageGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	blogRepo := infraRepo.NewBlogGormRepository(gormDB)
	testimonialRepo := infraRepo.NewTestimonialGormRepository(gormDB)
	trustRepo := infraRepo.NewTrustIndicatorGormRepository(gormDB)
	warrantyRepo := infraRepo.NewWarrantyGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationSettingGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッションカート（メモリ置き）
	cartStore := cartstore.NewMemoryStore(cartSessionTTL)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, inventoryRepo, imageRepo)
	cartUC := usecase.NewCartUsecase(cartStore, productRepo, inventoryRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cartStore)
	blogUC := usecase.NewBlogUsecase(blogRepo)
	testimonialUC := usecase.NewTestimonialUsecase(testimonialRepo, validator.NewTestimonialValidator())
	contentUC := usecase.NewContentUsecase(trustRepo, warrantyRepo)
	seoUC := usecase.NewSEOUsecase(productRepo, inventoryRepo, blogRepo, cfg.SiteBaseURL)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, validator.NewAuthValidator())
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, inventoryRepo, auditRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)
	adminBlogUC := usecase.NewAdminBlogUsecase(blogRepo, auditRepo)
	adminNotifUC := usecase.NewAdminNotificationUsecase(notificationRepo, auditRepo)
	adminTestimonialUC := usecase.NewAdminTestimonialUsecase(testimonialRepo, auditRepo)

	//管理ユーザーの初期投入
	if err := seedAdmin(userRepo, cfg, logger); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	//Handler生成
	cookieSecure := cfg.GoEnv != "dev"
	handlers := server.Handlers{
		Product:          handler.NewProductHandler(catalogUC),
		Cart:             handler.NewCartHandler(cartUC),
		Checkout:         handler.NewCheckoutHandler(checkoutUC),
		Blog:             handler.NewBlogHandler(blogUC),
		Testimonial:      handler.NewTestimonialHandler(testimonialUC),
		Content:          handler.NewContentHandler(contentUC),
		SEO:              handler.NewSEOHandler(seoUC),
		Auth:             handler.NewAuthHandler(authUC, refreshTTL, cookieSecure),
		AdminProduct:     handler.NewAdminProductHandler(adminProductUC),
		AdminOrder:       handler.NewAdminOrderHandler(adminOrderUC),
		AdminBlog:        handler.NewAdminBlogHandler(adminBlogUC),
		AdminNotif:       handler.NewAdminNotificationHandler(adminNotifUC),
		AdminTestimonial: handler.NewAdminTestimonialHandler(adminTestimonialUC),
	}

	//Server起動
	e := server.New(cfg, logger)
	server.RegisterRoutes(e, cfg, userRepo, handlers)

	logger.Info("server start", zap.String("port", cfg.Port))
	if err := server.Start(e, cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// 環境別のzapロガー
func newLogger(env string) *zap.Logger {
	if env == "dev" {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}

	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l
}

// ADMIN_EMAIL / ADMIN_PASSWORD があれば管理ユーザーを作る（既にあれば何もしない）
func seedAdmin(users repo.UserRepository, cfg config.Config, logger *zap.Logger) error {
	email := cfg.AdminEmail
	password := cfg.AdminPassword
	if email == "" || password == "" {
		logger.Info("admin seed skipped")
		return nil
	}

	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		TokenVersion: 0,
		IsActive:     true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("admin seeded", zap.String("email", email))
	return nil
}
