package routes

import (
	"github.com/LegendsFan/legendsfan_backend/internal/config"
	"github.com/LegendsFan/legendsfan_backend/internal/controllers"
	"github.com/LegendsFan/legendsfan_backend/internal/middlewares"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
	"github.com/LegendsFan/legendsfan_backend/internal/services"
	"github.com/LegendsFan/legendsfan_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	heroRepo := repository.NewHeroRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// サービスを作成
	tokenManager := utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := services.NewAuthService(userRepo, tokenManager, cfg)
	heroService := services.NewHeroService(heroRepo, favoriteRepo, cfg)
	favoriteService := services.NewFavoriteService(favoriteRepo)
	geminiService := services.NewGeminiService(cfg)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	heroController := controllers.NewHeroController(heroService, cfg.Auth.GuestUserID)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	geminiController := controllers.NewGeminiController(geminiService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(authService)

	// ヘルスチェックルート（認証不要）
	r.GET("/health", healthController.Check)

	// 認証ルート
	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.POST("/authgoogle", authController.GoogleLogin)
	r.GET("/profile", authMiddleware, authController.Profile)
	r.PUT("/profile", authMiddleware, authController.UpdateProfile)

	// ヒーロールート
	r.GET("/hero", heroController.List)
	r.GET("/hero/:id", heroController.GetByID)
	r.POST("/hero", optionalAuthMiddleware, heroController.Add)
	r.PUT("/hero/:id", heroController.Update)
	r.DELETE("/hero/:id", heroController.Delete)
	r.GET("/role", heroController.ListRoles)
	r.GET("/specially", heroController.ListSpecialties)

	// お気に入りルート
	r.GET("/favorite", favoriteController.List)
	r.PUT("/favorite/:id", favoriteController.Update)
	r.DELETE("/favorite/:id", favoriteController.Delete)

	// AIコンテンツ生成ルート
	r.POST("/gemini/generate", authMiddleware, geminiController.Generate)

	return r
}
