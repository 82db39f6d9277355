package v1

import (
	"net/http"
	"time"

	"go-jobswipe-backend/config"
	"go-jobswipe-backend/internal/delivery/http/middleware"
	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/storage"
	"go-jobswipe-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	ProfileUC   domain.ProfileUsecase
	JobUC       domain.JobUsecase
	SwipeUC     domain.SwipeUsecase
	MatchUC     domain.MatchUsecase
	ProfileRepo domain.ProfileRepository
	Tokens      *token.Manager
	Images      *storage.ImageStore
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:global:",
	}))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes; tighter limit on credential endpoints
	public := v1.Group("")
	public.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:auth:",
	}))
	NewAuthHandler(public, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.ProfileRepo))
	{
		NewMeHandler(protected, deps.ProfileUC, deps.Images)
		NewJobHandler(protected, deps.JobUC, deps.SwipeUC)
		NewMatchHandler(protected, deps.MatchUC)
	}

	return r
}
