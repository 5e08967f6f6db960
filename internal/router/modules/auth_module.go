package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kyystore-api/internal/container"
	handlers "github.com/oksasatya/kyystore-api/internal/interface/http"
	"github.com/oksasatya/kyystore-api/internal/interface/middleware"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

// AuthModule wires registration and login.
// Public: POST /api/register, POST /api/login
// Protected: GET /api/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
