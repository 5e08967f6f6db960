package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	handlers "github.com/oksasatya/kyystore-api/internal/interface/http"
	"github.com/oksasatya/kyystore-api/internal/interface/middleware"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

// AdminModule exposes decrypted customer data to the admin role only.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(m.JWT), middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/users", m.Handler.ListCustomers)
	}
}
