package router

import (
	"github.com/oksasatya/kyystore-api/internal/application"
	"github.com/oksasatya/kyystore-api/internal/container"
	handlers "github.com/oksasatya/kyystore-api/internal/interface/http"
	"github.com/oksasatya/kyystore-api/internal/router/modules"
)

type moduleDeps struct {
	Users   *application.Service
	Catalog *application.CatalogService
}

func buildDeps() moduleDeps {
	users := application.NewService(
		container.GetUserRepo(),
		container.GetJWT(),
		container.GetEnvelope(),
		container.GetPublisher(),
		container.GetLogger(),
	)
	return moduleDeps{
		Users:   users,
		Catalog: application.NewCatalogService(container.GetProductRepo()),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	deps := buildDeps()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	r.Engine.GET("/", handlers.Health(cfg.ServiceName))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(deps.Users, logger), jwt))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(deps.Catalog, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(deps.Users, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
