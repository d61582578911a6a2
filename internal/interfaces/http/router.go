package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appcatalog "github.com/jhoicas/belleza-catalog-api/internal/application/catalog"
	"github.com/jhoicas/belleza-catalog-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *appcatalog.UseCase
	JWTSecret string
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo: lecturas públicas, escrituras para admin/manager (Bearer Token)
	catalog := api.Group("/catalog")
	h := NewCatalogHandler(deps.CatalogUC, deps.Log)
	catalog.Get("/services", h.ListServices)
	catalog.Get("/products", h.ListProducts)

	auth := AuthMiddleware(deps.JWTSecret)
	canWrite := RequireRole(jwt.RoleAdmin, jwt.RoleManager)

	catalog.Post("/services", auth, canWrite, h.CreateService)
	catalog.Put("/services/:id", auth, canWrite, h.UpdateService)
	catalog.Delete("/services/:id", auth, canWrite, h.DeleteService)

	catalog.Post("/products", auth, canWrite, h.CreateProduct)
	catalog.Put("/products/:id", auth, canWrite, h.UpdateProduct)
	catalog.Delete("/products/:id", auth, canWrite, h.DeleteProduct)
}
