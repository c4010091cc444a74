package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Post("/{id}/adjust", handlers.NewPostAdjustHandler(svcs).Execute)
			r.Get("/{id}/audit", handlers.NewGetAuditHandler(svcs).Execute)
		})
		r.Get("/categories", handlers.NewGetCategoriesHandler(svcs).Execute)
	})
}
