package router

import (
	"aperture/internal/handlers/article"
	"aperture/internal/handlers/auth"
	"aperture/internal/handlers/gallery"
	"aperture/internal/handlers/photo"
	"aperture/internal/handlers/recipe"
	"aperture/internal/handlers/seed"
	"aperture/internal/handlers/settings"
	"aperture/internal/handlers/status"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Photo    photo.Handler
	Gallery  gallery.Handler
	Article  article.Handler
	Recipe   recipe.Handler
	Settings settings.Handler
	Status   status.Handler
	Seed     seed.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Photo.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Article.Router(routerGroup)
		r.DomainHandlers.Recipe.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Status.Router(routerGroup)
		r.DomainHandlers.Seed.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
