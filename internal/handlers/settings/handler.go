package settings

import (
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/settings/model/dto"
	"aperture/internal/domains/settings/service"
	"aperture/shared/constant"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Settings, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/portfolio-settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPortfolioSettings)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Put("/", handler.UpdatePortfolioSettings)
			adminGroup.Post("/equipment", handler.AddEquipment)
			adminGroup.Delete("/equipment/{id}", handler.DeleteEquipment)
		})
	})

	router.Route("/seo-settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSEOSettings)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Put("/", handler.UpdateSEOSettings)
		})
	})
}

// GetPortfolioSettings retrieves the portfolio settings document.
// @Summary Get portfolio settings
// @Description Retrieve the portfolio settings, or the default document when none have been saved.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.PortfolioSettingsResponse "Portfolio settings"
// @Failure 500 {object} response.Error
// @Router /api/portfolio-settings [get]
func (handler *Handler) GetPortfolioSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPortfolioSettings")
	defer scope.End()

	settings, err := handler.service.GetPortfolio(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get portfolio settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portfolio settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdatePortfolioSettings replaces the portfolio settings document.
// @Summary Update portfolio settings
// @Description Replace the portfolio settings wholesale and return the saved document.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdatePortfolioSettingsRequest true "Update Portfolio Settings Request"
// @Success 200 {object} dto.PortfolioSettingsResponse "Saved portfolio settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio-settings [put]
// @Security BearerAuth
func (handler *Handler) UpdatePortfolioSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePortfolioSettings")
	defer scope.End()

	req := dto.UpdatePortfolioSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdatePortfolio(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update portfolio settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Portfolio settings updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// AddEquipment adds an equipment item to the portfolio settings.
// @Summary Add an equipment item
// @Description Add an equipment item and return the updated settings document.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.AddEquipmentRequest true "Add Equipment Request"
// @Success 200 {object} dto.PortfolioSettingsResponse "Updated portfolio settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio-settings/equipment [post]
// @Security BearerAuth
func (handler *Handler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddEquipment")
	defer scope.End()

	req := dto.AddEquipmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddEquipment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add equipment item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment item added successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteEquipment removes an equipment item from the portfolio settings.
// @Summary Delete an equipment item
// @Description Remove an equipment item by its ID and return the updated settings document.
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path string true "Equipment Item ID"
// @Success 200 {object} dto.PortfolioSettingsResponse "Updated portfolio settings"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/portfolio-settings/equipment/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.DeleteEquipment(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete equipment item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment item deleted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetSEOSettings retrieves the SEO settings document.
// @Summary Get SEO settings
// @Description Retrieve the SEO settings, or the default document when none have been saved.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.SEOSettingsResponse "SEO settings"
// @Failure 500 {object} response.Error
// @Router /api/seo-settings [get]
func (handler *Handler) GetSEOSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSEOSettings")
	defer scope.End()

	settings, err := handler.service.GetSEO(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seo settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("SEO settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSEOSettings replaces the SEO settings document.
// @Summary Update SEO settings
// @Description Replace the SEO settings wholesale and return the saved document.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSEOSettingsRequest true "Update SEO Settings Request"
// @Success 200 {object} dto.SEOSettingsResponse "Saved SEO settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/seo-settings [put]
// @Security BearerAuth
func (handler *Handler) UpdateSEOSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSEOSettings")
	defer scope.End()

	req := dto.UpdateSEOSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateSEO(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update seo settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("SEO settings updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
