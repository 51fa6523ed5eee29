package recipe

import (
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/recipe/model/dto"
	"aperture/internal/domains/recipe/service"
	"aperture/shared/constant"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Recipe
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Recipe, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/recipes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRecipes)
		routerGroup.Get("/{id}", handler.GetRecipeByID)
		routerGroup.Post("/style", handler.DeriveStyle)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Post("/", handler.CreateRecipe)
			adminGroup.Delete("/{id}", handler.DeleteRecipe)
		})
	})
}

// CreateRecipe handles the creation of a new film simulation recipe.
// @Summary Create a new recipe
// @Description Save a film simulation recipe.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param request body dto.CreateRecipeRequest true "Create Recipe Request"
// @Success 201 {object} dto.RecipeResponse "Recipe created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/recipes [post]
// @Security BearerAuth
func (handler *Handler) CreateRecipe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRecipe")
	defer scope.End()

	req := dto.CreateRecipeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create recipe")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Recipe created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRecipes retrieves all saved recipes.
// @Summary Get all recipes
// @Description Retrieve all saved film simulation recipes, newest first.
// @Tags Recipe
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRecipesResponse "List of recipes"
// @Failure 500 {object} response.Error
// @Router /api/recipes [get]
func (handler *Handler) GetRecipes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecipes")
	defer scope.End()

	recipes, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recipes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recipes retrieved successfully")

	response.WithJSON(w, http.StatusOK, recipes)
}

// GetRecipeByID retrieves a recipe by its ID.
// @Summary Get a recipe by ID
// @Description Retrieve a saved film simulation recipe.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse "Recipe details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/recipes/{id} [get]
func (handler *Handler) GetRecipeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecipeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	recipe, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recipe by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recipe retrieved successfully")

	response.WithJSON(w, http.StatusOK, recipe)
}

// DeriveStyle derives the preview style for a set of recipe settings.
// @Summary Derive a preview style
// @Description Derive the CSS filter preview for recipe settings. Nothing is persisted.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param request body dto.DeriveStyleRequest true "Derive Style Request"
// @Success 200 {object} dto.StyleResponse "Derived style"
// @Failure 400 {object} response.Error
// @Router /api/recipes/style [post]
func (handler *Handler) DeriveStyle(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeriveStyle")
	defer scope.End()

	req := dto.DeriveStyleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res := handler.service.DeriveStyle(req)

	scope.AddEvent("Style derived successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRecipe deletes a recipe by its ID.
// @Summary Delete a recipe by ID
// @Description Delete a saved recipe using its unique identifier.
// @Tags Recipe
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} response.Message "Recipe deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/recipes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecipe")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete recipe")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recipe deleted successfully")

	response.WithMessage(w, http.StatusOK, "Recipe deleted successfully")
}
