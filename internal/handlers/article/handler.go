package article

import (
	"net/http"

	"aperture/infras/jwt"
	"aperture/infras/otel"
	"aperture/internal/domains/article/model"
	"aperture/internal/domains/article/model/dto"
	"aperture/internal/domains/article/service"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamIncludeDrafts = "include_drafts"

type Handler struct {
	service    service.Article
	auth       middleware.Auth
	jwtService jwt.JWT
	otel       otel.Otel
}

func New(service service.Article, auth middleware.Auth, jwtService jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		auth:       auth,
		jwtService: jwtService,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/articles", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArticles)
		routerGroup.Get("/slug/{slug}", handler.GetArticleBySlug)
		routerGroup.Get("/tags/all", handler.GetTags)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Post("/", handler.CreateArticle)
			adminGroup.Get("/{id}", handler.GetArticleByID)
			adminGroup.Put("/{id}", handler.UpdateArticle)
			adminGroup.Delete("/{id}", handler.DeleteArticle)
		})
	})
}

// CreateArticle handles the creation of a new article.
// @Summary Create a new article
// @Description Create an article. The slug is derived from the title when omitted.
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "Create Article Request"
// @Success 201 {object} dto.ArticleResponse "Article created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles [post]
// @Security BearerAuth
func (handler *Handler) CreateArticle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateArticle")
	defer scope.End()

	req := dto.CreateArticleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create article")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Article created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetArticles retrieves articles with optional search and tag filters.
// @Summary Get articles
// @Description Retrieve published articles. Drafts are included only for an authenticated admin requesting include_drafts=true.
// @Tags Article
// @Accept json
// @Produce json
// @Param limit query int false "Page size"
// @Param search query string false "Search in title, excerpt and content"
// @Param tag query string false "Filter by tag"
// @Param include_drafts query bool false "Include unpublished articles (admin only)"
// @Success 200 {object} dto.GetArticlesResponse "List of articles"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles [get]
func (handler *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	includeDrafts := r.URL.Query().Get(requestParamIncludeDrafts) == "true"
	if includeDrafts {
		if err := handler.authorizeDrafts(r); err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Msg("unauthorized request for draft articles")

			response.WithError(w, err)

			return
		}
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if !includeDrafts {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_title",
					Field:    model.FieldTitle,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_excerpt",
					Field:    model.FieldExcerpt,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_content",
					Field:    model.FieldContent,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	if tag := r.URL.Query().Get(constant.RequestParamTag); tag != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTags,
			Operator: gDto.FilterOperatorContains,
			Value:    tag,
			Table:    model.TableName,
		})
	}

	articles, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get articles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Articles retrieved successfully")

	response.WithJSON(w, http.StatusOK, articles)
}

// authorizeDrafts requires a valid admin access token on the request.
func (handler *Handler) authorizeDrafts(r *http.Request) error {
	authHeader := r.Header.Get(constant.RequestHeaderAuthorization)
	if authHeader == "" {
		return failure.Unauthorized("Missing authorization header")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return failure.Unauthorized("Invalid authorization header format")
	}

	if _, err := handler.jwtService.ValidateToken(tokenString, jwt.AccessToken); err != nil {
		return failure.Unauthorized("Invalid token")
	}

	return nil
}

// GetArticleBySlug retrieves a published article by its slug.
// @Summary Get an article by slug
// @Description Retrieve a published article, including its rendered HTML content.
// @Tags Article
// @Accept json
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.ArticleResponse "Article details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles/slug/{slug} [get]
func (handler *Handler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticleBySlug")
	defer scope.End()

	slugValue := chi.URLParam(r, constant.RequestParamSlug)

	article, err := handler.service.GetBySlug(ctx, slugValue)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get article by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article retrieved successfully")

	response.WithJSON(w, http.StatusOK, article)
}

// GetArticleByID retrieves an article by its ID, drafts included.
// @Summary Get an article by ID
// @Description Retrieve an article for editing, published or not.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse "Article details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArticleByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	article, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get article by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article retrieved successfully")

	response.WithJSON(w, http.StatusOK, article)
}

// GetTags retrieves the tags of published articles.
// @Summary Get article tags
// @Description Retrieve the tags used by published articles, with counts.
// @Tags Article
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetTagsResponse "Tags with counts"
// @Failure 500 {object} response.Error
// @Router /api/articles/tags/all [get]
func (handler *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTags")
	defer scope.End()

	tags, err := handler.service.Tags(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get article tags")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article tags retrieved successfully")

	response.WithJSON(w, http.StatusOK, tags)
}

// UpdateArticle updates an existing article by its ID.
// @Summary Update an article by ID
// @Description Update an article. The slug is never re-derived from the title.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param request body dto.UpdateArticleRequest true "Update Article Request"
// @Success 200 {object} response.Message "Article updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateArticleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update article")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article updated successfully")

	response.WithMessage(w, http.StatusOK, "Article updated successfully")
}

// DeleteArticle deletes an article by its ID.
// @Summary Delete an article by ID
// @Description Delete an article using its unique identifier.
// @Tags Article
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} response.Message "Article deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/articles/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteArticle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete article")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Article deleted successfully")

	response.WithMessage(w, http.StatusOK, "Article deleted successfully")
}
