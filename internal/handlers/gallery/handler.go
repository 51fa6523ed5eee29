package gallery

import (
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/gallery/model"
	"aperture/internal/domains/gallery/model/dto"
	"aperture/internal/domains/gallery/service"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Gallery
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Gallery, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGalleryPhotos)
		routerGroup.Get("/categories/all", handler.GetCategories)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Post("/", handler.CreateGalleryPhoto)
			adminGroup.Delete("/{id}", handler.DeleteGalleryPhoto)
			adminGroup.Post("/upload", handler.UploadImage)
		})
	})
}

// CreateGalleryPhoto handles the creation of a new gallery photo.
// @Summary Create a new gallery photo
// @Description Add a photo to the gallery under a category.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryPhotoRequest true "Create Gallery Photo Request"
// @Success 201 {object} dto.GalleryPhotoResponse "Gallery photo created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery [post]
// @Security BearerAuth
func (handler *Handler) CreateGalleryPhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGalleryPhoto")
	defer scope.End()

	req := dto.CreateGalleryPhotoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery photo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Gallery photo created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetGalleryPhotos retrieves gallery photos with optional category filter.
// @Summary Get gallery photos
// @Description Retrieve gallery photos, optionally filtered by category.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param limit query int false "Page size"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.GetGalleryPhotosResponse "List of gallery photos"
// @Failure 500 {object} response.Error
// @Router /api/gallery [get]
func (handler *Handler) GetGalleryPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGalleryPhotos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(constant.RequestParamCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	photos, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery photos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery photos retrieved successfully")

	response.WithJSON(w, http.StatusOK, photos)
}

// GetCategories retrieves the gallery categories currently in use.
// @Summary Get gallery categories
// @Description Retrieve categories that currently have photos, with counts.
// @Tags Gallery
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetCategoriesResponse "Categories with counts"
// @Failure 500 {object} response.Error
// @Router /api/gallery/categories/all [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.Categories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// DeleteGalleryPhoto deletes a gallery photo by its ID.
// @Summary Delete a gallery photo by ID
// @Description Delete a gallery photo and its stored image.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery Photo ID"
// @Success 200 {object} response.Message "Gallery photo deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGalleryPhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery photo deleted successfully")

	response.WithMessage(w, http.StatusOK, "Gallery photo deleted successfully")
}

// UploadImage handles gallery image upload to S3.
// @Summary Upload a gallery image
// @Description Upload an image file to S3 and return the URL.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gallery/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
