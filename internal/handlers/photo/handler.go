package photo

import (
	"net/http"

	"aperture/infras/otel"
	commentDto "aperture/internal/domains/comment/model/dto"
	commentService "aperture/internal/domains/comment/service"
	"aperture/internal/domains/photo/model/dto"
	"aperture/internal/domains/photo/service"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/validator"
	"aperture/transport/http/middleware"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service        service.Photo
	commentService commentService.Comment
	auth           middleware.Auth
	otel           otel.Otel
}

func New(service service.Photo, commentService commentService.Comment, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:        service,
		commentService: commentService,
		auth:           auth,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/photos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPhotos)
		routerGroup.Get("/{id}", handler.GetPhotoByID)
		routerGroup.Get("/{id}/comments", handler.GetComments)
		routerGroup.Post("/{id}/comments", handler.CreateComment)

		routerGroup.Group(func(adminGroup chi.Router) {
			adminGroup.Use(handler.auth.Auth)
			adminGroup.Post("/", handler.CreatePhoto)
			adminGroup.Put("/{id}", handler.UpdatePhoto)
			adminGroup.Delete("/{id}", handler.DeletePhoto)
			adminGroup.Post("/upload", handler.UploadImage)
		})
	})

	router.Get("/comments", handler.GetAllComments)
}

// CreatePhoto handles the creation of a new portfolio photo.
// @Summary Create a new photo
// @Description Create a new portfolio photo with camera settings.
// @Tags Photo
// @Accept json
// @Produce json
// @Param request body dto.CreatePhotoRequest true "Create Photo Request"
// @Success 201 {object} dto.PhotoResponse "Photo created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos [post]
// @Security BearerAuth
func (handler *Handler) CreatePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePhoto")
	defer scope.End()

	req := dto.CreatePhotoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create photo")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Photo created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetPhotos retrieves all portfolio photos.
// @Summary Get all photos
// @Description Retrieve all portfolio photos, newest first.
// @Tags Photo
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetPhotosResponse "List of photos"
// @Failure 500 {object} response.Error
// @Router /api/photos [get]
func (handler *Handler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	photos, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photos retrieved successfully")

	response.WithJSON(w, http.StatusOK, photos)
}

// GetPhotoByID retrieves a photo by its ID.
// @Summary Get a photo by ID
// @Description Retrieve a single portfolio photo.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} dto.PhotoResponse "Photo details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos/{id} [get]
func (handler *Handler) GetPhotoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	photo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo retrieved successfully")

	response.WithJSON(w, http.StatusOK, photo)
}

// UpdatePhoto updates an existing photo by its ID.
// @Summary Update a photo by ID
// @Description Update the details of an existing portfolio photo.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body dto.UpdatePhotoRequest true "Update Photo Request"
// @Success 200 {object} response.Message "Photo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePhotoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo updated successfully")

	response.WithMessage(w, http.StatusOK, "Photo updated successfully")
}

// DeletePhoto deletes a photo by its ID.
// @Summary Delete a photo by ID
// @Description Delete a portfolio photo and its stored image.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Message "Photo deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo deleted successfully")

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}

// UploadImage handles photo image upload to S3.
// @Summary Upload a photo image
// @Description Upload an image file to S3 and return the URL.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos/upload [post]
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

// GetComments retrieves the comments on a photo.
// @Summary Get comments for a photo
// @Description Retrieve the comments on a photo in chronological order.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} dto.GetCommentsResponse "List of comments"
// @Failure 500 {object} response.Error
// @Router /api/photos/{id}/comments [get]
func (handler *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComments")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	comments, err := handler.commentService.GetByPhoto(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get comments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comments retrieved successfully")

	response.WithJSON(w, http.StatusOK, comments)
}

// GetAllComments retrieves every comment across all photos.
// @Summary Get all comments
// @Description Retrieve the comments on every photo in chronological order.
// @Tags Photo
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetCommentsResponse "List of comments"
// @Failure 500 {object} response.Error
// @Router /api/comments [get]
func (handler *Handler) GetAllComments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllComments")
	defer scope.End()

	comments, err := handler.commentService.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get comments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comments retrieved successfully")

	response.WithJSON(w, http.StatusOK, comments)
}

// CreateComment adds a comment to a photo.
// @Summary Add a comment to a photo
// @Description Add a visitor comment to a photo. Name and comment must not be blank.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body dto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} dto.CommentResponse "Comment created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/photos/{id}/comments [post]
func (handler *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := commentDto.CreateCommentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.commentService.Create(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create comment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Comment created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
