package seed

import (
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/seed/service"
	"aperture/shared/constant"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seed
	otel    otel.Otel
}

func New(service service.Seed, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/init-sample-data", handler.InitSampleData)
}

// InitSampleData seeds the starter portfolio photos.
// @Summary Initialize sample data
// @Description Seed the starter photos. Does nothing when photos already exist.
// @Tags Seed
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Sample data initialized successfully"
// @Failure 500 {object} response.Error
// @Router /api/init-sample-data [post]
func (handler *Handler) InitSampleData(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitSampleData")
	defer scope.End()

	msg, err := handler.service.InitSampleData(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to initialize sample data")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(msg)

	response.WithMessage(writer, http.StatusOK, msg)
}
