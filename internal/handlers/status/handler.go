package status

import (
	"net/http"

	"aperture/infras/otel"
	"aperture/internal/domains/status/model/dto"
	"aperture/internal/domains/status/service"
	"aperture/shared/constant"
	"aperture/shared/validator"
	"aperture/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Status
	otel    otel.Otel
}

func New(service service.Status, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/status", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStatusChecks)
		routerGroup.Post("/", handler.CreateStatusCheck)
	})
}

// CreateStatusCheck records a client status check.
// @Summary Record a status check
// @Description Record a status check ping from a named client.
// @Tags Status
// @Accept json
// @Produce json
// @Param request body dto.CreateStatusCheckRequest true "Create Status Check Request"
// @Success 201 {object} dto.StatusCheckResponse "Status check recorded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/status [post]
func (handler *Handler) CreateStatusCheck(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStatusCheck")
	defer scope.End()

	req := dto.CreateStatusCheckRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create status check")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Status check recorded successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetStatusChecks retrieves the recorded status checks.
// @Summary Get status checks
// @Description Retrieve the recorded status checks, newest first.
// @Tags Status
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetStatusChecksResponse "List of status checks"
// @Failure 500 {object} response.Error
// @Router /api/status [get]
func (handler *Handler) GetStatusChecks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatusChecks")
	defer scope.End()

	checks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get status checks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Status checks retrieved successfully")

	response.WithJSON(w, http.StatusOK, checks)
}
