package service

import (
	"context"
	"fmt"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/internal/domains/status/model/dto"
	"aperture/internal/domains/status/repository"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"

	"github.com/rs/zerolog/log"
)

type Status interface {
	Create(ctx context.Context, req dto.CreateStatusCheckRequest) (dto.StatusCheckResponse, error)
	GetAll(ctx context.Context) (dto.GetStatusChecksResponse, error)
}

type serviceImpl struct {
	repo repository.Status
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Status, cfg *config.Config, otel otel.Otel) Status {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStatusCheckRequest) (res dto.StatusCheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	check := req.ToModel()

	if err = s.repo.Insert(ctx, check); err != nil {
		log.Error().Err(err).Msg("failed to create status check")

		return res, fmt.Errorf("failed to create status check: %w", err)
	}

	res.FromModel(check)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetStatusChecksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldTimestamp,
		SortDir: gDto.SortDirDesc,
	}

	checks, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get status checks")

		return res, fmt.Errorf("failed to get status checks: %w", err)
	}

	res.FromModels(checks, len(checks))

	return res, nil
}
