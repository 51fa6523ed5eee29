package service

import (
	"context"
	"fmt"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/internal/domains/comment/model"
	"aperture/internal/domains/comment/model/dto"
	"aperture/internal/domains/comment/repository"
	photoModel "aperture/internal/domains/photo/model"
	photoRepository "aperture/internal/domains/photo/repository"
	"aperture/shared"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	"aperture/shared/failure"

	"github.com/rs/zerolog/log"
)

type Comment interface {
	Create(ctx context.Context, photoID string, req dto.CreateCommentRequest) (dto.CommentResponse, error)
	GetAll(ctx context.Context) (dto.GetCommentsResponse, error)
	GetByPhoto(ctx context.Context, photoID string) (dto.GetCommentsResponse, error)
}

type serviceImpl struct {
	repo      repository.Comment
	photoRepo photoRepository.Photo
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Comment, photoRepo photoRepository.Photo, cfg *config.Config, otel otel.Otel) Comment {
	return &serviceImpl{
		repo:      repo,
		photoRepo: photoRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

// Create stores a visitor comment and returns the stored representation so
// the caller can append it without refetching the whole list.
func (s *serviceImpl) Create(ctx context.Context, photoID string, req dto.CreateCommentRequest) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.photoRepo.Exist(ctx, shared.FilterByID(photoID, photoModel.FieldID, photoModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check photo existence")

		return res, err
	}

	if !exist {
		return res, failure.NotFound("photo not found")
	}

	comment := req.ToModel(photoID)

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	res.FromModel(comment)

	return res, nil
}

// GetAll lists every comment across all photos in chronological order.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCommentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldTimestamp,
		SortDir: gDto.SortDirAsc,
	}

	comments, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return res, fmt.Errorf("failed to get comments: %w", err)
	}

	res.FromModels(comments)

	return res, nil
}

// GetByPhoto lists a photo's comments in chronological order.
func (s *serviceImpl) GetByPhoto(ctx context.Context, photoID string) (res dto.GetCommentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldTimestamp,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhotoID,
				Operator: gDto.FilterOperatorEq,
				Value:    photoID,
				Table:    model.TableName,
			},
		},
	}

	comments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return res, fmt.Errorf("failed to get comments: %w", err)
	}

	res.FromModels(comments)

	return res, nil
}
