package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"aperture/infras/otel"
	"aperture/infras/postgres"
	"aperture/internal/domains/recipe/model"
	gDto "aperture/shared/dto"
	gRepo "aperture/shared/repository"
)

type Recipe interface {
	Insert(ctx context.Context, model model.Recipe) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Recipe, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Recipe, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Recipe]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Recipe {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Recipe](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
