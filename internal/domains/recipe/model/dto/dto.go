package dto

import (
	"aperture/internal/domains/recipe/model"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	Name     string         `json:"name" validate:"required,notblank,max=255"`
	Settings model.Settings `json:"settings"`
}

func (c *CreateRecipeRequest) ToModel() model.Recipe {
	return model.Recipe{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Settings: c.Settings,
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type RecipeResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Settings model.Settings `json:"settings"`
	gDto.Metadata
}

func (r *RecipeResponse) FromModel(model model.Recipe) {
	r.ID = model.ID
	r.Name = model.Name
	r.Settings = model.Settings
	r.Metadata.FromModel(model.Metadata)
}

type GetRecipesResponse struct {
	Recipes   []RecipeResponse `json:"recipes"`
	TotalData int              `json:"total_data"`
}

func (r *GetRecipesResponse) FromModels(models []model.Recipe, totalData int) {
	r.TotalData = totalData

	r.Recipes = make([]RecipeResponse, len(models))
	for i, m := range models {
		r.Recipes[i].FromModel(m)
	}
}

type DeriveStyleRequest struct {
	Settings model.Settings `json:"settings"`
}

type StyleResponse struct {
	model.Style
}

func (r *StyleResponse) FromStyle(style model.Style) {
	r.Style = style
}
