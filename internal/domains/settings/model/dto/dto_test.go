package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aperture/internal/domains/settings/model"
	"aperture/internal/domains/settings/model/dto"
)

func TestUpdatePortfolioSettingsRequest_ToModel(t *testing.T) {
	req := dto.UpdatePortfolioSettingsRequest{
		MainTitle:           "My Portfolio",
		MainSubtitle:        "Photography with an edge",
		SelectedAvatarIndex: 1,
		EquipmentItems: model.EquipmentItems{
			{ID: "item-1", Name: "X-T5", Category: "camera"},
		},
		ContactEmail: "hello@example.com",
	}

	settings := req.ToModel()

	assert.Equal(t, model.SingletonID, settings.ID)
	assert.Equal(t, req.MainTitle, settings.MainTitle)
	assert.Equal(t, req.MainSubtitle, settings.MainSubtitle)
	assert.Equal(t, req.SelectedAvatarIndex, settings.SelectedAvatarIndex)
	assert.Equal(t, req.EquipmentItems, settings.EquipmentItems)
	assert.Equal(t, req.ContactEmail, settings.ContactEmail)
	assert.False(t, settings.Timestamp.IsZero(), "expected Timestamp to be set")
	assert.False(t, settings.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestAddEquipmentRequest_ToItem(t *testing.T) {
	t.Run("trims and keeps the category", func(t *testing.T) {
		req := dto.AddEquipmentRequest{
			Name:        "  XF 56mm f/1.2  ",
			Description: " Portrait lens ",
			Category:    "lens",
		}

		item := req.ToItem()

		assert.NotEmpty(t, item.ID, "expected ID to be generated")
		assert.Equal(t, "XF 56mm f/1.2", item.Name)
		assert.Equal(t, "Portrait lens", item.Description)
		assert.Equal(t, "lens", item.Category)
	})

	t.Run("missing category defaults to general", func(t *testing.T) {
		req := dto.AddEquipmentRequest{
			Name:        "Tripod",
			Description: "Carbon fiber tripod",
		}

		item := req.ToItem()

		assert.Equal(t, "general", item.Category)
	})
}

func TestUpdateSEOSettingsRequest_ToModel(t *testing.T) {
	req := dto.UpdateSEOSettingsRequest{
		SiteTitle:       "My Portfolio",
		SiteDescription: "Photography portfolio",
		TwitterCardType: "summary_large_image",
		SocialMedia: model.SocialMedia{
			InstagramURL: "https://instagram.com/example",
		},
	}

	settings := req.ToModel()

	assert.Equal(t, model.SingletonID, settings.ID)
	assert.Equal(t, req.SiteTitle, settings.SiteTitle)
	assert.Equal(t, req.SiteDescription, settings.SiteDescription)
	assert.Equal(t, req.TwitterCardType, settings.TwitterCardType)
	assert.Equal(t, req.SocialMedia, settings.SocialMedia)
	assert.False(t, settings.Timestamp.IsZero(), "expected Timestamp to be set")
}

func TestDefaultPortfolioSettings(t *testing.T) {
	settings := model.DefaultPortfolioSettings()

	assert.Equal(t, model.SingletonID, settings.ID)
	assert.NotEmpty(t, settings.MainTitle)
	assert.NotNil(t, settings.EquipmentItems)
}

func TestDefaultSEOSettings(t *testing.T) {
	settings := model.DefaultSEOSettings()

	assert.Equal(t, model.SingletonID, settings.ID)
	assert.NotEmpty(t, settings.SiteTitle)
	assert.Equal(t, "summary_large_image", settings.TwitterCardType)
}
