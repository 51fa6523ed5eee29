package dto

import (
	"strings"

	"aperture/internal/domains/settings/model"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UpdatePortfolioSettingsRequest struct {
	MainTitle           string                `json:"main_title" validate:"required,max=255"`
	MainSubtitle        string                `json:"main_subtitle"`
	MainQuote           string                `json:"main_quote"`
	AvatarURLs          pq.StringArray        `json:"avatar_urls"`
	SelectedAvatarIndex int                   `json:"selected_avatar_index" validate:"gte=0"`
	EquipmentTitle      string                `json:"equipment_title"`
	EquipmentItems      model.EquipmentItems  `json:"equipment_items"`
	ContactEmail        string                `json:"contact_email" validate:"omitempty,email"`
	ContactPhone        string                `json:"contact_phone"`
}

func (u *UpdatePortfolioSettingsRequest) ToModel() model.PortfolioSettings {
	return model.PortfolioSettings{
		ID:                  model.SingletonID,
		MainTitle:           u.MainTitle,
		MainSubtitle:        u.MainSubtitle,
		MainQuote:           u.MainQuote,
		AvatarURLs:          u.AvatarURLs,
		SelectedAvatarIndex: u.SelectedAvatarIndex,
		EquipmentTitle:      u.EquipmentTitle,
		EquipmentItems:      u.EquipmentItems,
		ContactEmail:        u.ContactEmail,
		ContactPhone:        u.ContactPhone,
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type PortfolioSettingsResponse struct {
	ID                  string               `json:"id"`
	MainTitle           string               `json:"main_title"`
	MainSubtitle        string               `json:"main_subtitle"`
	MainQuote           string               `json:"main_quote"`
	AvatarURLs          []string             `json:"avatar_urls"`
	SelectedAvatarIndex int                  `json:"selected_avatar_index"`
	EquipmentTitle      string               `json:"equipment_title"`
	EquipmentItems      model.EquipmentItems `json:"equipment_items"`
	ContactEmail        string               `json:"contact_email"`
	ContactPhone        string               `json:"contact_phone"`
	gDto.Metadata
}

func (r *PortfolioSettingsResponse) FromModel(settings model.PortfolioSettings) {
	r.ID = settings.ID
	r.MainTitle = settings.MainTitle
	r.MainSubtitle = settings.MainSubtitle
	r.MainQuote = settings.MainQuote
	r.AvatarURLs = settings.AvatarURLs
	r.SelectedAvatarIndex = settings.SelectedAvatarIndex
	r.EquipmentTitle = settings.EquipmentTitle
	r.EquipmentItems = settings.EquipmentItems
	r.ContactEmail = settings.ContactEmail
	r.ContactPhone = settings.ContactPhone
	r.Metadata.FromModel(settings.Metadata)
}

type AddEquipmentRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
	Category    string `json:"category"`
}

func (a *AddEquipmentRequest) ToItem() model.EquipmentItem {
	category := strings.TrimSpace(a.Category)
	if category == "" {
		category = "general"
	}

	return model.EquipmentItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(a.Name),
		Description: strings.TrimSpace(a.Description),
		Category:    category,
	}
}

type UpdateSEOSettingsRequest struct {
	SiteTitle       string            `json:"site_title" validate:"required,max=255"`
	SiteDescription string            `json:"site_description"`
	SiteKeywords    pq.StringArray    `json:"site_keywords"`
	OGTitle         string            `json:"og_title"`
	OGDescription   string            `json:"og_description"`
	OGImage         string            `json:"og_image" validate:"omitempty,url"`
	OGURL           string            `json:"og_url" validate:"omitempty,url"`
	TwitterCardType string            `json:"twitter_card_type" validate:"omitempty,oneof=summary summary_large_image"`
	TwitterTitle    string            `json:"twitter_title"`
	TwitterDesc     string            `json:"twitter_description"`
	TwitterImage    string            `json:"twitter_image" validate:"omitempty,url"`
	SocialMedia     model.SocialMedia `json:"social_media"`
}

func (u *UpdateSEOSettingsRequest) ToModel() model.SEOSettings {
	return model.SEOSettings{
		ID:              model.SingletonID,
		SiteTitle:       u.SiteTitle,
		SiteDescription: u.SiteDescription,
		SiteKeywords:    u.SiteKeywords,
		OGTitle:         u.OGTitle,
		OGDescription:   u.OGDescription,
		OGImage:         u.OGImage,
		OGURL:           u.OGURL,
		TwitterCardType: u.TwitterCardType,
		TwitterTitle:    u.TwitterTitle,
		TwitterDesc:     u.TwitterDesc,
		TwitterImage:    u.TwitterImage,
		SocialMedia:     u.SocialMedia,
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type SEOSettingsResponse struct {
	ID              string            `json:"id"`
	SiteTitle       string            `json:"site_title"`
	SiteDescription string            `json:"site_description"`
	SiteKeywords    []string          `json:"site_keywords"`
	OGTitle         string            `json:"og_title"`
	OGDescription   string            `json:"og_description"`
	OGImage         string            `json:"og_image"`
	OGURL           string            `json:"og_url"`
	TwitterCardType string            `json:"twitter_card_type"`
	TwitterTitle    string            `json:"twitter_title"`
	TwitterDesc     string            `json:"twitter_description"`
	TwitterImage    string            `json:"twitter_image"`
	SocialMedia     model.SocialMedia `json:"social_media"`
	gDto.Metadata
}

func (r *SEOSettingsResponse) FromModel(settings model.SEOSettings) {
	r.ID = settings.ID
	r.SiteTitle = settings.SiteTitle
	r.SiteDescription = settings.SiteDescription
	r.SiteKeywords = settings.SiteKeywords
	r.OGTitle = settings.OGTitle
	r.OGDescription = settings.OGDescription
	r.OGImage = settings.OGImage
	r.OGURL = settings.OGURL
	r.TwitterCardType = settings.TwitterCardType
	r.TwitterTitle = settings.TwitterTitle
	r.TwitterDesc = settings.TwitterDesc
	r.TwitterImage = settings.TwitterImage
	r.SocialMedia = settings.SocialMedia
	r.Metadata.FromModel(settings.Metadata)
}
