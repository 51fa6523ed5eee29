package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"aperture/shared/model"

	"github.com/lib/pq"
)

const (
	PortfolioTableName  = "portfolio_settings"
	PortfolioEntityName = "portfolio settings"
	SEOTableName        = "seo_settings"
	SEOEntityName       = "seo settings"

	// SingletonID keys the single row each settings table holds.
	SingletonID = "default"

	FieldID             = "id"
	FieldEquipmentItems = "equipment_items"
)

type EquipmentItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// EquipmentItems is the gear list shown on the portfolio page. Stored as JSONB.
type EquipmentItems []EquipmentItem

func (e EquipmentItems) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(e) //nolint:wrapcheck
}

func (e *EquipmentItems) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, e) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), e) //nolint:wrapcheck
	case nil:
		*e = nil

		return nil
	default:
		return errors.New("unsupported source type for equipment items")
	}
}

type SocialMedia struct {
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`
	TwitterURL   string `json:"twitter_url"`
}

func (s SocialMedia) Value() (driver.Value, error) {
	return json.Marshal(s) //nolint:wrapcheck
}

func (s *SocialMedia) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, s) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), s) //nolint:wrapcheck
	case nil:
		*s = SocialMedia{}

		return nil
	default:
		return errors.New("unsupported source type for social media links")
	}
}

type PortfolioSettings struct {
	ID                  string         `db:"id"`
	MainTitle           string         `db:"main_title"`
	MainSubtitle        string         `db:"main_subtitle"`
	MainQuote           string         `db:"main_quote"`
	AvatarURLs          pq.StringArray `db:"avatar_urls"`
	SelectedAvatarIndex int            `db:"selected_avatar_index"`
	EquipmentTitle      string         `db:"equipment_title"`
	EquipmentItems      EquipmentItems `db:"equipment_items"`
	ContactEmail        string         `db:"contact_email"`
	ContactPhone        string         `db:"contact_phone"`
	model.Metadata
}

type SEOSettings struct {
	ID              string         `db:"id"`
	SiteTitle       string         `db:"site_title"`
	SiteDescription string         `db:"site_description"`
	SiteKeywords    pq.StringArray `db:"site_keywords"`
	OGTitle         string         `db:"og_title"`
	OGDescription   string         `db:"og_description"`
	OGImage         string         `db:"og_image"`
	OGURL           string         `db:"og_url"`
	TwitterCardType string         `db:"twitter_card_type"`
	TwitterTitle    string         `db:"twitter_title"`
	TwitterDesc     string         `db:"twitter_description"`
	TwitterImage    string         `db:"twitter_image"`
	SocialMedia     SocialMedia    `db:"social_media"`
	model.Metadata
}

// DefaultPortfolioSettings is served until the admin saves the singleton row.
func DefaultPortfolioSettings() PortfolioSettings {
	return PortfolioSettings{
		ID:                  SingletonID,
		MainTitle:           "Viet's Photography Portfolio",
		MainSubtitle:        "Professional photography services with a rock and roll edge",
		MainQuote:           "Every frame tells a story",
		AvatarURLs:          pq.StringArray{},
		SelectedAvatarIndex: 0,
		EquipmentTitle:      "Equipment",
		EquipmentItems:      EquipmentItems{},
		ContactEmail:        "",
		ContactPhone:        "",
	}
}

// DefaultSEOSettings is served until the admin saves the singleton row.
func DefaultSEOSettings() SEOSettings {
	return SEOSettings{
		ID:              SingletonID,
		SiteTitle:       "Viet's Photography Portfolio",
		SiteDescription: "Professional photography services with a rock and roll edge",
		SiteKeywords:    pq.StringArray{"photography", "portfolio", "photographer"},
		TwitterCardType: "summary_large_image",
	}
}
