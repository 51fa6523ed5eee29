package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"aperture/shared/model"
)

const (
	TableName  = "recipes"
	EntityName = "recipe"

	FieldID       = "id"
	FieldName     = "name"
	FieldSettings = "settings"
)

// Settings is a film simulation recipe. Stored as JSONB; the JSON keys match
// the document shape the editing UI works with.
type Settings struct {
	Simulation         string  `json:"simulation"`
	GrainEffect        string  `json:"grainEffect"`
	ColourChromeEffect string  `json:"colourChromeEffect"`
	ColourChromeBlue   string  `json:"colourChromeBlue"`
	WhiteBalance       int     `json:"whiteBalance"`
	WBShiftRed         int     `json:"wbShiftRed"`
	WBShiftBlue        int     `json:"wbShiftBlue"`
	DynamicRange       string  `json:"dynamicRange"`
	Highlights         float64 `json:"highlights"`
	Shadows            float64 `json:"shadows"`
	Color              float64 `json:"color"`
	Sharpness          float64 `json:"sharpness"`
	ISONoiseReduction  float64 `json:"isoNoiseReduction"`
	Clarity            float64 `json:"clarity"`
	EVCompensation     float64 `json:"evCompensation"`
}

// DefaultSettings is the baseline recipe loaded into a fresh editor.
func DefaultSettings() Settings {
	return Settings{
		Simulation:         "Astia/Soft",
		GrainEffect:        "Off",
		ColourChromeEffect: "Weak",
		ColourChromeBlue:   "Weak",
		WhiteBalance:       7500,
		WBShiftRed:         -4,
		WBShiftBlue:        4,
		DynamicRange:       "DR400",
		Highlights:         -0.5,
		Shadows:            -1.5,
		Color:              2,
		Sharpness:          0,
		ISONoiseReduction:  -4,
		Clarity:            -2,
		EVCompensation:     0,
	}
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s) //nolint:wrapcheck
}

func (s *Settings) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, s) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), s) //nolint:wrapcheck
	case nil:
		*s = Settings{}

		return nil
	default:
		return errors.New("unsupported source type for recipe settings")
	}
}

type Recipe struct {
	ID       string   `db:"id"`
	Name     string   `db:"name"`
	Settings Settings `db:"settings"`
	model.Metadata
}
