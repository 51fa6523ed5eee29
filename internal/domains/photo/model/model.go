package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"aperture/shared/model"
)

const (
	TableName  = "photos"
	EntityName = "photo"

	FieldID             = "id"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldImageURL       = "image_url"
	FieldCameraSettings = "camera_settings"
)

// CameraSettings holds the EXIF-style key/value pairs shown alongside a
// photo (aperture, shutter_speed, iso, lens, focal_length). Stored as JSONB.
type CameraSettings map[string]string

func (c CameraSettings) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(c) //nolint:wrapcheck
}

func (c *CameraSettings) Scan(src any) error {
	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, c) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), c) //nolint:wrapcheck
	case nil:
		*c = nil

		return nil
	default:
		return errors.New("unsupported source type for camera settings")
	}
}

type Photo struct {
	ID             string         `db:"id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	ImageURL       string         `db:"image_url"`
	CameraSettings CameraSettings `db:"camera_settings"`
	model.Metadata
}
