package dto

import (
	"aperture/shared/constant"
	"aperture/shared/model"
	"aperture/shared/timezone"
)

type Metadata struct {
	Timestamp string `json:"timestamp"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.Timestamp = timezone.Format(model.Timestamp, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
