package dto

import (
	"aperture/internal/domains/status/model"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,notblank,max=255"`
}

func (c *CreateStatusCheckRequest) ToModel() model.StatusCheck {
	return model.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: c.ClientName,
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type StatusCheckResponse struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	gDto.Metadata
}

func (r *StatusCheckResponse) FromModel(model model.StatusCheck) {
	r.ID = model.ID
	r.ClientName = model.ClientName
	r.Metadata.FromModel(model.Metadata)
}

type GetStatusChecksResponse struct {
	StatusChecks []StatusCheckResponse `json:"status_checks"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetStatusChecksResponse) FromModels(models []model.StatusCheck, totalData int) {
	r.TotalData = totalData

	r.StatusChecks = make([]StatusCheckResponse, len(models))
	for i, m := range models {
		r.StatusChecks[i].FromModel(m)
	}
}
