package dto

import (
	"strings"

	"aperture/internal/domains/comment/model"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Comment string `json:"comment" validate:"required,notblank,max=2000"`
}

func (c *CreateCommentRequest) ToModel(photoID string) model.Comment {
	return model.Comment{
		ID:      uuid.NewString(),
		PhotoID: photoID,
		Name:    strings.TrimSpace(c.Name),
		Comment: strings.TrimSpace(c.Comment),
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type CommentResponse struct {
	ID      string `json:"id"`
	PhotoID string `json:"photo_id"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
	gDto.Metadata
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.PhotoID = model.PhotoID
	r.Name = model.Name
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetCommentsResponse struct {
	Comments  []CommentResponse `json:"comments"`
	TotalData int               `json:"total_data"`
}

func (r *GetCommentsResponse) FromModels(models []model.Comment) {
	r.TotalData = len(models)

	r.Comments = make([]CommentResponse, len(models))
	for i, m := range models {
		r.Comments[i].FromModel(m)
	}
}
