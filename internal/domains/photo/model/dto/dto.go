package dto

import (
	"mime/multipart"

	"aperture/internal/domains/photo/model"
	"aperture/shared"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreatePhotoRequest struct {
	Title          string            `json:"title" validate:"required,max=255"`
	Description    string            `json:"description" validate:"required"`
	ImageURL       string            `json:"image_url" validate:"required,url"`
	CameraSettings map[string]string `json:"camera_settings"`
}

func (c *CreatePhotoRequest) ToModel() model.Photo {
	return model.Photo{
		ID:             uuid.NewString(),
		Title:          c.Title,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		CameraSettings: model.CameraSettings(c.CameraSettings),
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdatePhotoRequest struct {
	Title          string               `db:"title"           json:"title"           validate:"omitempty,max=255"`
	Description    string               `db:"description"     json:"description"     validate:"omitempty"`
	ImageURL       string               `db:"image_url"       json:"image_url"       validate:"omitempty,url"`
	CameraSettings model.CameraSettings `db:"camera_settings" json:"camera_settings" validate:"omitempty"`
}

type PhotoResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	ImageURL       string            `json:"image_url"`
	CameraSettings map[string]string `json:"camera_settings"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.CameraSettings = model.CameraSettings
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos    []PhotoResponse `json:"photos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]PhotoResponse, len(models))
	for i, m := range models {
		r.Photos[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromUpload(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
