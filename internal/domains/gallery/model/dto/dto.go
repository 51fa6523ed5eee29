package dto

import (
	"mime/multipart"

	"aperture/internal/domains/gallery/model"
	"aperture/shared"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
)

type CreateGalleryPhotoRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Category    string `json:"category" validate:"required,oneof=general portrait landscape street architecture macro wedding urban abstract nature"`
}

func (c *CreateGalleryPhotoRequest) ToModel() model.GalleryPhoto {
	return model.GalleryPhoto{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Category:    c.Category,
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type GalleryPhotoResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	gDto.Metadata
}

func (r *GalleryPhotoResponse) FromModel(model model.GalleryPhoto) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Category = model.Category
	r.Metadata.FromModel(model.Metadata)
}

type GetGalleryPhotosResponse struct {
	Photos    []GalleryPhotoResponse `json:"photos"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetGalleryPhotosResponse) FromModels(models []model.GalleryPhoto, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]GalleryPhotoResponse, len(models))
	for i, m := range models {
		r.Photos[i].FromModel(m)
	}
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type GetCategoriesResponse struct {
	Categories []CategoryCount `json:"categories"`
}

// FromCounts keeps the canonical category order and drops empty categories.
func (r *GetCategoriesResponse) FromCounts(counts map[string]int) {
	r.Categories = []CategoryCount{}

	for _, category := range model.Categories {
		if count, ok := counts[category]; ok && count > 0 {
			r.Categories = append(r.Categories, CategoryCount{Category: category, Count: count})
		}
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
