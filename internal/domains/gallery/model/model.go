package model

import "aperture/shared/model"

const (
	TableName  = "gallery_photos"
	EntityName = "gallery"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldCategory    = "category"
)

// Categories the gallery accepts. A category only surfaces in the counts
// endpoint while at least one photo carries it.
var Categories = []string{
	"general",
	"portrait",
	"landscape",
	"street",
	"architecture",
	"macro",
	"wedding",
	"urban",
	"abstract",
	"nature",
}

type GalleryPhoto struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
	Category    string `db:"category"`
	model.Metadata
}
