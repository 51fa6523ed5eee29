package model

import (
	"time"

	"aperture/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "articles"
	EntityName = "article"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldSlug            = "slug"
	FieldExcerpt         = "excerpt"
	FieldContent         = "content"
	FieldTags            = "tags"
	FieldIsPublished     = "is_published"
	FieldFeaturedImage   = "featured_image"
	FieldMetaDescription = "meta_description"
	FieldPublishDate     = "publish_date"
)

type Article struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Slug            string         `db:"slug"`
	Excerpt         string         `db:"excerpt"`
	Content         string         `db:"content"`
	Tags            pq.StringArray `db:"tags"`
	IsPublished     bool           `db:"is_published"`
	FeaturedImage   string         `db:"featured_image"`
	MetaDescription string         `db:"meta_description"`
	PublishDate     time.Time      `db:"publish_date"`
	model.Metadata
}
