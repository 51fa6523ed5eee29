package dto

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aperture/internal/domains/article/model"
	"aperture/shared"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const wordsPerMinute = 200

// ReadTime estimates reading duration from the article body.
func ReadTime(content string) string {
	words := len(strings.Fields(content))

	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}

type CreateArticleRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Slug            string   `json:"slug" validate:"omitempty,max=255"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content" validate:"required"`
	Tags            []string `json:"tags"`
	IsPublished     bool     `json:"is_published"`
	FeaturedImage   string   `json:"featured_image" validate:"omitempty,url"`
	MetaDescription string   `json:"meta_description"`
}

func (c *CreateArticleRequest) ToModel(slug string) model.Article {
	return model.Article{
		ID:              uuid.NewString(),
		Title:           c.Title,
		Slug:            slug,
		Excerpt:         c.Excerpt,
		Content:         c.Content,
		Tags:            pq.StringArray(c.Tags),
		IsPublished:     c.IsPublished,
		FeaturedImage:   c.FeaturedImage,
		MetaDescription: c.MetaDescription,
		PublishDate:     timezone.Now(),
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateArticleRequest struct {
	Title           string         `db:"title"            json:"title"            validate:"omitempty,max=255"`
	Slug            string         `db:"slug"             json:"slug"             validate:"omitempty,max=255"`
	Excerpt         string         `db:"excerpt"          json:"excerpt"          validate:"omitempty"`
	Content         string         `db:"content"          json:"content"          validate:"omitempty"`
	Tags            pq.StringArray `db:"tags"             json:"tags"             validate:"omitempty"`
	IsPublished     *bool          `db:"is_published"     json:"is_published"     validate:"omitempty"`
	FeaturedImage   string         `db:"featured_image"   json:"featured_image"   validate:"omitempty,url"`
	MetaDescription string         `db:"meta_description" json:"meta_description" validate:"omitempty"`
}

type ArticleResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	ContentHTML     string   `json:"content_html,omitempty"`
	Tags            []string `json:"tags"`
	IsPublished     bool     `json:"is_published"`
	FeaturedImage   string   `json:"featured_image"`
	MetaDescription string   `json:"meta_description"`
	PublishDate     string   `json:"publish_date"`
	ReadTime        string   `json:"read_time"`
	gDto.Metadata
}

func (r *ArticleResponse) FromModel(model model.Article) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.Tags = model.Tags
	r.IsPublished = model.IsPublished
	r.FeaturedImage = model.FeaturedImage
	r.MetaDescription = model.MetaDescription
	r.PublishDate = timezone.Format(model.PublishDate, constant.DateFormat)
	r.ReadTime = ReadTime(model.Content)
	r.Metadata.FromModel(model.Metadata)
}

type GetArticlesResponse struct {
	Articles  []ArticleResponse `json:"articles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetArticlesResponse) FromModels(models []model.Article, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Articles = make([]ArticleResponse, len(models))
	for i, m := range models {
		r.Articles[i].FromModel(m)
	}
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type GetTagsResponse struct {
	Tags []TagCount `json:"tags"`
}

func (r *GetTagsResponse) FromCounts(counts map[string]int) {
	r.Tags = make([]TagCount, 0, len(counts))

	for tag, count := range counts {
		r.Tags = append(r.Tags, TagCount{Tag: tag, Count: count})
	}

	sort.Slice(r.Tags, func(i, j int) bool {
		return r.Tags[i].Tag < r.Tags[j].Tag
	})
}
