package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aperture/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "test-id",
				Operator: dto.FilterOperatorEq,
				Table:    "photos",
			},
			wantWhere: "photos.id = :id",
			wantArgs:  map[string]any{"id": "test-id"},
		},
		{
			name: "like lowercases both sides",
			filter: dto.Filter{
				Field:    "title",
				Value:    "golden",
				Operator: dto.FilterOperatorLike,
				Table:    "articles",
			},
			wantWhere: "LOWER(articles.title) LIKE LOWER(:title) ",
			wantArgs:  map[string]any{"title": "%golden%"},
		},
		{
			name: "not_eq",
			filter: dto.Filter{
				Field:    "id",
				Value:    "test-id",
				Operator: dto.FilterOperatorNotEq,
				Table:    "articles",
			},
			wantWhere: "articles.id != :id",
			wantArgs:  map[string]any{"id": "test-id"},
		},
		{
			name: "contains matches array membership",
			filter: dto.Filter{
				Field:    "tags",
				Value:    "fujifilm",
				Operator: dto.FilterOperatorContains,
				Table:    "articles",
			},
			wantWhere: ":tags = ANY(articles.tags) ",
			wantArgs:  map[string]any{"tags": "fujifilm"},
		},
		{
			name: "in with slice",
			filter: dto.Filter{
				Field:    "category",
				Value:    []string{"portrait", "landscape"},
				Operator: dto.FilterOperatorIn,
				Table:    "gallery_photos",
			},
			wantWhere: "gallery_photos.category IN (:category_0, :category_1) ",
			wantArgs:  map[string]any{"category_0": "portrait", "category_1": "landscape"},
		},
		{
			name: "is_null",
			filter: dto.Filter{
				Field:    "featured_image",
				Operator: dto.FilterOperatorIsNull,
				Table:    "articles",
			},
			wantWhere: "articles.featured_image IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "arg name overrides the named parameter",
			filter: dto.Filter{
				ArgName:  "search_title",
				Field:    "title",
				Value:    "golden",
				Operator: dto.FilterOperatorLike,
				Table:    "articles",
			},
			wantWhere: "LOWER(articles.title) LIKE LOWER(:search_title) ",
			wantArgs:  map[string]any{"search_title": "%golden%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("and group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_published", Value: true, Operator: dto.FilterOperatorEq, Table: "articles"},
				dto.Filter{Field: "tags", Value: "fujifilm", Operator: dto.FilterOperatorContains, Table: "articles"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(articles.is_published = :is_published AND :tags = ANY(articles.tags) )", where)
		assert.Equal(t, map[string]any{"is_published": true, "tags": "fujifilm"}, args)
	})

	t.Run("nested or group keeps distinct arg names", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "is_published", Value: true, Operator: dto.FilterOperatorEq, Table: "articles"},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "search_title", Field: "title", Value: "golden", Operator: dto.FilterOperatorLike, Table: "articles"},
						dto.Filter{ArgName: "search_content", Field: "content", Value: "golden", Operator: dto.FilterOperatorLike, Table: "articles"},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Contains(t, where, "articles.is_published = :is_published AND")
		assert.Contains(t, where, "LOWER(articles.title) LIKE LOWER(:search_title)")
		assert.Contains(t, where, "OR")
		assert.Contains(t, where, "LOWER(articles.content) LIKE LOWER(:search_content)")
		assert.Len(t, args, 3)
	})
}
