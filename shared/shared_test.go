package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aperture/shared"
	"aperture/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{name: "empty string", value: "", want: nil},
		{name: "true", value: "true", want: boolPtr(true)},
		{name: "false", value: "false", want: boolPtr(false)},
		{name: "invalid", value: "not-a-bool", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Title       string `db:"title"`
		Description string `db:"description"`
		Count       int    `db:"count"`
		NoTag       string
	}

	t.Run("only non-zero tagged fields", func(t *testing.T) {
		fields := shared.TransformFields(update{
			Title: "New Title",
			Count: 3,
			NoTag: "ignored",
		})

		assert.Equal(t, map[string]any{
			"title": "New Title",
			"count": 3,
		}, fields)
	})

	t.Run("empty struct yields no fields", func(t *testing.T) {
		fields := shared.TransformFields(update{})

		assert.Empty(t, fields)
	})
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("test-id", "id", "photos")

	assert.Len(t, filter.Filters, 1)

	f, ok := filter.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", f.Field)
	assert.Equal(t, "test-id", f.Value)
	assert.Equal(t, dto.FilterOperatorEq, f.Operator)
	assert.Equal(t, "photos", f.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "photo:get:test-id", shared.BuildCacheKey("photo:get", "test-id"))
	assert.Equal(t, "recipe:get_all", shared.BuildCacheKey("recipe:get_all"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	paramsA := dto.QueryParams{Limit: 10, Page: 1}
	paramsB := dto.QueryParams{Limit: 10, Page: 2}

	keyA := shared.BuildCacheKeyWithQuery("photo:get_all", paramsA, dto.FilterGroup{})
	keyASame := shared.BuildCacheKeyWithQuery("photo:get_all", paramsA, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("photo:get_all", paramsB, dto.FilterGroup{})

	assert.Equal(t, keyA, keyASame, "same query should derive the same key")
	assert.NotEqual(t, keyA, keyB, "different queries should derive different keys")
	assert.Contains(t, keyA, "photo:get_all:")
}
