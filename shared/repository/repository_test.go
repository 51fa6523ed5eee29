package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aperture/infras/otel/mocks"
	"aperture/shared/dto"
)

type orderingRow struct {
	ID        string    `db:"id"`
	Category  string    `db:"category"`
	Timestamp time.Time `db:"timestamp"`
}

func TestOrderingClause(t *testing.T) {
	repo := NewRepository[orderingRow]("Gallery", "gallery_photos", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name:   "known column with id tiebreak",
			params: dto.QueryParams{SortBy: "timestamp", SortDir: dto.SortDirDesc},
			want:   "ORDER BY gallery_photos.timestamp DESC, gallery_photos.id ASC",
		},
		{
			name:   "table qualified column",
			params: dto.QueryParams{SortBy: "gallery_photos.category", SortDir: dto.SortDirAsc},
			want:   "ORDER BY gallery_photos.category ASC, gallery_photos.id ASC",
		},
		{
			name:   "primary column needs no tiebreak",
			params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc},
			want:   "ORDER BY gallery_photos.id ASC",
		},
		{
			name:   "unknown column is dropped",
			params: dto.QueryParams{SortBy: "timestamp; DROP TABLE gallery_photos", SortDir: dto.SortDirAsc},
			want:   "",
		},
		{
			name:   "unknown direction is dropped",
			params: dto.QueryParams{SortBy: "timestamp", SortDir: "DESC; --"},
			want:   "",
		},
		{
			name:   "no sort requested",
			params: dto.QueryParams{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderingClause(tt.params))
		})
	}
}
