package service

import (
	"context"
	"fmt"

	"aperture/infras/otel"
	photoModel "aperture/internal/domains/photo/model"
	photoRepo "aperture/internal/domains/photo/repository"
	"aperture/shared/constant"
	gDto "aperture/shared/dto"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Seed interface {
	InitSampleData(ctx context.Context) (string, error)
}

type serviceImpl struct {
	photoRepo photoRepo.Photo
	otel      otel.Otel
}

func New(photoRepo photoRepo.Photo, otel otel.Otel) Seed {
	return &serviceImpl{
		photoRepo: photoRepo,
		otel:      otel,
	}
}

// InitSampleData seeds the starter photos. Seeding only runs against an empty
// photos table, so calling it repeatedly is safe.
func (s *serviceImpl) InitSampleData(ctx context.Context) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".InitSampleData")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.photoRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count photos")

		return msg, fmt.Errorf("failed to count photos: %w", err)
	}

	if total > 0 {
		log.Info().Int("photos", total).Msg("sample data already present, skipping seed")

		return "Sample data already initialized", nil
	}

	if err = s.photoRepo.InsertBulk(ctx, samplePhotos()); err != nil {
		log.Error().Err(err).Msg("failed to insert sample photos")

		return msg, fmt.Errorf("failed to insert sample photos: %w", err)
	}

	return "Sample data initialized successfully", nil
}

func samplePhotos() []photoModel.Photo {
	now := timezone.Now()

	photos := []photoModel.Photo{
		{
			Title:       "Golden Hour Portrait",
			Description: "A beautiful portrait captured during golden hour with soft natural lighting",
			ImageURL:    "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=800&h=600&fit=crop",
			CameraSettings: photoModel.CameraSettings{
				"aperture":      "f/1.8",
				"shutter_speed": "1/200s",
				"iso":           "ISO 400",
				"lens":          "Fujifilm XF 35mm f/1.4",
				"focal_length":  "35mm",
			},
		},
		{
			Title:       "City Landscape",
			Description: "Urban landscape with dramatic sky and architectural elements",
			ImageURL:    "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800&h=600&fit=crop",
			CameraSettings: photoModel.CameraSettings{
				"aperture":      "f/8",
				"shutter_speed": "1/60s",
				"iso":           "ISO 200",
				"lens":          "Fujifilm XF 16-55mm f/2.8",
				"focal_length":  "24mm",
			},
		},
		{
			Title:       "Nature Macro",
			Description: "Close-up macro shot of morning dew on leaves",
			ImageURL:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=800&h=600&fit=crop",
			CameraSettings: photoModel.CameraSettings{
				"aperture":      "f/2.8",
				"shutter_speed": "1/125s",
				"iso":           "ISO 100",
				"lens":          "Fujifilm XF 80mm f/2.8 Macro",
				"focal_length":  "80mm",
			},
		},
	}

	for i := range photos {
		photos[i].ID = uuid.NewString()
		photos[i].Metadata = gModel.Metadata{
			Timestamp: now,
			UpdatedAt: now,
		}
	}

	return photos
}
