package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aperture/infras/otel/mocks"
	photoMocks "aperture/internal/domains/photo/mocks"
	photoModel "aperture/internal/domains/photo/model"
	"aperture/internal/domains/seed/service"
)

func TestSeedService_InitSampleData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPhotoRepo := photoMocks.NewMockPhoto(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockPhotoRepo, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantMsg   string
	}{
		{
			name: "seeds an empty database",
			setupMock: func() {
				mockPhotoRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockPhotoRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, photos []photoModel.Photo) error {
						assert.Len(t, photos, 3)
						for _, photo := range photos {
							assert.NotEmpty(t, photo.ID)
							assert.NotEmpty(t, photo.ImageURL)
						}

						return nil
					})
			},
			wantErr: false,
			wantMsg: "Sample data initialized successfully",
		},
		{
			name: "second run is a no-op",
			setupMock: func() {
				mockPhotoRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			wantErr: false,
			wantMsg: "Sample data already initialized",
		},
		{
			name: "count error",
			setupMock: func() {
				mockPhotoRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockPhotoRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockPhotoRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			msg, err := svc.InitSampleData(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMsg, msg)
			}
		})
	}
}
