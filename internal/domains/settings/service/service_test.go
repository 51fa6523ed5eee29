package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"aperture/config"
	"aperture/infras/otel/mocks"
	settingsMocks "aperture/internal/domains/settings/mocks"
	"aperture/internal/domains/settings/model"
	"aperture/internal/domains/settings/model/dto"
	"aperture/internal/domains/settings/service"
	cacheMocks "aperture/shared/cache/mocks"
	"aperture/shared/failure"
	gModel "aperture/shared/model"
	"aperture/shared/timezone"
)

func newSettingsService(t *testing.T) (service.Settings, *settingsMocks.MockPortfolio, *settingsMocks.MockSEO, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPortfolioRepo := settingsMocks.NewMockPortfolio(ctrl)
	mockSEORepo := settingsMocks.NewMockSEO(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockPortfolioRepo, mockSEORepo, cfg, mockCache, mockOtel)

	return svc, mockPortfolioRepo, mockSEORepo, mockCache
}

func storedPortfolio() model.PortfolioSettings {
	return model.PortfolioSettings{
		ID:        model.SingletonID,
		MainTitle: "Custom Title",
		EquipmentItems: model.EquipmentItems{
			{ID: "item-1", Name: "X-T5", Category: "camera"},
			{ID: "item-2", Name: "XF 35mm f/1.4", Category: "lens"},
		},
		Metadata: gModel.Metadata{
			Timestamp: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func TestSettingsService_GetPortfolio(t *testing.T) {
	svc, mockPortfolioRepo, _, mockCache := newSettingsService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTitle string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "stored settings are returned",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPortfolio(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTitle: "Custom Title",
		},
		{
			name: "missing row falls back to defaults",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PortfolioSettings{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTitle: model.DefaultPortfolioSettings().MainTitle,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PortfolioSettings{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetPortfolio(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantTitle != "" {
					assert.Equal(t, tt.wantTitle, result.MainTitle)
				}
			}
		})
	}
}

func TestSettingsService_UpdatePortfolio(t *testing.T) {
	svc, mockPortfolioRepo, _, mockCache := newSettingsService(t)

	req := dto.UpdatePortfolioSettingsRequest{
		MainTitle:    "New Title",
		MainSubtitle: "New Subtitle",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "replaces an existing row wholesale",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPortfolio(), nil)

				mockPortfolioRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPortfolioRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "first save inserts without delete",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PortfolioSettings{}, nil)

				mockPortfolioRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "insert error",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PortfolioSettings{}, nil)

				mockPortfolioRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UpdatePortfolio(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.MainTitle, result.MainTitle)
			}
		})
	}
}

func TestSettingsService_AddEquipment(t *testing.T) {
	svc, mockPortfolioRepo, _, mockCache := newSettingsService(t)

	req := dto.AddEquipmentRequest{
		Name:        "XF 56mm f/1.2",
		Description: "Portrait lens",
		Category:    "lens",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantItems int
	}{
		{
			name: "item appended with a generated id",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPortfolio(), nil).
					Times(2)

				mockPortfolioRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPortfolioRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantItems: 3,
		},
		{
			name: "load error",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PortfolioSettings{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.AddEquipment(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.EquipmentItems, tt.wantItems)

				added := result.EquipmentItems[tt.wantItems-1]
				assert.NotEmpty(t, added.ID)
				assert.Equal(t, req.Name, added.Name)
			}
		})
	}
}

func TestSettingsService_DeleteEquipment(t *testing.T) {
	svc, mockPortfolioRepo, _, mockCache := newSettingsService(t)

	tests := []struct {
		name      string
		itemID    string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantItems int
	}{
		{
			name:   "item removed",
			itemID: "item-1",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPortfolio(), nil).
					Times(2)

				mockPortfolioRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPortfolioRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantItems: 1,
		},
		{
			name:   "unknown item",
			itemID: "nonexistent",
			setupMock: func() {
				mockPortfolioRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedPortfolio(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.DeleteEquipment(context.Background(), tt.itemID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.EquipmentItems, tt.wantItems)
			}
		})
	}
}

func TestSettingsService_GetSEO(t *testing.T) {
	svc, _, mockSEORepo, mockCache := newSettingsService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTitle string
	}{
		{
			name: "stored settings are returned",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockSEORepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.SEOSettings{ID: model.SingletonID, SiteTitle: "Custom Site"}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTitle: "Custom Site",
		},
		{
			name: "missing row falls back to defaults",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockSEORepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.SEOSettings{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTitle: model.DefaultSEOSettings().SiteTitle,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockSEORepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.SEOSettings{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetSEO(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTitle, result.SiteTitle)
			}
		})
	}
}

func TestSettingsService_UpdateSEO(t *testing.T) {
	svc, _, mockSEORepo, mockCache := newSettingsService(t)

	req := dto.UpdateSEOSettingsRequest{
		SiteTitle:       "New Site Title",
		TwitterCardType: "summary",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "replaces an existing row wholesale",
			setupMock: func() {
				mockSEORepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.SEOSettings{ID: model.SingletonID, SiteTitle: "Old"}, nil)

				mockSEORepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockSEORepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "first save inserts without delete",
			setupMock: func() {
				mockSEORepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.SEOSettings{}, nil)

				mockSEORepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.UpdateSEO(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.SiteTitle, result.SiteTitle)
			}
		})
	}
}
