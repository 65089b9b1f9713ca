package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	menuMocks "hotelier/internal/domains/menu/mocks"
	"hotelier/internal/domains/menu/model"
	"hotelier/internal/domains/menu/model/dto"
	"hotelier/internal/domains/menu/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

func newMenuService(t *testing.T) (service.Menu, *menuMocks.MockMenu, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := menuMocks.NewMockMenu(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidations happen on detached goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestMenuService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateMenuItemRequest
		setupMock func(repo *menuMocks.MockMenu)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateMenuItemRequest{
				Name:     "Paneer Tikka",
				Category: "STARTER",
				Price:    320,
				Veg:      true,
			},
			setupMock: func(repo *menuMocks.MockMenu) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate name",
			req: dto.CreateMenuItemRequest{
				Name:     "Paneer Tikka",
				Category: "STARTER",
				Price:    320,
				Veg:      true,
			},
			setupMock: func(repo *menuMocks.MockMenu) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateMenuItemRequest{
				Name:     "Paneer Tikka",
				Category: "STARTER",
				Price:    320,
				Veg:      true,
			},
			setupMock: func(repo *menuMocks.MockMenu) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newMenuService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newMenuService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.MenuItem{
			{ID: "item-1", Name: "Paneer Tikka", Category: "STARTER", Price: 320, Veg: true, Available: true},
		}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.MenuItems, 1)
	assert.Equal(t, "Paneer Tikka", res.MenuItems[0].Name)
}

func TestMenuService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newMenuService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.MenuItem{ID: "item-1", Name: "Paneer Tikka", Price: 320}, nil)

		res, err := svc.Get(context.Background(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newMenuService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.MenuItem{}, errors.New("sql: no rows in result set"))

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestMenuService_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newMenuService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		price := 350.0
		err := svc.Update(context.Background(), dto.UpdateMenuItemRequest{Price: &price}, "item-1")

		assert.NoError(t, err)
	})

	t.Run("item missing", func(t *testing.T) {
		svc, mockRepo, _ := newMenuService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		price := 350.0
		err := svc.Update(context.Background(), dto.UpdateMenuItemRequest{Price: &price}, "missing")

		assert.Error(t, err)
	})
}

func TestMenuService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, mockRepo, _ := newMenuService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "item-1"))
	})

	t.Run("item missing", func(t *testing.T) {
		svc, mockRepo, _ := newMenuService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(context.Background(), "missing"))
	})
}
