package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	s3Mocks "hotelier/infras/s3/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type roomServiceMocks struct {
	repo        *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	s3          *s3Mocks.MockS3
}

func newRoomService(t *testing.T) (service.Room, roomServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := roomServiceMocks{
		repo:        roomMocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		s3:          s3Mocks.NewMockS3(ctrl),
	}

	// Cache writes and invalidations happen on detached goroutines.
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookingRepo, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func cacheMiss(m roomServiceMocks) {
	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis: nil")).
		AnyTimes()
}

func TestRoomService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")

	req := dto.CreateRoomRequest{
		Number:       "101",
		Type:         "DELUXE",
		Occupancy:    2,
		NightlyPrice: 2500,
	}

	t.Run("successful create", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, room model.Room) error {
				assert.Equal(t, "101", room.Number)
				assert.Equal(t, constant.RoomStatusAvailable, room.Status)

				return nil
			})

		err := svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, m := newRoomService(t)
		cacheMiss(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Number: "101", Status: constant.RoomStatusAvailable}, nil)

		res, err := svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newRoomService(t)
		cacheMiss(m)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	svc, m := newRoomService(t)
	cacheMiss(m)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{
			{ID: "room-1", Number: "101"},
			{ID: "room-2", Number: "102"},
		}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	tests := []struct {
		name      string
		current   string
		requested string
		wantErr   bool
	}{
		{
			name:      "cleaning back to available",
			current:   constant.RoomStatusCleaning,
			requested: constant.RoomStatusAvailable,
		},
		{
			name:      "available into maintenance",
			current:   constant.RoomStatusAvailable,
			requested: constant.RoomStatusMaintenance,
		},
		{
			name:      "occupied cannot skip cleaning",
			current:   constant.RoomStatusOccupied,
			requested: constant.RoomStatusAvailable,
			wantErr:   true,
		},
		{
			name:      "maintenance cannot go occupied",
			current:   constant.RoomStatusMaintenance,
			requested: constant.RoomStatusOccupied,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newRoomService(t)

			m.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Room{ID: "room-1", Status: tt.current}, nil)

			if !tt.wantErr {
				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: tt.requested}, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("same status is a no-op", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Status: constant.RoomStatusAvailable}, nil)

		err := svc.UpdateStatus(ctx, dto.UpdateRoomStatusRequest{Status: constant.RoomStatusAvailable}, "room-1")

		assert.NoError(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), "room-1")

		assert.NoError(t, err)
	})

	t.Run("room has an active booking", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		m.bookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Delete(context.Background(), "room-1")

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newRoomService(t)

		m.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
	})
}
