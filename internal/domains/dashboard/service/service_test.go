package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	bookingSvcMocks "hotelier/internal/domains/booking/service/mocks"
	"hotelier/internal/domains/dashboard/service"
	orderMocks "hotelier/internal/domains/order/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type dashboardServiceMocks struct {
	roomRepo    *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	orderRepo   *orderMocks.MockOrder
	bookingSvc  *bookingSvcMocks.MockBooking
}

func newDashboardService(t *testing.T) (service.Dashboard, dashboardServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := dashboardServiceMocks{
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		orderRepo:   orderMocks.NewMockOrder(ctrl),
		bookingSvc:  bookingSvcMocks.NewMockBooking(ctrl),
	}

	svc := service.New(m.roomRepo, m.bookingRepo, m.orderRepo, m.bookingSvc, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func TestDashboardService_Stats(t *testing.T) {
	t.Run("aggregates counts and earnings", func(t *testing.T) {
		svc, m := newDashboardService(t)

		roomCounts := map[string]int{
			constant.RoomStatusAvailable:   5,
			constant.RoomStatusOccupied:    3,
			constant.RoomStatusCleaning:    1,
			constant.RoomStatusMaintenance: 2,
		}

		m.roomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, filter gDto.FilterGroup) (int, error) {
				return roomStatusCount(filter, roomCounts), nil
			}).
			Times(4)

		m.bookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(3, nil)

		// First count is today's orders, second is the kitchen queue.
		gomock.InOrder(
			m.orderRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil),
			m.orderRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
		)

		bill := 5250.0
		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{ID: "booking-1", Status: constant.BookingStatusCompleted, BillAmount: &bill},
				{ID: "booking-2", Status: constant.BookingStatusCompleted, BillAmount: nil},
			}, nil)

		res, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 5, res.Rooms.Available)
		assert.Equal(t, 3, res.Rooms.Occupied)
		assert.Equal(t, 1, res.Rooms.Cleaning)
		assert.Equal(t, 2, res.Rooms.Maintenance)
		assert.Equal(t, 3, res.ActiveBookings)
		assert.Equal(t, 7, res.TodayOrders)
		assert.Equal(t, 4, res.KitchenQueue)
		assert.InDelta(t, 5250.0, res.TodayEarnings, 0.001)
	})

	t.Run("room count failure", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.roomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("connection refused"))

		_, err := svc.Stats(context.Background())

		assert.Error(t, err)
	})
}

func TestDashboardService_Reports(t *testing.T) {
	svc, m := newDashboardService(t)

	report := bookingDto.EarningsReportResponse{
		TotalEarnings:     126500,
		CompletedBookings: 18,
		RepairedBills:     2,
	}

	m.bookingSvc.EXPECT().
		Earnings(gomock.Any()).
		Return(report, nil)

	res, err := svc.Reports(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, report, res)
}

// roomStatusCount picks the stubbed count for whichever room status the
// filter asks about, so the per-status assertions stay meaningful.
func roomStatusCount(filter gDto.FilterGroup, counts map[string]int) int {
	for _, f := range filter.Filters {
		if flt, ok := f.(gDto.Filter); ok {
			if status, ok := flt.Value.(string); ok {
				return counts[status]
			}
		}
	}

	return 0
}
