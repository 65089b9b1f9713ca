package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	pgMocks "hotelier/infras/postgres/mocks"
	hallMocks "hotelier/internal/domains/hall/mocks"
	"hotelier/internal/domains/hall/model"
	"hotelier/internal/domains/hall/model/dto"
	"hotelier/internal/domains/hall/service"
	menuMocks "hotelier/internal/domains/menu/mocks"
	menuModel "hotelier/internal/domains/menu/model"
	eventMocks "hotelier/internal/events/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type hallServiceMocks struct {
	guestRepo   *hallMocks.MockHallGuest
	bookingRepo *hallMocks.MockHallBooking
	itemRepo    *hallMocks.MockHallBookingItem
	menuRepo    *menuMocks.MockMenu
	txRunner    *pgMocks.MockTxRunner
	publisher   *eventMocks.MockPublisher
}

func newHallService(t *testing.T) (service.Hall, hallServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := hallServiceMocks{
		guestRepo:   hallMocks.NewMockHallGuest(ctrl),
		bookingRepo: hallMocks.NewMockHallBooking(ctrl),
		itemRepo:    hallMocks.NewMockHallBookingItem(ctrl),
		menuRepo:    menuMocks.NewMockMenu(ctrl),
		txRunner:    pgMocks.NewMockTxRunner(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
	}

	svc := service.New(m.guestRepo, m.bookingRepo, m.itemRepo, m.menuRepo, m.txRunner, m.publisher, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestHallService_CheckAvailability(t *testing.T) {
	t.Run("free date", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{}, nil)

		res, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			EventDate: "2026-10-12",
			Session:   constant.HallSessionMorning,
		})

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Empty(t, res.BlockingBookingID)
	})

	t.Run("full day booking blocks a session", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{
				{ID: "hall-booking-1", Session: constant.HallSessionFullDay, Status: constant.HallBookingStatusConfirmed},
			}, nil)

		res, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			EventDate: "2026-10-12",
			Session:   constant.HallSessionEvening,
		})

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, "hall-booking-1", res.BlockingBookingID)
	})

	t.Run("other session stays free", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{
				{ID: "hall-booking-1", Session: constant.HallSessionMorning, Status: constant.HallBookingStatusConfirmed},
			}, nil)

		res, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			EventDate: "2026-10-12",
			Session:   constant.HallSessionEvening,
		})

		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := newHallService(t)

		_, err := svc.CheckAvailability(context.Background(), dto.AvailabilityRequest{
			EventDate: "12-10-2026",
			Session:   constant.HallSessionMorning,
		})

		assert.Error(t, err)
	})
}

func TestHallService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	req := dto.CreateHallBookingRequest{
		Guest: dto.HallGuestRequest{
			Name:  "Sunita Sharma",
			Phone: "9876501234",
		},
		EventDate:     "2026-11-20",
		Session:       constant.HallSessionEvening,
		TotalAmount:   50000,
		AdvanceAmount: 10000,
		Items: []dto.HallBookingItemRequest{
			{MenuItemID: "item-1", Quantity: 100},
		},
	}

	t.Run("new guest booking", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{}, nil)
		m.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.HallGuest{}, nil)
		m.menuRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(menuModel.MenuItem{ID: "item-1", Name: "Veg Thali", Price: 250, Available: true}, nil)
		m.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)
		m.guestRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.itemRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().
			HallBookingCreated(gomock.Any(), constant.TopicHallBookingNew, gomock.Any())

		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-11-20", res.EventDate)
		assert.Equal(t, constant.HallSessionEvening, res.Session)
		assert.Equal(t, constant.HallBookingStatusConfirmed, res.Status)
		assert.Len(t, res.Items, 1)
		assert.InDelta(t, 250.0, res.Items[0].Price, 0.001)
	})

	t.Run("existing guest is reused by phone", func(t *testing.T) {
		svc, m := newHallService(t)

		existing := model.HallGuest{ID: "hall-guest-1", Name: "Sunita Sharma", Phone: "9876501234"}

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{}, nil)
		m.guestRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)
		m.menuRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(menuModel.MenuItem{ID: "item-1", Name: "Veg Thali", Price: 250, Available: true}, nil)
		m.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(runTx)
		m.bookingRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.itemRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().
			HallBookingCreated(gomock.Any(), constant.TopicHallBookingNew, gomock.Any())

		res, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "hall-guest-1", res.HallGuestID)
	})

	t.Run("session already booked", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.HallBooking{
				{ID: "hall-booking-1", Session: constant.HallSessionEvening, Status: constant.HallBookingStatusConfirmed},
			}, nil)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
	})
}

func TestHallService_Cancel(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	t.Run("successful cancel", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.HallBooking{ID: "hall-booking-1", Status: constant.HallBookingStatusConfirmed}, nil)
		m.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Cancel(ctx, "hall-booking-1")

		assert.NoError(t, err)
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.HallBooking{ID: "hall-booking-1", Status: constant.HallBookingStatusCancelled}, nil)

		err := svc.Cancel(ctx, "hall-booking-1")

		assert.Error(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newHallService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.HallBooking{}, nil)

		err := svc.Cancel(ctx, "missing")

		assert.Error(t, err)
	})
}

func TestHallService_UpdatePayment(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	svc, m := newHallService(t)

	advance := 15000.0

	m.bookingRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.HallBooking{ID: "hall-booking-1", Status: constant.HallBookingStatusConfirmed}, nil)
	m.bookingRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.UpdatePayment(ctx, dto.UpdatePaymentRequest{AdvanceAmount: &advance}, "hall-booking-1")

	assert.NoError(t, err)
}

func TestHallService_GetBooking(t *testing.T) {
	svc, m := newHallService(t)

	eventDate, _ := time.Parse(constant.DateOnlyFormat, "2026-11-20")

	m.bookingRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.HallBooking{ID: "hall-booking-1", EventDate: eventDate, Session: constant.HallSessionFullDay}, nil)
	m.itemRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.HallBookingItem{
			{ID: "hbi-1", HallBookingID: "hall-booking-1", Name: "Veg Thali", Price: 250, Quantity: 100},
		}, nil)

	res, err := svc.GetBooking(context.Background(), "hall-booking-1")

	assert.NoError(t, err)
	assert.Equal(t, "2026-11-20", res.EventDate)
	assert.Len(t, res.Items, 1)
}

func TestHallService_GetGuests(t *testing.T) {
	svc, m := newHallService(t)

	m.guestRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	m.guestRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.HallGuest{{ID: "hall-guest-1", Name: "Sunita Sharma", Phone: "9876501234"}}, nil)

	res, err := svc.GetGuests(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Guests, 1)
}
