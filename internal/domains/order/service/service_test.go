package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	pgMocks "hotelier/infras/postgres/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	menuMocks "hotelier/internal/domains/menu/mocks"
	menuModel "hotelier/internal/domains/menu/model"
	orderMocks "hotelier/internal/domains/order/mocks"
	"hotelier/internal/domains/order/model"
	"hotelier/internal/domains/order/model/dto"
	"hotelier/internal/domains/order/service"
	eventMocks "hotelier/internal/events/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type orderServiceMocks struct {
	repo        *orderMocks.MockOrder
	itemRepo    *orderMocks.MockOrderItem
	bookingRepo *bookingMocks.MockBooking
	menuRepo    *menuMocks.MockMenu
	txRunner    *pgMocks.MockTxRunner
	publisher   *eventMocks.MockPublisher
}

func newOrderService(t *testing.T) (service.Order, orderServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := orderServiceMocks{
		repo:        orderMocks.NewMockOrder(ctrl),
		itemRepo:    orderMocks.NewMockOrderItem(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		menuRepo:    menuMocks.NewMockMenu(ctrl),
		txRunner:    pgMocks.NewMockTxRunner(ctrl),
		publisher:   eventMocks.NewMockPublisher(ctrl),
	}

	svc := service.New(m.repo, m.itemRepo, m.bookingRepo, m.menuRepo, m.txRunner, m.publisher, &config.Config{}, mocks.NewOtel())

	return svc, m
}

func guestContext(guestID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, guestID)
}

func TestOrderService_Create(t *testing.T) {
	activeBooking := bookingModel.Booking{
		ID:      "booking-1",
		GuestID: "guest-1",
		Status:  constant.BookingStatusActive,
	}

	menuItem := menuModel.MenuItem{
		ID:        "item-1",
		Name:      "Paneer Tikka",
		Price:     320,
		Available: true,
	}

	req := dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{MenuItemID: "item-1", Quantity: 2},
		},
	}

	t.Run("successful order", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking, nil)
		m.menuRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(menuItem, nil)
		m.txRunner.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})
		m.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.itemRepo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().
			OrderCreated(gomock.Any(), constant.TopicOrderNew, gomock.Any())

		res, err := svc.Create(guestContext("guest-1"), req)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.BookingID)
		assert.Equal(t, constant.OrderStatusPending, res.Status)
		// Price comes from the menu snapshot, not the request.
		assert.InDelta(t, 640.0, res.Total, 0.001)
		assert.Len(t, res.Items, 1)
		assert.InDelta(t, 320.0, res.Items[0].Price, 0.001)
	})

	t.Run("no active booking", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, errors.New("sql: no rows in result set"))

		_, err := svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
	})

	t.Run("menu item unavailable", func(t *testing.T) {
		svc, m := newOrderService(t)

		unavailable := menuItem
		unavailable.Available = false

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking, nil)
		m.menuRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unavailable, nil)

		_, err := svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
	})

	t.Run("menu item missing", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.bookingRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeBooking, nil)
		m.menuRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(menuModel.MenuItem{}, errors.New("sql: no rows in result set"))

		_, err := svc.Create(guestContext("guest-1"), req)

		assert.Error(t, err)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	pendingOrder := model.Order{
		ID:        "order-1",
		BookingID: "booking-1",
		Status:    constant.OrderStatusPending,
	}

	t.Run("legal transition", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingOrder, nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().
			OrderStatusChanged(gomock.Any(), constant.TopicOrderStatus, gomock.Any())

		err := svc.UpdateStatus(guestContext("staff-1"), dto.UpdateOrderStatusRequest{Status: constant.OrderStatusPreparing}, "order-1")

		assert.NoError(t, err)
	})

	t.Run("illegal transition", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pendingOrder, nil)

		err := svc.UpdateStatus(guestContext("staff-1"), dto.UpdateOrderStatusRequest{Status: constant.OrderStatusDelivered}, "order-1")

		assert.Error(t, err)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, m := newOrderService(t)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Order{}, nil)

		err := svc.UpdateStatus(guestContext("staff-1"), dto.UpdateOrderStatusRequest{Status: constant.OrderStatusPreparing}, "missing")

		assert.Error(t, err)
	})
}

func TestOrderService_KitchenQueue(t *testing.T) {
	svc, m := newOrderService(t)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Order{
			{ID: "order-1", Status: constant.OrderStatusPending},
			{ID: "order-2", Status: constant.OrderStatusPreparing},
		}, nil)

	res, err := svc.KitchenQueue(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Orders, 2)
}

func TestOrderService_MyOrders(t *testing.T) {
	svc, m := newOrderService(t)

	m.bookingRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "booking-1", Status: constant.BookingStatusActive}, nil)
	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Order{
			{ID: "order-1", BookingID: "booking-1", Status: constant.OrderStatusDelivered},
		}, nil)

	res, err := svc.MyOrders(guestContext("guest-1"))

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Orders, 1)
}
