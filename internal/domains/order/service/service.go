package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	menuModel "hotelier/internal/domains/menu/model"
	menuRepo "hotelier/internal/domains/menu/repository"
	"hotelier/internal/domains/order/model"
	"hotelier/internal/domains/order/model/dto"
	"hotelier/internal/domains/order/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	KitchenQueue(ctx context.Context, req gDto.QueryParams) (dto.GetOrdersResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) error
	MyOrders(ctx context.Context) (dto.GetOrdersResponse, error)
	Get(ctx context.Context, id string) (dto.OrderResponse, error)
}

type serviceImpl struct {
	repo        repository.Order
	itemRepo    repository.OrderItem
	bookingRepo bookingRepo.Booking
	menuRepo    menuRepo.Menu
	txRunner    postgres.TxRunner
	publisher   events.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Order,
	itemRepo repository.OrderItem,
	bookingRepo bookingRepo.Booking,
	menuRepo menuRepo.Menu,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:        repo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		menuRepo:    menuRepo,
		txRunner:    txRunner,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

func orderFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			},
		},
	}
}

// activeBookingOf resolves the caller's ACTIVE booking; guests can only
// order against their own stay.
func (s *serviceImpl) activeBookingOf(ctx context.Context, guestID string) (bookingModel.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guestID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.BookingStatusActive,
				Table:    bookingModel.TableName,
			},
		},
	}

	booking, err := s.bookingRepo.Get(ctx, filter)
	if err != nil || booking.ID == constant.Empty {
		return booking, failure.NotFound(bookingModel.EntityName)
	}

	return booking, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.activeBookingOf(ctx, user)
	if err != nil {
		return res, err
	}

	menuItems := make(map[string]menuModel.MenuItem, len(req.Items))
	var total float64

	for _, item := range req.Items {
		menuItem, err := s.menuRepo.Get(ctx, shared.FilterByID(item.MenuItemID, menuModel.FieldID, menuModel.TableName))
		if err != nil || menuItem.ID == constant.Empty {
			return res, failure.NotFound(menuModel.EntityName)
		}

		if !menuItem.Available {
			return res, failure.BadRequestFromString(fmt.Sprintf("menu item %s is not available", menuItem.Name))
		}

		menuItems[item.MenuItemID] = menuItem
		total += menuItem.Price * float64(item.Quantity)
	}

	order := req.ToModel(booking.ID, total, user)

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = dto.NewOrderItem(order.ID, menuItems[item.MenuItemID], item.Quantity)
	}

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		if err := s.itemRepo.InsertBulkTx(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.publisher.OrderCreated(ctx, constant.TopicOrderNew, events.OrderCreated{
		OrderID:   order.ID,
		BookingID: booking.ID,
		Total:     order.Total,
		Items:     len(orderItems),
	})

	res.FromModel(order)
	res.WithItems(orderItems)

	return res, nil
}

func (s *serviceImpl) KitchenQueue(ctx context.Context, req gDto.QueryParams) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".KitchenQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.OrderStatusPending, constant.OrderStatusPreparing},
				Table:    model.TableName,
			},
		},
	}

	if req.SortBy == constant.Empty {
		req.SortBy = constant.FieldCreatedAt
		req.SortDir = gDto.SortDirAsc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count kitchen queue")

		return res, fmt.Errorf("failed to count kitchen queue: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get kitchen queue")

		return res, fmt.Errorf("failed to get kitchen queue: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateOrderStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	order, err := s.repo.Get(ctx, orderFilter(model.FieldID, id))
	if err != nil || order.ID == constant.Empty {
		return failure.NotFound(model.EntityName)
	}

	if !model.CanTransition(order.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot change order status from %s to %s", order.Status, req.Status))
	}

	fields := shared.TransformFields(dto.StatusUpdate{Status: req.Status}, user)

	if err = s.repo.Update(ctx, fields, orderFilter(model.FieldID, id)); err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to update order status")

		return fmt.Errorf("failed to update order status: %w", err)
	}

	s.publisher.OrderStatusChanged(ctx, constant.TopicOrderStatus, events.OrderStatusChanged{
		OrderID:   order.ID,
		BookingID: order.BookingID,
		Status:    req.Status,
	})

	return nil
}

func (s *serviceImpl) MyOrders(ctx context.Context) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MyOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.activeBookingOf(ctx, user)
	if err != nil {
		return res, err
	}

	filter := orderFilter(model.FieldBookingID, booking.ID)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest orders")

		return res, fmt.Errorf("failed to get guest orders: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.repo.Get(ctx, orderFilter(model.FieldID, id))
	if err != nil || order.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName)
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.ItemTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("order_id", id).Msg("failed to get order items")

		return res, fmt.Errorf("failed to get order items: %w", err)
	}

	res.FromModel(order)
	res.WithItems(items)

	return res, nil
}
