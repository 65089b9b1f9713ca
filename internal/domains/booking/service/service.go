package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	orderModel "hotelier/internal/domains/order/model"
	orderRepo "hotelier/internal/domains/order/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	userModel "hotelier/internal/domains/user/model"
	userDto "hotelier/internal/domains/user/model/dto"
	userRepo "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CheckInResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Checkout(ctx context.Context, bookingID string) (dto.BillResponse, error)
	GetActive(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetHistory(ctx context.Context) (dto.GetBookingsResponse, error)
	GetMyBooking(ctx context.Context, guestID string) (dto.BookingResponse, error)
	SearchGuests(ctx context.Context, query string) (dto.GuestSearchResponse, error)
	GetBill(ctx context.Context, bookingID string) (dto.BillResponse, error)
	Earnings(ctx context.Context) (dto.EarningsReportResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	userRepo  userRepo.User
	userSvc   userService.User
	orderRepo orderRepo.Order
	txRunner  postgres.TxRunner
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	userSvc userService.User,
	orderRepo orderRepo.Order,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		userRepo:  userRepo,
		userSvc:   userSvc,
		orderRepo: orderRepo,
		txRunner:  txRunner,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func bookingFilter(field string, value any) gDto.FilterGroup {
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	roomFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomID,
				Table:    roomModel.TableName,
			},
		},
	}

	room, err := s.roomRepo.Get(ctx, roomFilter)
	if err != nil {
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to get room for check-in")

		return res, failure.NotFound(roomModel.EntityName)
	}

	if room.Status != constant.RoomStatusAvailable {
		return res, failure.Conflict("room is not available") // nolint:wrapcheck
	}

	var booking model.Booking

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		credentials, err := s.userSvc.IssueGuestCredentialsTx(ctx, tx, req.GuestName)
		if err != nil {
			return fmt.Errorf("failed to issue guest credentials: %w", err)
		}

		booking = req.ToModel(credentials.GuestID, credentials.Password, user)
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		occupied, err := s.roomRepo.TransitionStatusTx(ctx, tx, room.ID, constant.RoomStatusAvailable, constant.RoomStatusOccupied, user)
		if err != nil {
			return err
		}

		if !occupied {
			return failure.Conflict("room is not available") // nolint:wrapcheck
		}

		res.Credentials = credentials

		return nil
	})
	if err != nil {
		return dto.CheckInResponse{}, err
	}

	res.Booking.FromModel(booking)

	s.publisher.BookingCreated(ctx, constant.TopicBookingNew, events.BookingCreated{
		BookingID:  booking.ID,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		GuestName:  req.GuestName,
		CheckIn:    booking.CheckIn,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

// Update adjusts an ongoing stay: the expected check-out date and/or the
// guest's display name. Completed bookings are frozen.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, bookingFilter(model.FieldID, id))
	if err != nil || booking.ID == constant.Empty {
		return failure.NotFound(model.EntityName)
	}

	if booking.Status == constant.BookingStatusCompleted {
		return failure.Conflict("booking is already checked out") // nolint:wrapcheck
	}

	if req.ExpectedCheckOut != nil && !req.ExpectedCheckOut.After(booking.CheckIn) {
		return failure.BadRequestFromString("expected check-out must be after check-in")
	}

	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, bookingFilter(model.FieldID, id)); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if req.GuestName != constant.Empty {
		nameFields := shared.TransformFields(struct {
			FullName string `db:"full_name"`
		}{FullName: req.GuestName}, user)

		if err := s.userRepo.Update(ctx, nameFields, shared.FilterByID(booking.GuestID, userModel.FieldID, userModel.TableName)); err != nil {
			log.Warn().Err(err).Str("guest_id", booking.GuestID).Msg("failed to refresh guest display name")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

func (s *serviceImpl) Checkout(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, bookingFilter(model.FieldID, bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking for checkout")

		return res, failure.NotFound(model.EntityName)
	}

	if booking.Status == constant.BookingStatusCompleted {
		return res, failure.Conflict("booking is already checked out") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomID,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to get room for checkout")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	orders, err := s.billableOrders(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	checkedOutAt := timezone.Now()
	invoice := ComputeInvoice(booking.CheckIn, checkedOutAt, room.NightlyPrice, orders)

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		checkoutUpdate := dto.CheckoutUpdateRequest{
			Status:       constant.BookingStatusCompleted,
			CheckedOutAt: checkedOutAt,
			BillAmount:   invoice.GrandTotal,
		}
		fields := shared.TransformFields(checkoutUpdate, user)

		if err := s.repo.UpdateTx(ctx, tx, fields, bookingFilter(model.FieldID, booking.ID)); err != nil {
			return fmt.Errorf("failed to complete booking: %w", err)
		}

		if err := s.userSvc.DeactivateTx(ctx, tx, booking.GuestID); err != nil {
			return fmt.Errorf("failed to deactivate guest: %w", err)
		}

		cleaned, err := s.roomRepo.TransitionStatusTx(ctx, tx, booking.RoomID, constant.RoomStatusOccupied, constant.RoomStatusCleaning, user)
		if err != nil {
			return err
		}

		if !cleaned {
			log.Warn().Str("room_id", booking.RoomID).Msg("room was not occupied at checkout, leaving status untouched")
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return dto.BillResponse{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Nights:     invoice.Nights,
		RoomTotal:  invoice.RoomTotal,
		FoodTotal:  invoice.FoodTotal,
		Tax:        invoice.Tax,
		GrandTotal: invoice.GrandTotal,
		Final:      true,
	}, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := bookingFilter(model.FieldStatus, constant.BookingStatusActive)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for active bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings")

		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return res, fmt.Errorf("failed to get active bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		Page:    1,
		Limit:   constant.BookingHistoryLimit,
		SortBy:  model.FieldCheckedOutAt,
		SortDir: gDto.SortDirDesc,
	}
	filter := bookingFilter(model.FieldStatus, constant.BookingStatusCompleted)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booking history")

		return res, fmt.Errorf("failed to count booking history: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetMyBooking(ctx context.Context, guestID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldGuestID,
				Operator: gDto.FilterOperatorEq,
				Value:    guestID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.BookingStatusActive,
				Table:    model.TableName,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil || booking.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) SearchGuests(ctx context.Context, query string) (res dto.GuestSearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleGuest,
				Table:    userModel.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "search_username",
						Field:    userModel.FieldUsername,
						Operator: gDto.FilterOperatorLike,
						Value:    query,
						Table:    userModel.TableName,
					},
					gDto.Filter{
						ArgName:  "search_full_name",
						Field:    userModel.FieldFullName,
						Operator: gDto.FilterOperatorLike,
						Value:    query,
						Table:    userModel.TableName,
					},
				},
			},
		},
	}

	users, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("failed to search guests")

		return res, fmt.Errorf("failed to search guests: %w", err)
	}

	res.Guests = make([]userDto.UserResponse, len(users))
	for i, mod := range users {
		res.Guests[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) GetBill(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, bookingFilter(model.FieldID, bookingID))
	if err != nil {
		return res, failure.NotFound(model.EntityName)
	}

	room, err := s.roomRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomID,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to get room for bill")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	orders, err := s.billableOrders(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	checkOut := timezone.Now()
	final := booking.Status == constant.BookingStatusCompleted
	if final && booking.CheckedOutAt != nil {
		checkOut = *booking.CheckedOutAt
	}

	invoice := ComputeInvoice(booking.CheckIn, checkOut, room.NightlyPrice, orders)

	grandTotal := invoice.GrandTotal
	if final && booking.BillAmount != nil && *booking.BillAmount > 0 {
		grandTotal = *booking.BillAmount
	}

	return dto.BillResponse{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Nights:     invoice.Nights,
		RoomTotal:  invoice.RoomTotal,
		FoodTotal:  invoice.FoodTotal,
		Tax:        invoice.Tax,
		GrandTotal: grandTotal,
		Final:      final,
	}, nil
}

func (s *serviceImpl) Earnings(ctx context.Context) (res dto.EarningsReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Earnings")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	completed, err := s.repo.GetAll(ctx, gDto.QueryParams{}, bookingFilter(model.FieldStatus, constant.BookingStatusCompleted))
	if err != nil {
		log.Error().Err(err).Msg("failed to load completed bookings for earnings")

		return res, fmt.Errorf("failed to load completed bookings: %w", err)
	}

	res.CompletedBookings = len(completed)

	for _, booking := range completed {
		if booking.BillAmount != nil && *booking.BillAmount > 0 {
			res.TotalEarnings += *booking.BillAmount

			continue
		}

		repaired, err := s.repairBill(ctx, booking, user)
		if err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to repair stored bill, skipping")

			continue
		}

		res.TotalEarnings += repaired
		res.RepairedBills++
	}

	return res, nil
}

// repairBill recomputes a missing or zero stored bill with the standard
// formula and persists it, so the next earnings pass reads it directly.
func (s *serviceImpl) repairBill(ctx context.Context, booking model.Booking, user string) (float64, error) {
	room, err := s.roomRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomID,
				Table:    roomModel.TableName,
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get room: %w", err)
	}

	orders, err := s.billableOrders(ctx, booking.ID)
	if err != nil {
		return 0, err
	}

	checkOut := timezone.Now()
	if booking.CheckedOutAt != nil {
		checkOut = *booking.CheckedOutAt
	}

	invoice := ComputeInvoice(booking.CheckIn, checkOut, room.NightlyPrice, orders)

	repair := dto.RepairBillRequest{BillAmount: invoice.GrandTotal}
	fields := shared.TransformFields(repair, user)

	if err := s.repo.Update(ctx, fields, bookingFilter(model.FieldID, booking.ID)); err != nil {
		return 0, fmt.Errorf("failed to persist repaired bill: %w", err)
	}

	log.Info().
		Str("booking_id", booking.ID).
		Float64("bill_amount", invoice.GrandTotal).
		Msg("repaired stored bill amount")

	return invoice.GrandTotal, nil
}

func (s *serviceImpl) billableOrders(ctx context.Context, bookingID string) ([]orderModel.Order, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    orderModel.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    orderModel.TableName,
			},
			gDto.Filter{
				Field:    orderModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.OrderStatusCancelled,
				Table:    orderModel.TableName,
			},
		},
	}

	orders, err := s.orderRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load orders for billing")

		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	return orders, nil
}
