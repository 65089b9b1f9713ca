package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/hall/model"
	"hotelier/internal/domains/hall/model/dto"
	"hotelier/internal/domains/hall/repository"
	menuModel "hotelier/internal/domains/menu/model"
	menuRepo "hotelier/internal/domains/menu/repository"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Hall interface {
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateHallBookingRequest) (dto.HallBookingResponse, error)
	UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) error
	UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) error
	Cancel(ctx context.Context, id string) error
	GetBookings(ctx context.Context, req gDto.QueryParams) (dto.GetHallBookingsResponse, error)
	GetBooking(ctx context.Context, id string) (dto.HallBookingResponse, error)
	GetGuests(ctx context.Context, req gDto.QueryParams) (dto.GetHallGuestsResponse, error)
}

type serviceImpl struct {
	guestRepo   repository.HallGuest
	bookingRepo repository.HallBooking
	itemRepo    repository.HallBookingItem
	menuRepo    menuRepo.Menu
	txRunner    postgres.TxRunner
	publisher   events.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	guestRepo repository.HallGuest,
	bookingRepo repository.HallBooking,
	itemRepo repository.HallBookingItem,
	menuRepo menuRepo.Menu,
	txRunner postgres.TxRunner,
	publisher events.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Hall {
	return &serviceImpl{
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		menuRepo:    menuRepo,
		txRunner:    txRunner,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

func bookingIDFilter(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.BookingFieldID, model.BookingTableName)
}

// sameDateBookings loads all non-cancelled hall bookings on the given
// calendar date. Dates are compared date-only; time-of-day never matters.
func (s *serviceImpl) sameDateBookings(ctx context.Context, eventDate time.Time) ([]model.HallBooking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.BookingFieldEventDate,
				Operator: gDto.FilterOperatorEq,
				Value:    eventDate.Format(constant.DateOnlyFormat),
				Table:    model.BookingTableName,
			},
			gDto.Filter{
				Field:    model.BookingFieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.HallBookingStatusCancelled,
				Table:    model.BookingTableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load hall bookings for availability check")

		return nil, fmt.Errorf("failed to load hall bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) blockingBooking(bookings []model.HallBooking, session string) string {
	for _, booking := range bookings {
		if model.Blocks(booking.Session, session) {
			return booking.ID
		}
	}

	return constant.Empty
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	eventDate, err := time.Parse(constant.DateOnlyFormat, req.EventDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid event date")
	}

	bookings, err := s.sameDateBookings(ctx, eventDate)
	if err != nil {
		return res, err
	}

	blocking := s.blockingBooking(bookings, req.Session)

	res.Available = blocking == constant.Empty
	res.BlockingBookingID = blocking

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallBookingRequest) (res dto.HallBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	eventDate, err := req.ParsedEventDate()
	if err != nil {
		return res, failure.BadRequestFromString("invalid event date")
	}

	bookings, err := s.sameDateBookings(ctx, eventDate)
	if err != nil {
		return res, err
	}

	if blocking := s.blockingBooking(bookings, req.Session); blocking != constant.Empty {
		return res, failure.Conflict("hall is already booked for that date and session") // nolint:wrapcheck
	}

	items := make([]model.HallBookingItem, 0, len(req.Items))

	guest, newGuest, err := s.resolveGuest(ctx, req.Guest, user)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(guest.ID, eventDate, user)

	for _, item := range req.Items {
		menuItem, err := s.menuRepo.Get(ctx, shared.FilterByID(item.MenuItemID, menuModel.FieldID, menuModel.TableName))
		if err != nil || menuItem.ID == constant.Empty {
			return res, failure.NotFound(menuModel.EntityName)
		}

		items = append(items, dto.NewHallBookingItem(booking.ID, menuItem, item.Quantity))
	}

	err = s.txRunner.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if newGuest {
			if err := s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
				return fmt.Errorf("failed to insert hall guest: %w", err)
			}
		}

		if err := s.bookingRepo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert hall booking: %w", err)
		}

		if len(items) > 0 {
			if err := s.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
				return fmt.Errorf("failed to insert hall booking items: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.publisher.HallBookingCreated(ctx, constant.TopicHallBookingNew, events.HallBookingCreated{
		HallBookingID: booking.ID,
		GuestID:       guest.ID,
		EventDate:     booking.EventDate,
		Session:       booking.Session,
	})

	res.FromModel(booking)
	res.WithItems(items)

	return res, nil
}

// resolveGuest finds an existing hall guest by phone or prepares a new
// record. A newly supplied address refreshes the stored one.
func (s *serviceImpl) resolveGuest(ctx context.Context, req dto.HallGuestRequest, user string) (model.HallGuest, bool, error) {
	phoneFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.GuestFieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Phone,
				Table:    model.GuestTableName,
			},
		},
	}

	existing, err := s.guestRepo.Get(ctx, phoneFilter)
	if err != nil || existing.ID == constant.Empty {
		return req.ToModel(user), true, nil
	}

	if req.Address != constant.Empty && req.Address != existing.Address {
		fields := shared.TransformFields(struct {
			Address string `db:"address"`
		}{Address: req.Address}, user)

		if err := s.guestRepo.Update(ctx, fields, phoneFilter); err != nil {
			log.Warn().Err(err).Str("hall_guest_id", existing.ID).Msg("failed to refresh hall guest address")
		} else {
			existing.Address = req.Address
		}
	}

	return existing, false, nil
}

func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, bookingIDFilter(id))
	if err != nil || booking.ID == constant.Empty {
		return failure.NotFound(model.BookingEntityName)
	}

	fields := shared.TransformFields(req, user)

	if err = s.bookingRepo.Update(ctx, fields, bookingIDFilter(id)); err != nil {
		log.Error().Err(err).Str("hall_booking_id", id).Msg("failed to update hall booking payment")

		return fmt.Errorf("failed to update hall booking payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateNotes")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, bookingIDFilter(id))
	if err != nil || booking.ID == constant.Empty {
		return failure.NotFound(model.BookingEntityName)
	}

	fields := shared.TransformFields(req, user)

	if err = s.bookingRepo.Update(ctx, fields, bookingIDFilter(id)); err != nil {
		log.Error().Err(err).Str("hall_booking_id", id).Msg("failed to update hall booking notes")

		return fmt.Errorf("failed to update hall booking notes: %w", err)
	}

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, bookingIDFilter(id))
	if err != nil || booking.ID == constant.Empty {
		return failure.NotFound(model.BookingEntityName)
	}

	if booking.Status == constant.HallBookingStatusCancelled {
		return failure.Conflict("hall booking is already cancelled") // nolint:wrapcheck
	}

	fields := shared.TransformFields(struct {
		Status string `db:"status"`
	}{Status: constant.HallBookingStatusCancelled}, user)

	if err = s.bookingRepo.Update(ctx, fields, bookingIDFilter(id)); err != nil {
		log.Error().Err(err).Str("hall_booking_id", id).Msg("failed to cancel hall booking")

		return fmt.Errorf("failed to cancel hall booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetBookings(ctx context.Context, req gDto.QueryParams) (res dto.GetHallBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == constant.Empty {
		req.SortBy = model.BookingFieldEventDate
		req.SortDir = gDto.SortDirDesc
	}

	total, err := s.bookingRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count hall bookings")

		return res, fmt.Errorf("failed to count hall bookings: %w", err)
	}

	models, err := s.bookingRepo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall bookings")

		return res, fmt.Errorf("failed to get hall bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) GetBooking(ctx context.Context, id string) (res dto.HallBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, bookingIDFilter(id))
	if err != nil || booking.ID == constant.Empty {
		return res, failure.NotFound(model.BookingEntityName)
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldHallBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.ItemTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("hall_booking_id", id).Msg("failed to get hall booking items")

		return res, fmt.Errorf("failed to get hall booking items: %w", err)
	}

	res.FromModel(booking)
	res.WithItems(items)

	return res, nil
}

func (s *serviceImpl) GetGuests(ctx context.Context, req gDto.QueryParams) (res dto.GetHallGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGuests")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.guestRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count hall guests")

		return res, fmt.Errorf("failed to count hall guests: %w", err)
	}

	models, err := s.guestRepo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall guests")

		return res, fmt.Errorf("failed to get hall guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
