package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	bookingRepo "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	"hotelier/internal/domains/dashboard/model/dto"
	orderModel "hotelier/internal/domains/order/model"
	orderRepo "hotelier/internal/domains/order/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Reports(ctx context.Context) (bookingDto.EarningsReportResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	orderRepo   orderRepo.Order
	bookingSvc  bookingService.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	orderRepo orderRepo.Order,
	bookingSvc bookingService.Booking,
	cfg *config.Config,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		orderRepo:   orderRepo,
		bookingSvc:  bookingSvc,
		cfg:         cfg,
		otel:        otel,
	}
}

func statusFilter(table, field, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    table,
			},
		},
	}
}

func startOfToday() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomCounts := map[string]*int{
		constant.RoomStatusAvailable:   &res.Rooms.Available,
		constant.RoomStatusOccupied:    &res.Rooms.Occupied,
		constant.RoomStatusCleaning:    &res.Rooms.Cleaning,
		constant.RoomStatusMaintenance: &res.Rooms.Maintenance,
	}

	for status, target := range roomCounts {
		count, err := s.roomRepo.Count(ctx, statusFilter(roomModel.TableName, roomModel.FieldStatus, status))
		if err != nil {
			log.Error().Err(err).Str("status", status).Msg("failed to count rooms for dashboard")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		*target = count
	}

	res.ActiveBookings, err = s.bookingRepo.Count(ctx, statusFilter(bookingModel.TableName, bookingModel.FieldStatus, constant.BookingStatusActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to count active bookings for dashboard")

		return res, fmt.Errorf("failed to count active bookings: %w", err)
	}

	todayStart := startOfToday()

	res.TodayOrders, err = s.orderRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    todayStart,
				Table:    orderModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count today orders for dashboard")

		return res, fmt.Errorf("failed to count today orders: %w", err)
	}

	res.KitchenQueue, err = s.orderRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    orderModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{constant.OrderStatusPending, constant.OrderStatusPreparing},
				Table:    orderModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count kitchen queue for dashboard")

		return res, fmt.Errorf("failed to count kitchen queue: %w", err)
	}

	res.TodayEarnings, err = s.todayEarnings(ctx, todayStart)
	if err != nil {
		return res, err
	}

	return res, nil
}

// todayEarnings sums stored bills of bookings checked out since midnight.
// Unrepaired zero bills are left to the reports path; the stat stays cheap.
func (s *serviceImpl) todayEarnings(ctx context.Context, todayStart time.Time) (float64, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.BookingStatusCompleted,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckedOutAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    todayStart,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load today's completed bookings for dashboard")

		return 0, fmt.Errorf("failed to load today's completed bookings: %w", err)
	}

	var total float64
	for _, booking := range bookings {
		if booking.BillAmount != nil {
			total += *booking.BillAmount
		}
	}

	return total, nil
}

func (s *serviceImpl) Reports(ctx context.Context) (res bookingDto.EarningsReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reports")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.bookingSvc.Earnings(ctx)
}
