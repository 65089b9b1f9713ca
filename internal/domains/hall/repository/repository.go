package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/hall/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type HallGuest interface {
	Insert(ctx context.Context, model model.HallGuest) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.HallGuest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HallGuest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HallGuest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type HallBooking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.HallBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.HallBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HallBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type HallBookingItem interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.HallBookingItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HallBookingItem, error)
}

type guestRepositoryImpl struct {
	gRepo.Repository[model.HallGuest]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGuest(db *postgres.Connection, otel otel.Otel) HallGuest {
	return &guestRepositoryImpl{
		Repository: gRepo.NewRepository[model.HallGuest](model.GuestEntityName, model.GuestTableName, model.GuestFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type bookingRepositoryImpl struct {
	gRepo.Repository[model.HallBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBooking(db *postgres.Connection, otel otel.Otel) HallBooking {
	return &bookingRepositoryImpl{
		Repository: gRepo.NewRepository[model.HallBooking](model.BookingEntityName, model.BookingTableName, model.BookingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type itemRepositoryImpl struct {
	gRepo.Repository[model.HallBookingItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewItem(db *postgres.Connection, otel otel.Otel) HallBookingItem {
	return &itemRepositoryImpl{
		Repository: gRepo.NewRepository[model.HallBookingItem](model.ItemEntityName, model.ItemTableName, model.ItemFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
