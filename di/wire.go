//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/internal/events"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	"github.com/google/wire"

	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	dashboardService "hotelier/internal/domains/dashboard/service"
	hallRepository "hotelier/internal/domains/hall/repository"
	hallService "hotelier/internal/domains/hall/service"
	menuRepository "hotelier/internal/domains/menu/repository"
	menuService "hotelier/internal/domains/menu/service"
	orderRepository "hotelier/internal/domains/order/repository"
	orderService "hotelier/internal/domains/order/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	hallHandler "hotelier/internal/handlers/hall"
	menuHandler "hotelier/internal/handlers/menu"
	orderHandler "hotelier/internal/handlers/order"
	roomHandler "hotelier/internal/handlers/room"
	userHandler "hotelier/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTxRunner,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderRepository.NewItem,
	orderService.New,
)

var hallDomain = wire.NewSet(
	hallRepository.NewGuest,
	hallRepository.NewBooking,
	hallRepository.NewItem,
	hallService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	menuDomain,
	orderDomain,
	hallDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	menuHandler.New,
	orderHandler.New,
	hallHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
