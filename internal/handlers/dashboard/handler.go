package dashboard

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/dashboard/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/reports", handler.GetReports)
	})
}

// GetStats returns the live operational overview.
// @Summary Get dashboard statistics
// @Description Room counts per status, active bookings, today's orders, kitchen queue depth and today's earnings.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetReports returns the earnings report.
// @Summary Get earnings report
// @Description Total earnings over completed bookings, repairing missing stored bills along the way.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[bookingDto.EarningsReportResponse] "Earnings report"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/reports [get]
// @Security BearerAuth
func (handler *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReports")
	defer scope.End()

	report, err := handler.service.Reports(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get earnings report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Earnings report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
