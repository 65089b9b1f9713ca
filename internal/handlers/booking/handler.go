package booking

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CheckIn)
		routerGroup.Put("/{id}", handler.Update)
		routerGroup.Get("/", handler.GetActiveBookings)
		routerGroup.Get("/history", handler.GetHistory)
		routerGroup.Get("/mybooking", handler.GetMyBooking)
		routerGroup.Get("/guests", handler.SearchGuests)
		routerGroup.Get("/earnings", handler.GetEarnings)
		routerGroup.Get("/{id}/bill", handler.GetBill)
		routerGroup.Post("/{id}/checkout", handler.Checkout)
	})
}

// CheckIn creates a booking and issues guest credentials.
// @Summary Check a guest in
// @Description Create a booking for an available room: the guest account is created and its one-time credentials are returned.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CheckInResponse] "Booking with one-time guest credentials"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check guest in")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked in by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// Update adjusts an active booking.
// @Summary Update a booking
// @Description Adjust the expected check-out date or the guest's display name on an active booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// Checkout completes a booking and produces the final bill.
// @Summary Check a guest out
// @Description Complete the booking: compute the final bill, deactivate the guest account and send the room to cleaning.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BillResponse] "Final bill"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Checkout(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check guest out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked out by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetActiveBookings lists bookings that are currently checked in.
// @Summary Get active bookings
// @Description Retrieve all active bookings with pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of active bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetActive(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetHistory lists the most recently completed bookings.
// @Summary Get booking history
// @Description Retrieve the most recent completed bookings, newest checkout first.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Completed bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	bookings, err := handler.service.GetHistory(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking history retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetMyBooking returns the caller's active booking.
// @Summary Get my booking
// @Description Retrieve the authenticated guest's active booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.BookingResponse] "Active booking"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/mybooking [get]
// @Security BearerAuth
func (handler *Handler) GetMyBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	booking, err := handler.service.GetMyBooking(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest booking retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, booking)
}

// SearchGuests searches guest accounts by name or username.
// @Summary Search guests
// @Description Search guest accounts by full name or username.
// @Tags Booking
// @Accept json
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {object} response.Data[dto.GuestSearchResponse] "Matching guests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/guests [get]
// @Security BearerAuth
func (handler *Handler) SearchGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchGuests")
	defer scope.End()

	query := r.URL.Query().Get("query")
	if query == "" {
		response.WithError(w, failure.BadRequestFromString("query parameter is required"))

		return
	}

	guests, err := handler.service.SearchGuests(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guests searched successfully")

	response.WithJSON(w, http.StatusOK, guests)
}

// GetBill previews or retrieves the bill for a booking.
// @Summary Get a booking's bill
// @Description Retrieve the bill for a booking; recomputed live while the stay is ongoing.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BillResponse] "Bill breakdown"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/bill [get]
// @Security BearerAuth
func (handler *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bill, err := handler.service.GetBill(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill retrieved successfully")

	response.WithJSON(w, http.StatusOK, bill)
}

// GetEarnings reports total earnings over completed bookings.
// @Summary Get earnings report
// @Description Total earnings across completed bookings; missing stored bills are recomputed and persisted.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.EarningsReportResponse] "Earnings report"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	report, err := handler.service.Earnings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get earnings report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Earnings report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
