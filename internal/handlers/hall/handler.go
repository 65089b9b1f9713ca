package hall

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hall/model/dto"
	"hotelier/internal/domains/hall/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hall", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Post("/bookings", handler.CreateHallBooking)
		routerGroup.Get("/bookings", handler.GetHallBookings)
		routerGroup.Get("/bookings/{id}", handler.GetHallBookingByID)
		routerGroup.Put("/bookings/{id}/payment", handler.UpdatePayment)
		routerGroup.Put("/bookings/{id}/notes", handler.UpdateNotes)
		routerGroup.Delete("/bookings/{id}", handler.CancelHallBooking)
		routerGroup.Get("/guests", handler.GetHallGuests)
	})
}

// CheckAvailability reports whether the hall is free for a date and session.
// @Summary Check hall availability
// @Description Check whether the banquet hall is free on a date for a session. Full-day reservations block every session.
// @Tags Hall
// @Accept json
// @Produce json
// @Param event_date query string true "Event date (YYYY-MM-DD)"
// @Param session query string true "Session (MORNING, EVENING, FULL_DAY)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability with blocking booking ID when taken"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{
		EventDate: r.URL.Query().Get("event_date"),
		Session:   r.URL.Query().Get("session"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check hall availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// CreateHallBooking reserves the hall for an event.
// @Summary Create a hall booking
// @Description Reserve the hall for a date and session, registering or reusing the hall guest by phone number.
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallBookingRequest true "Create Hall Booking Request"
// @Success 201 {object} response.Data[dto.HallBookingResponse] "Hall booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateHallBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHallBooking")
	defer scope.End()

	req := dto.CreateHallBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall booking created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetHallBookings lists hall bookings.
// @Summary Get hall bookings
// @Description Retrieve hall bookings, newest event first.
// @Tags Hall
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetHallBookingsResponse] "List of hall bookings"
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetHallBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetBookings(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetHallBookingByID retrieves a hall booking with its catering items.
// @Summary Get a hall booking by ID
// @Description Retrieve a hall booking and its catering item snapshots.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Booking ID"
// @Success 200 {object} response.Data[dto.HallBookingResponse] "Hall booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHallBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdatePayment records advance or extra payment amounts.
// @Summary Update hall booking payment
// @Description Record advance and extra payment amounts for a hall booking.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Booking ID"
// @Param request body dto.UpdatePaymentRequest true "Update Payment Request"
// @Success 200 {object} response.Message "Hall booking payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings/{id}/payment [put]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePayment(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall booking payment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall booking payment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hall booking payment updated successfully")
}

// UpdateNotes replaces the notes on a hall booking.
// @Summary Update hall booking notes
// @Description Replace the free-form notes on a hall booking.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Booking ID"
// @Param request body dto.UpdateNotesRequest true "Update Notes Request"
// @Success 200 {object} response.Message "Hall booking notes updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings/{id}/notes [put]
// @Security BearerAuth
func (handler *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNotes")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateNotesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateNotes(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall booking notes")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall booking notes updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hall booking notes updated successfully")
}

// CancelHallBooking cancels a hall booking.
// @Summary Cancel a hall booking
// @Description Cancel a hall booking, freeing its date and session.
// @Tags Hall
// @Accept json
// @Produce json
// @Param id path string true "Hall Booking ID"
// @Success 200 {object} response.Message "Hall booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hall/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelHallBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelHallBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel hall booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hall booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Hall booking cancelled successfully")
}

// GetHallGuests lists registered hall guests.
// @Summary Get hall guests
// @Description Retrieve registered hall guests with pagination.
// @Tags Hall
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetHallGuestsResponse] "List of hall guests"
// @Failure 500 {object} response.Error
// @Router /v1/hall/guests [get]
// @Security BearerAuth
func (handler *Handler) GetHallGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHallGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	guests, err := handler.service.GetGuests(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall guests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hall guests retrieved successfully")

	response.WithJSON(w, http.StatusOK, guests)
}
