package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a room for a time range; price is derived from the room rate
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrMissingFields.Error())
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingEnvelope{Booking: resdto.FromBookingResult(result)})
}

// @Summary Update booking
// @Description Patch a booking; omitted fields keep their values and the price is recomputed
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	var req reqdto.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request body")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.cmds.UpdateBooking(c.Request.Context(), id, in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingEnvelope{Booking: resdto.FromBookingResult(result)})
}

// @Summary Cancel booking
// @Description Cancel a booking and report the refund due under the cancellation policy
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := reqdto.ParseBookingID(c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary List bookings
// @Description List bookings ordered by start time, each with its room
// @Tags bookings
// @Produce json
// @Param room_number query int false "Room number"
// @Param room_type query string false "Room type"
// @Param start_time query string false "Bookings starting at or after"
// @Param end_time query string false "Bookings ending at or before"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}
	in, err := query.ToInput()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	items, err := h.q.List(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}
