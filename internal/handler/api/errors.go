package api

import (
	"net/http"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/room"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

type errorMapping struct {
	target error
	status int
}

// Checked in order before the kind fallback. The message is the target's own text.
var knownErrors = []errorMapping{
	{commands.ErrMissingFields, http.StatusBadRequest},
	{reqdto.ErrInvalidDates, http.StatusBadRequest},
	{reqdto.ErrInvalidRoomID, http.StatusBadRequest},
	{reqdto.ErrInvalidBookingID, http.StatusBadRequest},
	{reqdto.ErrInvalidRoomNumber, http.StatusBadRequest},
	{reqdto.ErrInvalidStartTime, http.StatusBadRequest},
	{reqdto.ErrInvalidEndTime, http.StatusBadRequest},
	{booking.ErrInvalidTimeSlot, http.StatusBadRequest},
	{booking.ErrTimeSlotTooLong, http.StatusBadRequest},
	{booking.ErrPriceOutOfRange, http.StatusBadRequest},
	{booking.ErrEmptyEmail, http.StatusBadRequest},
	{booking.ErrInvalidStatus, http.StatusBadRequest},
	{booking.ErrStatusNotSettable, http.StatusBadRequest},
	{booking.ErrBookingCancelled, http.StatusConflict},
	{room.ErrInvalidNumber, http.StatusBadRequest},
	{room.ErrInvalidType, http.StatusBadRequest},
	{room.ErrInvalidRate, http.StatusBadRequest},
	{commands.ErrRoomNumberTaken, http.StatusBadRequest},
	{commands.ErrRoomNotFound, http.StatusNotFound},
	{commands.ErrBookingNotFound, http.StatusNotFound},
	{commands.ErrBookingConflict, http.StatusConflict},
	{commands.ErrMissingEmail, http.StatusBadRequest},
	{commands.ErrConfirmationMailFailed, http.StatusInternalServerError},
	{commands.ErrCancellationMailFailed, http.StatusInternalServerError},
	{commands.ErrStoreUnavailable, http.StatusInternalServerError},
	{queries.ErrReadUnavailable, http.StatusInternalServerError},
}

// errorStatus resolves the status code and public message for a usecase error.
func errorStatus(err error) (int, string) {
	for _, m := range knownErrors {
		if errs.Is(err, m.target) {
			return m.status, m.target.Error()
		}
	}

	switch errs.Kind(err) {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest, err.Error()
	case errs.ErrNotFound:
		return http.StatusNotFound, "Not found"
	case errs.ErrConflict:
		return http.StatusConflict, "Conflict"
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func abortWithUsecaseError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	httperr.AbortWithError(c, status, err, msg)
}
