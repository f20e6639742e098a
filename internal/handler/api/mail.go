package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MailHandler struct {
	cmds commands.MailCommands
}

func NewMailHandler(cmds commands.MailCommands) *MailHandler {
	return &MailHandler{cmds: cmds}
}

// @Summary Send booking confirmation email
// @Tags mail
// @Accept json
// @Produce json
// @Param request body reqdto.MailConfirmationRequest true "Recipient and booking details"
// @Success 200 {object} resdto.MailResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/mail/booking-confirm [post]
func (h *MailHandler) BookingConfirm(c *gin.Context) {
	var req reqdto.MailConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrMissingEmail.Error())
		return
	}
	if err := h.cmds.SendBookingConfirmation(c.Request.Context(), req.ToInput()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MailResponse{OK: true, Message: "Confirmation email sent."})
}

// @Summary Send booking cancellation email
// @Tags mail
// @Accept json
// @Produce json
// @Param request body reqdto.MailCancellationRequest true "Recipient, booking details and refund"
// @Success 200 {object} resdto.MailResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/mail/booking-cancelled [post]
func (h *MailHandler) BookingCancelled(c *gin.Context) {
	var req reqdto.MailCancellationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, commands.ErrMissingEmail.Error())
		return
	}
	if err := h.cmds.SendBookingCancellation(c.Request.Context(), req.ToInput()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MailResponse{OK: true, Message: "Cancellation email sent."})
}
