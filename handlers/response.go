package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawhub/services/booking"
	"pawhub/services/donation"
	"pawhub/services/provider"
	"pawhub/services/user"
	"pawhub/utils"
)

// respondOK writes the standard success envelope.
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError writes the standard failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps domain errors onto the HTTP taxonomy: validation
// and conflict errors are 400, missing entities 404, everything else is a
// logged 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var tErr *booking.TransitionError

	switch {
	case errors.As(err, &vErr), errors.As(err, &tErr):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrPastTime),
		errors.Is(err, booking.ErrSlotUnavailable),
		errors.Is(err, donation.ErrAlreadyClaimed),
		errors.Is(err, donation.ErrOwnDonation),
		errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, provider.ErrEmailTaken),
		errors.Is(err, provider.ErrUnknownType),
		errors.Is(err, provider.ErrUnknownApproval),
		errors.Is(err, provider.ErrInvalidSchedule):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrUserNotFound),
		errors.Is(err, booking.ErrProviderNotFound),
		errors.Is(err, booking.ErrProviderUnavailable),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, donation.ErrDonationNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, provider.ErrProviderNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, provider.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
