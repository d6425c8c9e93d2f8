package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/middleware"
	"pawhub/models"
	"pawhub/services/booking"
)

// BookingHandler serves the vet, grooming and training booking endpoints.
// One handler covers all three flows; the service type is bound per route.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// Query parameter aliases for the provider filter, per service type.
var providerParamNames = map[string]string{
	models.ServiceVet:      "vetId",
	models.ServiceGrooming: "groomerId",
	models.ServiceTraining: "trainerId",
}

// Create handles POST for the bound service type.
func (h *BookingHandler) Create(serviceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		input.ServiceType = serviceType

		// The authenticated identity wins over whatever the body claims.
		if uid := c.GetString(middleware.CtxUserID); uid != "" {
			input.UserID = uid
		}

		created, err := h.Svc.CreateBooking(input)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondOK(c, http.StatusCreated, "Booking created successfully", created)
	}
}

// List handles GET for the bound service type.
func (h *BookingHandler) List(serviceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := bookingRepo.ListCriteria{
			ServiceType: serviceType,
			UserID:      c.Query("userId"),
			Status:      c.Query("status"),
			DateFrom:    c.Query("dateFrom"),
			DateTo:      c.Query("dateTo"),
			Upcoming:    c.Query("upcoming") == "true",
			Page:        parseInt64(c.Query("page"), 1),
			Limit:       parseInt64(c.Query("limit"), 10),
		}
		criteria.ProviderID = c.Query(providerParamNames[serviceType])
		if criteria.ProviderID == "" {
			criteria.ProviderID = c.Query("providerId")
		}
		// Pet owners only list their own bookings, whatever the query says.
		if c.GetString(middleware.CtxRole) == models.RoleUser {
			criteria.UserID = c.GetString(middleware.CtxUserID)
		}

		items, pagination, err := h.Svc.ListBookings(criteria)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondOK(c, http.StatusOK, "", gin.H{
			"items":      items,
			"pagination": pagination,
		})
	}
}

// ownsBooking reports whether the authenticated identity may see the booking.
// Pet owners only reach their own bookings; admins see everything.
func ownsBooking(c *gin.Context, userID string) bool {
	if c.GetString(middleware.CtxRole) != models.RoleUser {
		return true
	}
	return userID == c.GetString(middleware.CtxUserID)
}

// Get handles GET /:bookingId.
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.Svc.GetBooking(c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	// Another user's booking reads as absent, not forbidden.
	if !ownsBooking(c, view.UserID) {
		respondError(c, http.StatusNotFound, booking.ErrBookingNotFound.Error())
		return
	}
	respondOK(c, http.StatusOK, "", view)
}

// UpdateStatus handles PATCH /:bookingId/status. Admins may apply any legal
// transition; a pet owner may only cancel their own booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	bookingID := c.Param("bookingId")
	if c.GetString(middleware.CtxRole) == models.RoleUser {
		view, err := h.Svc.GetBooking(bookingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if !ownsBooking(c, view.UserID) {
			respondError(c, http.StatusNotFound, booking.ErrBookingNotFound.Error())
			return
		}
		if body.Status != models.StatusCancelled {
			respondError(c, http.StatusForbidden, "Only cancellation is allowed")
			return
		}
	}

	updated, err := h.Svc.UpdateStatus(bookingID, body.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Booking status updated", updated)
}

func parseInt64(s string, fallback int64) int64 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
