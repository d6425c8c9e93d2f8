package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pawhub/middleware"
	"pawhub/models"
	"pawhub/services/donation"
)

// DonationHandler serves the food donation marketplace endpoints.
type DonationHandler struct {
	Svc donation.DonationService
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(svc donation.DonationService) *DonationHandler {
	return &DonationHandler{Svc: svc}
}

// Create handles POST /api/donations.
func (h *DonationHandler) Create(c *gin.Context) {
	var body struct {
		FoodType    string  `json:"foodType" binding:"required"`
		Brand       string  `json:"brand"`
		QuantityKg  float64 `json:"quantityKg" binding:"required,gt=0"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		ExpiryDate  string  `json:"expiryDate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.Svc.CreateDonation(c.GetString(middleware.CtxUserID), models.Donation{
		FoodType:    body.FoodType,
		Brand:       body.Brand,
		QuantityKg:  body.QuantityKg,
		Description: body.Description,
		LocationGeo: models.NewGeoPoint(body.Longitude, body.Latitude),
		ExpiryDate:  body.ExpiryDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Donation listed successfully", created)
}

// Search handles GET /api/donations/search?lat=..&lng=..&radius=..
func (h *DonationHandler) Search(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, http.StatusBadRequest, "Query parameters lat and lng are required")
		return
	}
	radius := 25.0
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			respondError(c, http.StatusBadRequest, "radius must be a positive number of kilometers")
			return
		}
		radius = parsed
	}

	items, err := h.Svc.SearchNearby(lat, lng, radius)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", gin.H{"items": items, "count": len(items)})
}

// Claim handles POST /api/donations/:id/claim.
func (h *DonationHandler) Claim(c *gin.Context) {
	claimed, err := h.Svc.ClaimDonation(c.Param("id"), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Donation claimed successfully", claimed)
}

// Mine handles GET /api/donations/mine.
func (h *DonationHandler) Mine(c *gin.Context) {
	items, err := h.Svc.ListByDonor(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", items)
}
