package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhub/config"
	"pawhub/middleware"
	"pawhub/models"
	"pawhub/services/provider"
)

// ProviderHandler serves provider account and schedule endpoints.
type ProviderHandler struct {
	Svc provider.ProviderService
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Svc: svc}
}

// Register handles POST /api/providers/register.
func (h *ProviderHandler) Register(c *gin.Context) {
	var body struct {
		Name        string          `json:"name" binding:"required"`
		Type        string          `json:"type" binding:"required"`
		Email       string          `json:"email" binding:"required,email"`
		Password    string          `json:"password" binding:"required,min=8"`
		PhoneNumber string          `json:"phoneNumber"`
		Fee         models.Fee      `json:"fee"`
		LocationGeo models.GeoPoint `json:"locationGeo"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.Svc.Register(models.Provider{
		Profile: models.Profile{
			Name:        body.Name,
			Type:        body.Type,
			Email:       body.Email,
			PhoneNumber: body.PhoneNumber,
			LocationGeo: body.LocationGeo,
		},
		Fee:      body.Fee,
		Security: models.Security{Password: body.Password},
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	setAuthCookie(c, middleware.SellerTokenCookie, result.Token)
	respondOK(c, http.StatusCreated, "Provider registered successfully", result.Provider)
}

// Login handles POST /api/providers/login.
func (h *ProviderHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.Svc.Authenticate(body.Email, body.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	setAuthCookie(c, middleware.SellerTokenCookie, result.Token)
	respondOK(c, http.StatusOK, "Logged in successfully", result.Provider)
}

// Logout handles POST /api/providers/logout.
func (h *ProviderHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SellerTokenCookie, "", -1, "/", "", config.IsProduction(), true)
	respondOK(c, http.StatusOK, "Logged out", nil)
}

// Get handles GET /api/providers/:id.
func (h *ProviderHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProviderByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", p)
}

// List handles GET /api/providers?type=vet.
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.Svc.ListProviders(c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", providers)
}

// UpdateProfile handles PATCH /api/providers/me.
func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	var body struct {
		Profile models.Profile `json:"profile" binding:"required"`
		Fee     *models.Fee    `json:"fee"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.Svc.UpdateProfile(c.GetString(middleware.CtxUserID), body.Profile, body.Fee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Profile updated", updated)
}

// SetDayAvailability handles PUT /api/providers/me/availability/:weekday.
// It replaces the whole schedule for one weekday.
func (h *ProviderHandler) SetDayAvailability(c *gin.Context) {
	var day models.DayAvailability
	if err := c.ShouldBindJSON(&day); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	providerID := c.GetString(middleware.CtxUserID)
	if err := h.Svc.SetDayAvailability(providerID, c.Param("weekday"), day); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Availability updated", nil)
}
