package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhub/services/provider"
	"pawhub/services/user"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	Users     user.UserService
	Providers provider.ProviderService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users user.UserService, providers provider.ProviderService) *AdminHandler {
	return &AdminHandler{Users: users, Providers: providers}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Query("role"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", users)
}

// ListProviders handles GET /api/admin/providers.
func (h *AdminHandler) ListProviders(c *gin.Context) {
	providers, err := h.Providers.ListProviders(c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", providers)
}

// SetProviderApproval handles PUT /api/admin/providers/:id/approval.
func (h *AdminHandler) SetProviderApproval(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.Providers.SetApprovalStatus(c.Param("id"), body.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Provider approval updated", nil)
}
