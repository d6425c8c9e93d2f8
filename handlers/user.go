package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawhub/config"
	"pawhub/middleware"
	"pawhub/models"
	"pawhub/services/user"
)

// UserHandler serves account endpoints for pet owners and admins.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

const authCookieMaxAge = 24 * 60 * 60

func setAuthCookie(c *gin.Context, name, token string) {
	c.SetCookie(name, token, authCookieMaxAge, "/", "", config.IsProduction(), true)
}

// Register handles POST /api/users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.Svc.Register(models.User{
		Name:        body.Name,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Role:        models.RoleUser,
		Security:    models.Security{Password: body.Password},
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	setAuthCookie(c, middleware.UserTokenCookie, result.Token)
	respondOK(c, http.StatusCreated, "Account created successfully", result.User)
}

// Login handles POST /api/users/login. Admin accounts receive the admin
// cookie so the dashboard endpoints work off the same login form.
func (h *UserHandler) Login(c *gin.Context) {
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

	cookie := middleware.UserTokenCookie
	if result.User.Role == models.RoleAdmin {
		cookie = middleware.AdminTokenCookie
	}
	setAuthCookie(c, cookie, result.Token)
	respondOK(c, http.StatusOK, "Logged in successfully", result.User)
}

// Logout handles POST /api/users/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	if uid := c.GetString(middleware.CtxUserID); uid != "" {
		_ = h.Svc.RevokeToken(uid)
	}
	c.SetCookie(middleware.UserTokenCookie, "", -1, "/", "", config.IsProduction(), true)
	respondOK(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetUserByID(c.GetString(middleware.CtxUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "", u)
}

// Update handles PUT /api/users/me.
func (h *UserHandler) Update(c *gin.Context) {
	var body struct {
		Name        string       `json:"name"`
		PhoneNumber string       `json:"phoneNumber"`
		Pets        []models.Pet `json:"pets"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.Svc.UpdateUser(models.User{
		ID:          c.GetString(middleware.CtxUserID),
		Name:        body.Name,
		PhoneNumber: body.PhoneNumber,
		Pets:        body.Pets,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Profile updated", updated)
}
