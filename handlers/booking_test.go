package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/middleware"
	"pawhub/models"
	"pawhub/services/booking"
	"pawhub/utils"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) IsSlotAvailable(providerID, date string, window models.TimeWindow) (bool, error) {
	args := m.Called(providerID, date, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	args := m.Called(input)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) ListBookings(criteria bookingRepo.ListCriteria) ([]models.BookingView, models.Pagination, error) {
	args := m.Called(criteria)
	if vs, ok := args.Get(0).([]models.BookingView); ok {
		return vs, args.Get(1).(models.Pagination), args.Error(2)
	}
	return nil, args.Get(1).(models.Pagination), args.Error(2)
}

func (m *MockBookingService) GetBooking(bookingID string) (*models.BookingView, error) {
	args := m.Called(bookingID)
	if v, ok := args.Get(0).(*models.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingService) UpdateStatus(bookingID, next string) (*models.Booking, error) {
	args := m.Called(bookingID, next)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func bookingRouter(svc booking.BookingService) *gin.Engine {
	return bookingRouterAs(svc, "user-1", models.RoleUser)
}

func bookingRouterAs(svc booking.BookingService, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, utils.GetLogger())

	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
	})

	g := r.Group("/api/appointments")
	g.POST("", h.Create(models.ServiceVet))
	g.GET("", h.List(models.ServiceVet))
	g.GET("/:bookingId", h.Get)
	g.PATCH("/:bookingId/status", h.UpdateStatus)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	svc := new(MockBookingService)

	var captured models.BookingInput
	svc.On("CreateBooking", mock.AnythingOfType("models.BookingInput")).
		Run(func(args mock.Arguments) { captured = args.Get(0).(models.BookingInput) }).
		Return(&models.Booking{BookingID: "APT-1717428000123-4F7KQ2M9X", Status: models.StatusScheduled}, nil)

	r := bookingRouter(svc)
	w := postJSON(t, r, "/api/appointments", gin.H{
		"userId":        "spoofed-user",
		"providerId":    "prov-1",
		"petDetails":    gin.H{"name": "Biscuit", "species": "dog"},
		"scheduledDate": "2026-09-07",
		"scheduledTime": gin.H{"startTime": "10:00", "endTime": "10:30"},
		"consultation":  gin.H{"consultationType": "clinic", "reason": "checkup"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	// Route binds the service type; auth context overrides the body user.
	assert.Equal(t, models.ServiceVet, captured.ServiceType)
	assert.Equal(t, "user-1", captured.UserID)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			BookingID string `json:"bookingId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "APT-1717428000123-4F7KQ2M9X", resp.Data.BookingID)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything).Return(nil, booking.ErrSlotUnavailable)

	r := bookingRouter(svc)
	w := postJSON(t, r, "/api/appointments", gin.H{
		"userId":        "user-1",
		"providerId":    "prov-1",
		"petDetails":    gin.H{"name": "Biscuit"},
		"scheduledDate": "2026-09-07",
		"scheduledTime": gin.H{"startTime": "10:00", "endTime": "10:30"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Selected time slot is not available")
}

func TestCreateAppointmentValidationError(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything).
		Return(nil, &booking.ValidationError{Field: "scheduledDate", Reason: "must be an ISO date (YYYY-MM-DD)"})

	r := bookingRouter(svc)
	w := postJSON(t, r, "/api/appointments", gin.H{
		"userId":        "user-1",
		"providerId":    "prov-1",
		"petDetails":    gin.H{"name": "Biscuit"},
		"scheduledDate": "bad",
		"scheduledTime": gin.H{"startTime": "10:00", "endTime": "10:30"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "scheduledDate")
}

func TestListAppointmentsProviderAlias(t *testing.T) {
	svc := new(MockBookingService)

	var captured bookingRepo.ListCriteria
	svc.On("ListBookings", mock.AnythingOfType("bookingRepo.ListCriteria")).
		Run(func(args mock.Arguments) { captured = args.Get(0).(bookingRepo.ListCriteria) }).
		Return([]models.BookingView{}, models.Pagination{Page: 1, Limit: 10}, nil)

	r := bookingRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/appointments?vetId=prov-9&upcoming=true&page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ServiceVet, captured.ServiceType)
	assert.Equal(t, "prov-9", captured.ProviderID)
	assert.True(t, captured.Upcoming)
	assert.Equal(t, int64(2), captured.Page)
}

func TestGetAppointmentNotFound(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetBooking", "APT-0-XXXXXXXXX").Return(nil, booking.ErrBookingNotFound)

	r := bookingRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/APT-0-XXXXXXXXX", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func patchStatus(t *testing.T, r *gin.Engine, bookingID, status string) *httptest.ResponseRecorder {
	t.Helper()
	body := bytes.NewReader([]byte(`{"status":"` + status + `"}`))
	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/"+bookingID+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ownedView(userID string) *models.BookingView {
	return &models.BookingView{
		Booking: models.Booking{BookingID: "APT-1-AAAAAAAAA", UserID: userID, Status: models.StatusScheduled},
	}
}

func TestUpdateAppointmentStatusTransitionError(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("UpdateStatus", "APT-1-AAAAAAAAA", "scheduled").
		Return(nil, &booking.TransitionError{From: models.StatusCompleted, To: models.StatusScheduled})

	r := bookingRouterAs(svc, "admin-1", models.RoleAdmin)
	w := patchStatus(t, r, "APT-1-AAAAAAAAA", "scheduled")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot transition")
}

func TestGetAppointmentHidesForeignBooking(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetBooking", "APT-1-AAAAAAAAA").Return(ownedView("someone-else"), nil)

	r := bookingRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/APT-1-AAAAAAAAA", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Another user's booking reads as absent.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAppointmentStatusHidesForeignBooking(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetBooking", "APT-1-AAAAAAAAA").Return(ownedView("someone-else"), nil)

	r := bookingRouter(svc)
	w := patchStatus(t, r, "APT-1-AAAAAAAAA", "cancelled")

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateAppointmentStatusOwnerMayOnlyCancel(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetBooking", "APT-1-AAAAAAAAA").Return(ownedView("user-1"), nil)

	r := bookingRouter(svc)
	w := patchStatus(t, r, "APT-1-AAAAAAAAA", "confirmed")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Only cancellation is allowed")
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateAppointmentStatusOwnerCancels(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("GetBooking", "APT-1-AAAAAAAAA").Return(ownedView("user-1"), nil)
	svc.On("UpdateStatus", "APT-1-AAAAAAAAA", "cancelled").
		Return(&models.Booking{BookingID: "APT-1-AAAAAAAAA", UserID: "user-1", Status: models.StatusCancelled}, nil)

	r := bookingRouter(svc)
	w := patchStatus(t, r, "APT-1-AAAAAAAAA", "cancelled")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListAppointmentsScopedToRequester(t *testing.T) {
	svc := new(MockBookingService)

	var captured bookingRepo.ListCriteria
	svc.On("ListBookings", mock.AnythingOfType("bookingRepo.ListCriteria")).
		Run(func(args mock.Arguments) { captured = args.Get(0).(bookingRepo.ListCriteria) }).
		Return([]models.BookingView{}, models.Pagination{Page: 1, Limit: 10}, nil)

	r := bookingRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/appointments?userId=someone-else", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.UserID)
}
