package booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	bookingRepo "pawhub/database/repository/booking"
	"pawhub/models"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CreateWithSlotClaim(ctx context.Context, weekday string, booking *models.Booking) error {
	args := m.Called(ctx, weekday, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByBookingID(bookingID string) (*models.Booking, error) {
	args := m.Called(bookingID)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) FindActiveOverlaps(providerID, date string, window models.TimeWindow) ([]models.Booking, error) {
	args := m.Called(providerID, date, window)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) List(criteria bookingRepo.ListCriteria) ([]models.Booking, int64, error) {
	args := m.Called(criteria)
	if bs, ok := args.Get(0).([]models.Booking); ok {
		return bs, args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepo) UpdateStatus(bookingID, status string) error {
	args := m.Called(bookingID, status)
	return args.Error(0)
}

type MockProviderRepo struct {
	mock.Mock
}

func (m *MockProviderRepo) GetByID(id string) (*models.Provider, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*models.Provider); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	args := m.Called(email)
	if p, ok := args.Get(0).(*models.Provider); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepo) List(providerType string) ([]models.Provider, error) {
	args := m.Called(providerType)
	if ps, ok := args.Get(0).([]models.Provider); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProviderRepo) Create(provider *models.Provider) error {
	return m.Called(provider).Error(0)
}

func (m *MockProviderRepo) Update(provider *models.Provider) error {
	return m.Called(provider).Error(0)
}

func (m *MockProviderRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return m.Called(id, updateDoc).Error(0)
}

func (m *MockProviderRepo) SetDayAvailability(id, weekday string, day models.DayAvailability) error {
	return m.Called(id, weekday, day).Error(0)
}

func (m *MockProviderRepo) SetSlotBooked(ctx context.Context, providerID, weekday string, window models.TimeWindow, booked bool) (bool, error) {
	args := m.Called(ctx, providerID, weekday, window, booked)
	return args.Bool(0), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) List(role string) ([]models.User, error) {
	args := m.Called(role)
	if us, ok := args.Get(0).([]models.User); ok {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockUserRepo) SetTokenHash(id, tokenHash string) error {
	return m.Called(id, tokenHash).Error(0)
}

type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) Schedule(b *models.Booking, startAt time.Time) error {
	return m.Called(b, startAt).Error(0)
}

type MockPaymentHandler struct {
	mock.Mock
}

func (m *MockPaymentHandler) ProcessPayment(ctx context.Context, b *models.Booking) (models.Payment, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(models.Payment), args.Error(1)
}

func (m *MockPaymentHandler) CancelPayment(ctx context.Context, payment models.Payment) error {
	return m.Called(ctx, payment).Error(0)
}
